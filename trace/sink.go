// SPDX-License-Identifier: MIT

package trace

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink accepts pre-formatted diagnostic lines.
type Sink interface {
	Trace(line string)
	Verbose(line string)
}

// Nop returns a Sink that drops everything.
func Nop() Sink { return nopSink{} }

type nopSink struct{}

func (nopSink) Trace(string)   {}
func (nopSink) Verbose(string) {}

// ZapSink writes the trace channel at debug level and the verbose channel at
// info level, each to its own logger.
type ZapSink struct {
	trace   *zap.Logger
	verbose *zap.Logger
}

// NewZapSink builds a Sink over two loggers. A nil logger disables its channel.
func NewZapSink(traceLogger, verboseLogger *zap.Logger) *ZapSink {
	if traceLogger == nil {
		traceLogger = zap.NewNop()
	}
	if verboseLogger == nil {
		verboseLogger = zap.NewNop()
	}

	return &ZapSink{
		trace:   traceLogger.Named("trace"),
		verbose: verboseLogger.Named("vlog"),
	}
}

// NewDevelopmentSink routes both channels to a console encoder on stdout.
func NewDevelopmentSink() *ZapSink {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	logger := zap.New(core)

	return NewZapSink(logger, logger)
}

// With returns a sink whose lines carry the extra fields.
func (s *ZapSink) With(fields ...zap.Field) *ZapSink {
	return &ZapSink{trace: s.trace.With(fields...), verbose: s.verbose.With(fields...)}
}

// Trace implements Sink.
func (s *ZapSink) Trace(line string) { s.trace.Debug(line) }

// Verbose implements Sink.
func (s *ZapSink) Verbose(line string) { s.verbose.Info(line) }

// Sync flushes both loggers.
func (s *ZapSink) Sync() error {
	if err := s.trace.Sync(); err != nil {
		return err
	}

	return s.verbose.Sync()
}

// Recorder is an in-memory Sink, handy in tests and for callers that want to
// post-process lines.
type Recorder struct {
	TraceLines   []string
	VerboseLines []string
}

// Trace implements Sink.
func (r *Recorder) Trace(line string) { r.TraceLines = append(r.TraceLines, line) }

// Verbose implements Sink.
func (r *Recorder) Verbose(line string) { r.VerboseLines = append(r.VerboseLines, line) }
