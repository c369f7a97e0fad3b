// SPDX-License-Identifier: MIT

package trace

import (
	"errors"
	"fmt"
	"strings"
)

// Recognized option names.
const (
	OptTraceProposals  = "trace-inlining-proposals"
	OptVerboseInlining = "verbose-inlining"
)

// ErrUnknownOption is returned by ParseOptions for names it does not recognize.
var ErrUnknownOption = errors.New("trace: unknown option")

// Options selects which diagnostic channels are active.
type Options struct {
	// Proposals emits the per-node proposal report to Sink.Trace.
	Proposals bool `yaml:"inlining_proposals"`

	// Verbose emits the same report to Sink.Verbose.
	Verbose bool `yaml:"verbose_inlining"`
}

// Enabled reports whether any channel is active.
func (o Options) Enabled() bool { return o.Proposals || o.Verbose }

// String renders o in the form accepted by ParseOptions.
func (o Options) String() string {
	var names []string
	if o.Proposals {
		names = append(names, OptTraceProposals)
	}
	if o.Verbose {
		names = append(names, OptVerboseInlining)
	}

	return strings.Join(names, ",")
}

// ParseOptions reads a comma separated option list such as
// "trace-inlining-proposals,verbose-inlining". Blank entries are ignored.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, raw := range strings.Split(s, ",") {
		name := strings.TrimSpace(raw)
		switch name {
		case "":
		case OptTraceProposals:
			o.Proposals = true
		case OptVerboseInlining:
			o.Verbose = true
		default:
			return Options{}, fmt.Errorf("%w: %q", ErrUnknownOption, name)
		}
	}

	return o, nil
}
