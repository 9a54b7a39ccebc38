package split

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSlurpPattern = errors.New("invalid slurp pattern")
)

// Spec controls how slurp assembles content across a chain link.
type Spec struct {
	// SlurpL includes the parent's bounded content before the node's
	// preceding text.
	SlurpL bool
	// SlurpR includes the node's own bounded content after its
	// preceding text.
	SlurpR bool
	// Chomp strips the trailing newline from every slurped line.
	Chomp bool
	// List records that the symbolic form asked for line mode (a
	// leading "@"). SlurpText and SlurpLines select the output shape
	// explicitly; the flag is kept for round-tripping and for
	// callers that branch on it.
	List bool
}

// DefaultSpec is the spec every node inherits unless overridden:
// parent content in, own content out, scalar mode, no chomping. Its
// symbolic form is "[)".
func DefaultSpec() Spec { return Spec{SlurpL: true} }

// ParseSpec parses the compact symbolic form
//
//	[@|$]? [(|[] [)|]] [/]?
//
// A leading "@" selects line mode ("$" or omission scalar); "["
// includes the parent's content where "(" excludes it; "]" includes
// the node's own content where ")" excludes it; a trailing "/"
// chomps. Anything else fails with ErrInvalidSlurpPattern.
func ParseSpec(s string) (Spec, error) {
	var spec Spec
	rest := s
	switch {
	case strings.HasPrefix(rest, "@"):
		spec.List = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "$"):
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSlurpPattern, s)
	}
	switch rest[0] {
	case '[':
		spec.SlurpL = true
	case '(':
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSlurpPattern, s)
	}
	switch rest[1] {
	case ']':
		spec.SlurpR = true
	case ')':
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSlurpPattern, s)
	}
	switch rest[2:] {
	case "":
	case "/":
		spec.Chomp = true
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSlurpPattern, s)
	}
	return spec, nil
}

// MustSpec is ParseSpec for literals known to be valid.
func MustSpec(s string) Spec {
	spec, err := ParseSpec(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// String renders the spec back into its symbolic form, with the
// scalar marker made explicit.
func (s Spec) String() string {
	buf := make([]byte, 0, 4)
	if s.List {
		buf = append(buf, '@')
	} else {
		buf = append(buf, '$')
	}
	if s.SlurpL {
		buf = append(buf, '[')
	} else {
		buf = append(buf, '(')
	}
	if s.SlurpR {
		buf = append(buf, ']')
	} else {
		buf = append(buf, ')')
	}
	if s.Chomp {
		buf = append(buf, '/')
	}
	return string(buf)
}

// Options -------------------------------------------------------

type slurpOption func(*slurpConfig)

type slurpConfig struct {
	spec     Spec
	specSet  bool
	chomp    bool
	chompSet bool
	err      error
}

// WithSpec overrides the node's inherited slurp defaults for one
// call.
func WithSpec(spec Spec) slurpOption {
	return func(cfg *slurpConfig) {
		cfg.spec, cfg.specSet = spec, true
	}
}

// WithSpecString is WithSpec for the compact symbolic form; a
// malformed string surfaces ErrInvalidSlurpPattern from the slurp
// call.
func WithSpecString(s string) slurpOption {
	return func(cfg *slurpConfig) {
		spec, err := ParseSpec(s)
		if err != nil {
			cfg.err = err
			return
		}
		cfg.spec, cfg.specSet = spec, true
	}
}

// WithChomp overrides chomping independently of the spec in effect.
func WithChomp(chomp bool) slurpOption {
	return func(cfg *slurpConfig) {
		cfg.chomp, cfg.chompSet = chomp, true
	}
}

func (n *Node) resolveSpec(opts []slurpOption) (Spec, error) {
	var cfg slurpConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Spec{}, cfg.err
	}
	spec := n.defaults
	if cfg.specSet {
		spec = cfg.spec
	}
	if cfg.chompSet {
		spec.Chomp = cfg.chomp
	}
	return spec, nil
}

// Aggregation ---------------------------------------------------

// assemble concatenates, in order: the parent's bounded content when
// SlurpL, the node's preceding text, and the node's own bounded
// content when SlurpR. The root is its own parent with empty
// content, so slurping the root degenerates to its Preceding.
func (n *Node) assemble(spec Spec) string {
	var b strings.Builder
	if spec.SlurpL {
		b.WriteString(n.Parent().Content())
	}
	b.WriteString(n.Preceding())
	if spec.SlurpR {
		b.WriteString(n.Content())
	}
	return b.String()
}

// SlurpText aggregates content across this chain link into a single
// string. The List flag has no effect on the result.
func (n *Node) SlurpText(opts ...slurpOption) (string, error) {
	spec, err := n.resolveSpec(opts)
	if err != nil {
		return "", err
	}
	return n.assemble(spec), nil
}

// SlurpLines is SlurpText split into lines: pure-delimiter artifacts
// are dropped and, unless chomping, every returned line carries a
// trailing newline, the last included.
func (n *Node) SlurpLines(opts ...slurpOption) ([]string, error) {
	spec, err := n.resolveSpec(opts)
	if err != nil {
		return nil, err
	}
	var lines []string
	for line := range strings.SplitSeq(n.assemble(spec), "\n") {
		if line == "" {
			continue
		}
		if !spec.Chomp {
			line += "\n"
		}
		lines = append(lines, line)
	}
	return lines, nil
}
