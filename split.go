// Package split carves line-aligned regions out of semi-structured
// text (logs, config blocks, reports) without a full grammar. A root
// Node wraps the whole buffer; repeated Find calls walk forward
// through it, producing a chain of immutable nodes that each expose
// the text before the match, the text after it, the matched content
// and its capture groups, plus a chain-aware slurp aggregator.
package split

import "regexp"

// Node is one element of a match chain. A node is immutable after
// construction and aliases the root's buffer rather than copying it,
// so nodes are safe to share across concurrent readers.
type Node struct {
	buf    string
	start  int
	head   int
	tail   int
	mhead  int
	mtail  int
	loc    []int // absolute submatch index pairs, nil for the root
	re     *regexp.Regexp
	parent *Node

	defaults Spec
}

type rootOption func(*Node) *Node

// WithDefaults sets the slurp defaults every node in the chain
// inherits. Without it the root carries DefaultSpec.
func WithDefaults(spec Spec) rootOption {
	return func(node *Node) *Node {
		node.defaults = spec
		return node
	}
}

// New wraps text in a root Node. The root carries no match of its
// own: its Preceding is empty and its Remaining is the entire buffer.
func New(text string, opts ...rootOption) *Node {
	node := &Node{buf: text, tail: -1, mhead: -1, mtail: -1, defaults: DefaultSpec()}
	for _, opt := range opts {
		node = opt(node)
	}
	return node
}

// Find locates the first occurrence of re at or after the end of this
// node's line-extended span, extends the raw match outward to full
// line boundaries, and returns it as a child Node inheriting this
// node's slurp defaults. It returns nil when the buffer is already
// exhausted or re does not occur in the remainder; both are normal
// outcomes, not errors.
func (n *Node) Find(re *regexp.Regexp) *Node {
	from := n.tail + 1
	loc, ok := matchAt(n.buf, re, from)
	if !ok {
		return nil
	}
	mhead, mtail := loc[0], loc[1]-1
	if mtail < mhead {
		// Zero-width match. Consume the character under it so a
		// repeated Find cannot stall at the same offset.
		if mhead >= len(n.buf) {
			return nil
		}
		mtail = mhead
	}
	return &Node{
		buf:      n.buf,
		start:    from,
		head:     lineHead(n.buf, mhead),
		tail:     lineTail(n.buf, mtail),
		mhead:    mhead,
		mtail:    mtail,
		loc:      loc,
		re:       re,
		parent:   n,
		defaults: n.defaults,
	}
}

// Split is Find under the name the operation also goes by.
func (n *Node) Split(re *regexp.Regexp) *Node { return n.Find(re) }

// FindSlurpText is Find with the child's slurp computed eagerly. Node
// and text are zero when re does not occur.
func (n *Node) FindSlurpText(re *regexp.Regexp, opts ...slurpOption) (*Node, string, error) {
	node := n.Find(re)
	if node == nil {
		return nil, "", nil
	}
	text, err := node.SlurpText(opts...)
	return node, text, err
}

// FindSlurpLines is FindSlurpText in line form.
func (n *Node) FindSlurpLines(re *regexp.Regexp, opts ...slurpOption) (*Node, []string, error) {
	node := n.Find(re)
	if node == nil {
		return nil, nil, nil
	}
	lines, err := node.SlurpLines(opts...)
	return node, lines, err
}

// Accessors -----------------------------------------------------

// Text returns the whole shared buffer.
func (n *Node) Text() string { return n.buf }

// Start is the offset where this node's search began: 0 for the
// root, the parent's Tail+1 otherwise.
func (n *Node) Start() int { return n.start }

// Head is the offset of the first character of the line containing
// the match start.
func (n *Node) Head() int { return n.head }

// Tail is the offset of the newline terminating the line containing
// the match end, or the buffer's last index when that line is
// unterminated.
func (n *Node) Tail() int { return n.tail }

// MatchHead and MatchTail are the raw offsets of the first and last
// matched characters, unextended. Both are -1 on the root.
func (n *Node) MatchHead() int { return n.mhead }
func (n *Node) MatchTail() int { return n.mtail }

// Pattern returns the expression that produced this node, nil on the
// root.
func (n *Node) Pattern() *regexp.Regexp { return n.re }

// Found returns the exact matched text, "" on the root.
func (n *Node) Found() string {
	if n.loc == nil {
		return ""
	}
	return n.buf[n.loc[0]:n.loc[1]]
}

// Content returns the match's enclosing line(s), terminating newline
// included when one exists.
func (n *Node) Content() string { return n.buf[n.head : n.tail+1] }

// Preceding returns everything between the end of the previous match
// (or the start of the buffer) and the start of this match's
// enclosing line.
func (n *Node) Preceding() string { return n.buf[n.start:n.head] }

// Remaining returns everything after this match's enclosing line,
// the entire buffer for the root.
func (n *Node) Remaining() string { return n.buf[n.tail+1:] }

// Groups returns the capture-group texts in declaration order, with
// "" standing in for groups that did not participate in the match.
func (n *Node) Groups() []string {
	if n.loc == nil {
		return nil
	}
	groups := make([]string, 0, len(n.loc)/2-1)
	for i := 2; i < len(n.loc); i += 2 {
		if n.loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, n.buf[n.loc[i]:n.loc[i+1]])
	}
	return groups
}

// Match returns capture group i, or the whole matched text for
// i == -1. ok is false on the root, for an index beyond the declared
// groups and for a group that did not participate in the match.
func (n *Node) Match(i int) (string, bool) {
	switch {
	case n.loc == nil:
		return "", false
	case i == -1:
		return n.buf[n.loc[0]:n.loc[1]], true
	case i < 0 || 2*i+2 >= len(n.loc):
		return "", false
	case n.loc[2*i+2] < 0:
		return "", false
	}
	return n.buf[n.loc[2*i+2]:n.loc[2*i+3]], true
}

// Is reports whether Match(i) equals lit exactly; ok mirrors Match.
func (n *Node) Is(i int, lit string) (eq bool, ok bool) {
	s, ok := n.Match(i)
	if !ok {
		return false, false
	}
	return s == lit, true
}

// IsMatch reports whether re matches Match(i); ok mirrors Match.
func (n *Node) IsMatch(i int, re *regexp.Regexp) (matched bool, ok bool) {
	s, ok := n.Match(i)
	if !ok {
		return false, false
	}
	return re.MatchString(s), true
}

// Parent returns the node this one was derived from, or the node
// itself on the root.
func (n *Node) Parent() *Node {
	if n.parent == nil {
		return n
	}
	return n.parent
}

// IsRoot reports whether this node is the first in its chain.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Root walks the chain back to its first node.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}
