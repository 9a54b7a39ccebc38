package split

import (
	"iter"
	"regexp"
)

// FindAll yields the chain of successive Find calls for one pattern,
// stopping at the first no-match. Breaking out of the loop stops
// further matching work.
func (n *Node) FindAll(re *regexp.Regexp) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := n.Find(re); node != nil; node = node.Find(re) {
			if !yield(node) {
				return
			}
		}
	}
}
