package join

import (
	"strings"

	"github.com/leapstack-labs/seqjoin/pkg/sequence"
)

// Split breaks source on runs of whitespace into a linked list of words.
// Blank input yields an empty list.
func Split(source string) *sequence.LinkedList[string] {
	return sequence.NewLinkedList(strings.Fields(source)...)
}

// Normalize joins the words of source with single spaces.
func Normalize(source string) string {
	// A LinkedList built by Split never reports an out of range index.
	s, _ := Join[string](Split(source))
	return s
}
