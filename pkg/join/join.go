// Package join renders sequences as separator-delimited strings and splits
// text back into sequences.
package join

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/seqjoin/pkg/sequence"
)

// Separator is the separator used by Join.
const Separator = " "

// Join returns the textual form of every element of seq separated by a
// single space. An empty sequence yields "".
func Join[T any](seq sequence.Sequence[T]) (string, error) {
	return JoinWith(seq, Separator)
}

// JoinWith is Join with an arbitrary separator.
//
// Elements are read in order for indexes 0 through Size()-1; Size is read
// once. A negative size or a Get error aborts the join; Get errors are
// wrapped with their index.
func JoinWith[T any](seq sequence.Sequence[T], sep string) (string, error) {
	n := seq.Size()
	if err := sequence.CheckSize(n); err != nil {
		return "", fmt.Errorf("join: %w", err)
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			return "", fmt.Errorf("join: element %d: %w", i, err)
		}
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(Text(v))
	}
	return sb.String(), nil
}

// Strings returns the textual form of every element of seq.
func Strings[T any](seq sequence.Sequence[T]) ([]string, error) {
	n := seq.Size()
	if err := sequence.CheckSize(n); err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, Text(v))
	}
	return out, nil
}

// Text returns the textual form of v: its Error or String method when it
// has one, otherwise its default format. Nil values, including typed nil
// pointers, print as <nil>.
func Text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
