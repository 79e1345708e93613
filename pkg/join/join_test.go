package join

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/leapstack-labs/seqjoin/pkg/sequence"
)

// probe records every index it is asked for and fails the test on any read
// outside [0, Size).
type probe struct {
	t     *testing.T
	elems []string
	reads []int
}

func (p *probe) Size() int { return len(p.elems) }

func (p *probe) Get(index int) (string, error) {
	p.reads = append(p.reads, index)
	if err := sequence.Check(index, len(p.elems)); err != nil {
		p.t.Errorf("read outside sequence: %v", err)
		return "", err
	}
	return p.elems[index], nil
}

// lying claims one more element than it holds.
type lying struct {
	elems []string
}

func (l lying) Size() int { return len(l.elems) + 1 }

func (l lying) Get(index int) (string, error) {
	return sequence.Slice[string](l.elems).Get(index)
}

// negative reports a size below zero.
type negative struct{}

func (negative) Size() int { return -1 }

func (negative) Get(index int) (string, error) {
	return "", sequence.Check(index, 0)
}

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

type label struct{ name string }

func (l *label) String() string { return "#" + l.name }

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		elems []string
		want  string
	}{
		{name: "empty", elems: nil, want: ""},
		{name: "single", elems: []string{"a"}, want: "a"},
		{name: "three", elems: []string{"a", "b", "c"}, want: "a b c"},
		{name: "empty elements keep separators", elems: []string{"", "x", ""}, want: " x "},
		{name: "elements with spaces", elems: []string{"hello world", "!"}, want: "hello world !"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join[string](sequence.Slice[string](tt.elems))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoin_TextualForms(t *testing.T) {
	got, err := Join[any](sequence.Of[any](1, 2.5, true, point{1, 2}, errors.New("boom"), nil))
	require.NoError(t, err)
	assert.Equal(t, "1 2.5 true (1,2) boom <nil>", got)
}

func TestJoin_TypedNilStringer(t *testing.T) {
	var missing *label
	got, err := Join[*label](sequence.Of(&label{"a"}, missing, &label{"c"}))
	require.NoError(t, err)
	assert.Equal(t, "#a <nil> #c", got)
	assert.Equal(t, "<nil>", Text(missing))
}

func TestJoin_LinkedList(t *testing.T) {
	l := sequence.NewLinkedList("Hello", "World!")
	got, err := Join[string](l)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
	assert.Equal(t, 2, l.Size(), "join must not mutate its input")
}

func TestJoin_NeverReadsPastLastIndex(t *testing.T) {
	for n := 0; n <= 5; n++ {
		p := &probe{t: t, elems: make([]string, n)}
		for i := range p.elems {
			p.elems[i] = strings.Repeat("x", i+1)
		}

		_, err := Join[string](p)
		require.NoError(t, err)

		want := make([]int, n)
		for i := range want {
			want[i] = i
		}
		if n == 0 {
			assert.Empty(t, p.reads)
		} else {
			assert.Equal(t, want, p.reads, "size %d", n)
		}
	}
}

func TestJoin_BoundsViolationFromSequence(t *testing.T) {
	got, err := Join[string](lying{elems: []string{"a", "b"}})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, sequence.ErrBoundsViolation)
	assert.Contains(t, err.Error(), "element 2")

	var be *sequence.BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 2, be.Index)
}

func TestJoin_NegativeSize(t *testing.T) {
	got, err := Join[string](negative{})
	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, sequence.ErrBoundsViolation)
	assert.Contains(t, err.Error(), "invalid sequence size -1")

	strs, err := Strings[string](negative{})
	assert.Nil(t, strs)
	assert.ErrorIs(t, err, sequence.ErrBoundsViolation)
}

func TestJoin_Idempotent(t *testing.T) {
	l := sequence.NewLinkedList(3, 1, 2)
	first, err := Join[int](l)
	require.NoError(t, err)
	second, err := Join[int](l)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "3 1 2", first)
}

func TestJoinWith(t *testing.T) {
	got, err := JoinWith[string](sequence.Of("a", "b", "c"), ", ")
	require.NoError(t, err)
	assert.Equal(t, "a, b, c", got)

	got, err = JoinWith[string](sequence.Of("a"), ", ")
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestStrings(t *testing.T) {
	got, err := Strings[int](sequence.Of(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	_, err = Strings[string](lying{})
	assert.ErrorIs(t, err, sequence.ErrBoundsViolation)
}

func TestJoin_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOf(rapid.StringMatching(`[a-zA-Z0-9!?.]{1,8}`)).Draw(t, "elems")

		got, err := Join[string](sequence.Slice[string](elems))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(elems) == 0 {
			if got != "" {
				t.Fatalf("empty sequence joined to %q", got)
			}
			return
		}
		if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
			t.Fatalf("leading or trailing separator in %q", got)
		}
		parts := strings.Split(got, Separator)
		if len(parts) != len(elems) {
			t.Fatalf("got %d parts, want %d", len(parts), len(elems))
		}
		for i := range parts {
			if parts[i] != elems[i] {
				t.Fatalf("part %d = %q, want %q", i, parts[i], elems[i])
			}
		}
	})
}

func TestJoin_LengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOf(rapid.String()).Draw(t, "elems")

		got, err := Join[string](sequence.NewLinkedList(elems...))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := 0
		for _, e := range elems {
			want += len(e)
		}
		if len(elems) > 1 {
			want += len(elems) - 1
		}
		if len(got) != want {
			t.Fatalf("len = %d, want %d", len(got), want)
		}
	})
}
