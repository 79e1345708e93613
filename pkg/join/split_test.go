package join

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "empty", source: "", want: nil},
		{name: "blank", source: "  \t\n ", want: nil},
		{name: "single", source: "word", want: []string{"word"}},
		{name: "runs of spaces", source: "Hello      World!", want: []string{"Hello", "World!"}},
		{name: "leading and trailing", source: "  a b  ", want: []string{"a", "b"}},
		{name: "mixed whitespace", source: "a\tb\nc\r\nd", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Split(tt.source)
			assert.Equal(t, len(tt.want), l.Size())
			assert.Equal(t, tt.want, slices.Collect(l.All()))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Hello World!", Normalize("Hello      World!"))
	assert.Equal(t, "", Normalize("   "))
}

func TestSplitJoin_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOf(rapid.StringMatching(`[a-z]{1,6}`)).Draw(t, "words")
		gaps := rapid.SliceOfN(rapid.StringMatching(`[ \t\n]{1,3}`), len(words)+1, len(words)+1).Draw(t, "gaps")

		source := gaps[0]
		for i, w := range words {
			source += w + gaps[i+1]
		}

		got, err := Join[string](Split(source))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := ""
		for i, w := range words {
			if i > 0 {
				want += " "
			}
			want += w
		}
		if got != want {
			t.Fatalf("Join(Split(%q)) = %q, want %q", source, got, want)
		}
	})
}
