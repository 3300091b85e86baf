package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b *Board
		want bool
	}{
		{name: "identical", a: MustParse("BW", ".."), b: MustParse("BW", ".."), want: true},
		{name: "wildcard left", a: MustParse("?W"), b: MustParse("BW"), want: true},
		{name: "wildcard right", a: MustParse("B."), b: MustParse("B?"), want: true},
		{name: "wildcard matches empty", a: MustParse("??"), b: MustParse(".."), want: true},
		{name: "concrete mismatch", a: MustParse("BW"), b: MustParse("BB"), want: false},
		{name: "empty vs stone", a: MustParse("."), b: MustParse("W"), want: false},
		{name: "size mismatch", a: MustParse("??"), b: MustParse("?", "?"), want: false},
		{name: "both empty", a: New(0, 0), b: New(0, 0), want: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.a.Equals(tc.b))
			assert.Equal(t, tc.want, tc.b.Equals(tc.a))
		})
	}
}

func TestExistFillsWildcards(t *testing.T) {
	t.Parallel()

	src := MustParse(
		".....",
		".....",
		".BBB.",
		".....",
	)

	got, ok := src.Exist(MustParse("B?B"))
	require.True(t, ok)
	assert.Equal(t, []string{"BBB"}, got.Lines())
}

func TestExistTriesRotations(t *testing.T) {
	t.Parallel()

	src := MustParse(
		"....",
		".B..",
		".B..",
		".W..",
	)
	pattern := MustParse("BB?")

	got, ok := src.Exist(pattern)
	require.True(t, ok)
	// first hit is anchor (0,1) turned 270 degrees
	assert.Equal(t, []string{".", "B", "B"}, got.Lines())
	assert.Equal(t, []string{"BB?"}, pattern.Lines(), "pattern must not be modified")
}

func TestExistRowMajorTieBreak(t *testing.T) {
	t.Parallel()

	src := MustParse(
		"...",
		".WB",
		"BW.",
	)

	got, ok := src.Exist(MustParse("W?"))
	require.True(t, ok)
	// anchor (0,1) turned 270 degrees is reached before any anchor on row 1
	assert.Equal(t, []string{".", "W"}, got.Lines())
}

func TestExistConcreteMatchEqualsSource(t *testing.T) {
	t.Parallel()

	src := MustParse(
		"B.W..",
		"WB.W.",
		"..BW.",
		".W.B.",
	)
	pattern := src.Subboard(Cell{1, 1}, 3, 3)

	got, ok := src.Exist(pattern)
	require.True(t, ok)
	assert.Equal(t, pattern.Lines(), got.Lines())
}

func TestExistBottomRightCorner(t *testing.T) {
	t.Parallel()

	src := MustParse(
		"...",
		".BB",
		".BB",
	)

	got, ok := src.Exist(MustParse("BB", "BB"))
	require.True(t, ok)
	assert.Equal(t, []string{"BB", "BB"}, got.Lines())
}

func TestExistNotFound(t *testing.T) {
	t.Parallel()

	white := MustParse("WWW", "WWW", "WWW")
	cases := map[string]*Board{
		"all black":      MustParse("BBB", "BBB", "BBB"),
		"larger pattern": MustParse("????", "????"),
		"empty pattern":  New(0, 0),
	}

	for name, p := range cases {
		p := p
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := white.Exist(p)
			assert.False(t, ok)
			assert.True(t, got.IsEmpty())
		})
	}
}

func TestExistOnSourceWithWildcards(t *testing.T) {
	t.Parallel()

	src := MustParse("B?W")
	got, ok := src.Exist(MustParse("BB?"))
	require.True(t, ok)
	assert.Equal(t, []string{"BBW"}, got.Lines())
}

func TestReplace(t *testing.T) {
	t.Parallel()

	b := MustParse("BW.")
	ok := b.Replace(MustParse("B?"), MustParse("WW"))

	require.True(t, ok)
	assert.Equal(t, []string{"WW."}, b.Lines())
}

func TestReplaceFirstMatchOnly(t *testing.T) {
	t.Parallel()

	b := MustParse(
		"B.B.",
		"....",
	)
	require.True(t, b.Replace(MustParse("B."), MustParse("W?")))

	assert.Equal(t, []string{"W.B.", "...."}, b.Lines())
}

func TestReplaceNoop(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to *Board
	}{
		{name: "size mismatch", from: MustParse("B"), to: MustParse("WW")},
		{name: "no match", from: MustParse("WW"), to: MustParse("BB")},
		{name: "no rotation", from: MustParse("B", "B"), to: MustParse("W", "W")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := MustParse("BB.", "...")
			assert.False(t, b.Replace(tc.from, tc.to))
			assert.Equal(t, []string{"BB.", "..."}, b.Lines())
		})
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	a := MustParse(
		"B.W",
		".B.",
	)
	b := MustParse(
		"W.W",
		".BB",
	)

	assert.Equal(t, []Cell{{0, 0}, {1, 2}}, a.Diff(b))
	assert.ElementsMatch(t, a.Diff(b), b.Diff(a))
	assert.Empty(t, a.Diff(a))
}

func TestDiffIgnoresWildcards(t *testing.T) {
	t.Parallel()

	a := MustParse("B?W")
	b := MustParse("?BB")

	assert.Equal(t, []Cell{{0, 2}}, a.Diff(b))
}

func TestDiffSizeMismatch(t *testing.T) {
	t.Parallel()

	got := New(3, 3).Diff(New(3, 4))
	require.NotNil(t, got)
	assert.Empty(t, got)
}
