package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	b, err := Parse("XO", "?", "*b.")
	require.NoError(t, err)

	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 3, b.Cols())
	assert.Equal(t, "BW.\n?..\n?B.", b.String())
}

func TestParseInvalidGlyph(t *testing.T) {
	t.Parallel()

	_, err := Parse("B.", ".Z")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGlyph)
	assert.Contains(t, err.Error(), "row 1 col 1")
}

func TestBoardJSON(t *testing.T) {
	t.Parallel()

	b := MustParse("B.", ".?")
	b.Move(Cell{1, 0}, White)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":["B.","W?"],"cols":2,"lastMove":{"row":1,"col":0}}`, string(data))

	var back Board
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b.Lines(), back.Lines())
	last, ok := back.LastMove()
	require.True(t, ok)
	assert.Equal(t, Cell{1, 0}, last)
}

func TestBoardJSONKeepsWidthWithoutRows(t *testing.T) {
	t.Parallel()

	var b Board
	require.NoError(t, json.Unmarshal([]byte(`{"rows":[],"cols":4,"lastMove":null}`), &b))
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 4, b.Cols())
}

func TestSideText(t *testing.T) {
	t.Parallel()

	var s Side
	require.NoError(t, json.Unmarshal([]byte(`"W"`), &s))
	assert.Equal(t, White, s)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"BW"`), &s), ErrInvalidGlyph)

	data, err := json.Marshal(Wildcard)
	require.NoError(t, err)
	assert.Equal(t, `"?"`, string(data))
}
