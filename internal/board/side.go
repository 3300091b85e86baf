package board

import "fmt"

// Side is the state of a single cell. Black plays first.
type Side uint8

const (
	Empty Side = iota
	Black
	White
	// Wildcard only appears in pattern templates and matches any state.
	Wildcard
)

func (s Side) String() string {
	switch s {
	case Empty:
		return "."
	case Black:
		return "B"
	case White:
		return "W"
	case Wildcard:
		return "?"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Opponent returns the other player's stone. Empty and Wildcard map to themselves.
func (s Side) Opponent() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return s
	}
}

// IsStone reports whether s is a player's stone.
func (s Side) IsStone() bool {
	return s == Black || s == White
}

// ParseSide maps a glyph to a Side. X/O and * are accepted as aliases.
func ParseSide(r rune) (Side, error) {
	switch r {
	case '.', '_', ' ':
		return Empty, nil
	case 'B', 'b', 'X', 'x':
		return Black, nil
	case 'W', 'w', 'O', 'o':
		return White, nil
	case '?', '*':
		return Wildcard, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidGlyph, r)
}

func (s Side) MarshalText() ([]byte, error) {
	if s > Wildcard {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts a single glyph. Empty text decodes to Empty.
func (s *Side) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = Empty
		return nil
	}
	r := []rune(string(text))
	if len(r) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidGlyph, string(text))
	}
	v, err := ParseSide(r[0])
	if err != nil {
		return err
	}
	*s = v
	return nil
}
