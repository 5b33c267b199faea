package seating

// Tile is the state of one grid cell during one round.
type Tile uint8

const (
	// Floor never changes state and never counts as occupied.
	Floor Tile = iota
	// EmptySeat is a seat nobody sits in.
	EmptySeat
	// OccupiedSeat is a taken seat.
	OccupiedSeat
)

// TileFromRune decodes a layout character. Anything other than 'L' or '#'
// is floor.
func TileFromRune(r rune) Tile {
	switch r {
	case 'L':
		return EmptySeat
	case '#':
		return OccupiedSeat
	default:
		return Floor
	}
}

// Rune returns the canonical layout character for t.
func (t Tile) Rune() rune {
	switch t {
	case EmptySeat:
		return 'L'
	case OccupiedSeat:
		return '#'
	default:
		return '.'
	}
}

// IsSeat reports whether t is an empty or occupied seat.
func (t Tile) IsSeat() bool { return t == EmptySeat || t == OccupiedSeat }

func (t Tile) String() string {
	switch t {
	case EmptySeat:
		return "empty"
	case OccupiedSeat:
		return "occupied"
	default:
		return "floor"
	}
}
