package geom

// Direction is one of the eight compass directions.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every compass direction clockwise from North.
var Directions = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionOffsets = [...]Pt{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Offset returns the unit vector for d.
func (d Direction) Offset() Pt { return directionOffsets[d] }

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}
