// Package tetromino defines the seven piece kinds and the movable piece
// that falls through the playfield.
package tetromino

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	T Kind = iota
	L
	MirrorL
	S
	Z
	Square
	Line
)

// NumKinds is the size of the kind set.
const NumKinds = 7

// Offset is a cell position relative to a piece's pivot. X grows right, Y grows down.
type Offset struct {
	X, Y int
}

// Shape is the four cell offsets of a piece.
type Shape [4]Offset

// Every offset stays within +-2 of the pivot under rotation, so a piece always
// fits a 5x5 window centred on its pivot.
var shapeTable = [NumKinds]Shape{
	T:       {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	L:       {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	MirrorL: {{1, -1}, {0, -1}, {0, 0}, {0, 1}},
	S:       {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
	Z:       {{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	Square:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	Line:    {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
}

var kindNames = [NumKinds]string{"T", "L", "MirrorL", "S", "Z", "Square", "Line"}

// OffsetsFor returns the spawn offsets for kind. The table is returned by
// value so callers cannot mutate it.
func OffsetsFor(kind Kind) Shape {
	return shapeTable[kind]
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < NumKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind in table order.
func Kinds() []Kind {
	return []Kind{T, L, MirrorL, S, Z, Square, Line}
}
