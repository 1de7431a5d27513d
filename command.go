package termsvg

// CommandKind identifies a path-data command.
type CommandKind int

// Path-data commands understood by the interpreter. Only the absolute
// (upper case) letters are accepted.
const (
	NoCommand CommandKind = iota
	MoveTo
	LineTo
	QuadTo
	CubeTo
	SmoothQuadTo
	SmoothCubeTo
	ArcTo
	HLineTo
	VLineTo
	Close
)

var commandLetters = map[string]CommandKind{
	"M": MoveTo,
	"L": LineTo,
	"Q": QuadTo,
	"C": CubeTo,
	"T": SmoothQuadTo,
	"S": SmoothCubeTo,
	"A": ArcTo,
	"H": HLineTo,
	"V": VLineTo,
	"Z": Close,
}

// operand counts per command
var commandArity = map[CommandKind]int{
	MoveTo:       2,
	LineTo:       2,
	QuadTo:       4,
	CubeTo:       6,
	SmoothQuadTo: 2,
	SmoothCubeTo: 4,
	ArcTo:        7,
	HLineTo:      1,
	VLineTo:      1,
	Close:        0,
}

func (k CommandKind) String() string {
	for l, kind := range commandLetters {
		if kind == k {
			return l
		}
	}
	return "?"
}

// PathCommand is one command with the operands consumed for it, in
// document units.
type PathCommand struct {
	Kind CommandKind
	Args []float64
}
