package engine

import "errors"

var (
	ErrOutOfBounds     = errors.New("position outside the grid")
	ErrInvalidDistrict = errors.New("no such district")
	ErrInvalidAction   = errors.New("invalid action")
	ErrLevelComplete   = errors.New("level already complete")
	ErrUnsolvable      = errors.New("generated level is not solvable")
)

// Faction is one of the two sides owning a cell. Blue is the player's
// faction, Red the opposition.
type Faction uint8

const (
	FactionBlue Faction = iota
	FactionRed
)

var factionNames = map[Faction]string{
	FactionBlue: "Blue",
	FactionRed:  "Red",
}

func (f Faction) String() string {
	if s, ok := factionNames[f]; ok {
		return s
	}
	return "Unknown"
}

// Coord identifies a cell on the grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is the fixed faction layout of a level. It is immutable once
// built; only the generator constructs one.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	cells []Faction // row-major
}

// NewGrid builds a grid from a row-major faction slice.
func NewGrid(width, height int, cells []Faction) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("grid dimensions must be positive")
	}
	if len(cells) != width*height {
		return nil, errors.New("cell count does not match grid dimensions")
	}
	g := &Grid{Width: width, Height: height, cells: make([]Faction, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// FactionAt returns the faction owning the cell at c.
func (g *Grid) FactionAt(c Coord) (Faction, error) {
	if !g.Contains(c) {
		return 0, ErrOutOfBounds
	}
	return g.cells[c.Row*g.Width+c.Col], nil
}

// Contains reports whether c lies on the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Cells returns a copy of the row-major faction layout.
func (g *Grid) Cells() []Faction {
	out := make([]Faction, len(g.cells))
	copy(out, g.cells)
	return out
}

// Size returns the total cell count.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// orthNeighbors returns the row-major indexes of the up to four
// orthogonal neighbors of pos.
func orthNeighbors(width, height, pos int) []int {
	row, col := pos/width, pos%width
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, pos-width)
	}
	if row < height-1 {
		out = append(out, pos+width)
	}
	if col > 0 {
		out = append(out, pos-1)
	}
	if col < width-1 {
		out = append(out, pos+1)
	}
	return out
}
