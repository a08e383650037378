package engine

import "errors"

// Partition assigns every grid cell to exactly one district. District
// ids run 1..Districts; the zero id never appears in a built partition.
// The flat row-major layout makes snapshots a single copy.
type Partition struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	Districts int `json:"districts"`

	cells []uint8 // row-major district ids
}

// NewPartition builds a partition from a row-major district-id slice.
func NewPartition(width, height, districts int, ids []uint8) (*Partition, error) {
	if districts < 1 || districts > 255 {
		return nil, errors.New("district count out of range")
	}
	if len(ids) != width*height {
		return nil, errors.New("id count does not match grid dimensions")
	}
	for _, id := range ids {
		if id < 1 || int(id) > districts {
			return nil, ErrInvalidDistrict
		}
	}
	p := &Partition{Width: width, Height: height, Districts: districts, cells: make([]uint8, len(ids))}
	copy(p.cells, ids)
	return p, nil
}

// Assign moves the cell at c into the given district. The edit is
// purely mechanical: it can disconnect a district, and that is for the
// validator to surface, not for Assign to prevent.
func (p *Partition) Assign(c Coord, district int) error {
	if c.Row < 0 || c.Row >= p.Height || c.Col < 0 || c.Col >= p.Width {
		return ErrOutOfBounds
	}
	if district < 1 || district > p.Districts {
		return ErrInvalidDistrict
	}
	p.cells[c.Row*p.Width+c.Col] = uint8(district)
	return nil
}

// DistrictOf returns the district the cell at c belongs to.
func (p *Partition) DistrictOf(c Coord) (int, error) {
	if c.Row < 0 || c.Row >= p.Height || c.Col < 0 || c.Col >= p.Width {
		return 0, ErrOutOfBounds
	}
	return int(p.cells[c.Row*p.Width+c.Col]), nil
}

// Clone returns an independent copy.
func (p *Partition) Clone() *Partition {
	out := &Partition{Width: p.Width, Height: p.Height, Districts: p.Districts, cells: make([]uint8, len(p.cells))}
	copy(out.cells, p.cells)
	return out
}

// Equal reports whether both partitions assign every cell identically.
func (p *Partition) Equal(other *Partition) bool {
	if other == nil || p.Width != other.Width || p.Height != other.Height || p.Districts != other.Districts {
		return false
	}
	for i, id := range p.cells {
		if other.cells[i] != id {
			return false
		}
	}
	return true
}

// Ids returns a copy of the row-major district-id slice.
func (p *Partition) Ids() []uint8 {
	out := make([]uint8, len(p.cells))
	copy(out, p.cells)
	return out
}

// memberLists groups cell indexes by district. Index 0 of the result is
// district 1.
func (p *Partition) memberLists() [][]int {
	out := make([][]int, p.Districts)
	for pos, id := range p.cells {
		d := int(id) - 1
		if d >= 0 && d < p.Districts {
			out[d] = append(out[d], pos)
		}
	}
	return out
}
