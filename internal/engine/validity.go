package engine

// DistrictStatus is the connectivity verdict for one district. The
// presentation layer uses it to highlight broken districts
// individually.
type DistrictStatus struct {
	District  int  `json:"district"`
	Cells     int  `json:"cells"`
	Connected bool `json:"connected"`
}

// Validity is the full verdict for a partition.
type Validity struct {
	Districts []DistrictStatus `json:"districts"` // index 0 is district 1
	Covered   bool             `json:"covered"`
	Valid     bool             `json:"valid"`
}

// Check computes the validity of a partition: every district must form
// a single 4-connected region. A district may be any connected shape,
// holes included; only disconnection makes it invalid.
//
// Coverage (every cell carrying an in-range district id) is guaranteed
// by the Partition itself and re-checked here defensively.
//
// Check is a pure function of its inputs: running it twice on the same
// partition yields the same verdicts.
func Check(p *Partition) Validity {
	v := Validity{
		Districts: make([]DistrictStatus, p.Districts),
		Covered:   true,
	}
	for i := range v.Districts {
		v.Districts[i].District = i + 1
	}

	total := 0
	members := p.memberLists()
	for i, cells := range members {
		st := &v.Districts[i]
		st.Cells = len(cells)
		total += len(cells)
		if len(cells) == 0 {
			// An emptied district has no region to be connected.
			st.Connected = false
			continue
		}
		reached := floodCount(p.cells, p.Width, p.Height, cells[0], -1)
		st.Connected = reached == len(cells)
	}

	if total != p.Width*p.Height {
		v.Covered = false
	}

	v.Valid = v.Covered
	for _, st := range v.Districts {
		if !st.Connected {
			v.Valid = false
		}
	}
	return v
}

// floodCount runs a BFS from start over 4-connected cells carrying the
// same district id and returns how many it reaches. A cell index equal
// to skip is treated as absent, which lets the generator test whether a
// district survives losing one cell.
func floodCount(ids []uint8, width, height, start, skip int) int {
	id := ids[start]
	visited := make([]bool, len(ids))
	queue := make([]int, 0, len(ids))
	queue = append(queue, start)
	visited[start] = true
	count := 1

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, nb := range orthNeighbors(width, height, pos) {
			if nb == skip || visited[nb] || ids[nb] != id {
				continue
			}
			visited[nb] = true
			count++
			queue = append(queue, nb)
		}
	}
	return count
}
