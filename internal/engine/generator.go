package engine

import (
	"fmt"
	"math/rand"
)

// Params sets the board shape for one difficulty step. District counts
// are odd so a minority faction can carry a majority of districts with
// minimal-margin wins.
type Params struct {
	Width     int
	Height    int
	Districts int
}

var levelTable = []Params{
	{Width: 5, Height: 4, Districts: 5},
	{Width: 5, Height: 5, Districts: 5},
	{Width: 6, Height: 5, Districts: 5},
	{Width: 7, Height: 5, Districts: 7},
	{Width: 7, Height: 6, Districts: 7},
	{Width: 8, Height: 7, Districts: 7},
	{Width: 9, Height: 7, Districts: 9},
	{Width: 9, Height: 8, Districts: 9},
	{Width: 10, Height: 9, Districts: 9},
}

// LevelParams returns the board shape for a 1-based level index.
// Indexes past the table reuse the last entry.
func LevelParams(index int) Params {
	if index < 1 {
		index = 1
	}
	if index > len(levelTable) {
		index = len(levelTable)
	}
	return levelTable[index-1]
}

const generateAttempts = 200

// NewLevel deterministically builds the level for a 1-based index.
func NewLevel(index int) (*Level, error) {
	return Generate(index, int64(index))
}

// Generate builds a level from an explicit seed. The construction works
// backwards from the answer: first carve the grid into K connected
// districts (the target), then place Blue cells so that Blue carries a
// majority of those districts with minimal margins while staying a
// strict minority overall, and finally carve a different, non-winning
// partition as the visible starting point. The target is kept on the
// level as the solvability witness.
func Generate(index int, seed int64) (*Level, error) {
	p := LevelParams(index)
	rng := rand.New(rand.NewSource(seed))
	total := p.Width * p.Height

	targetIds, ok := carveDistricts(rng, p.Width, p.Height, p.Districts)
	if !ok {
		return nil, fmt.Errorf("level %d: %w: could not carve target districts", index, ErrUnsolvable)
	}
	target, err := NewPartition(p.Width, p.Height, p.Districts, targetIds)
	if err != nil {
		return nil, fmt.Errorf("level %d: target partition: %w", index, err)
	}

	factions, err := placeFactions(rng, target)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", index, err)
	}
	grid, err := NewGrid(p.Width, p.Height, factions)
	if err != nil {
		return nil, fmt.Errorf("level %d: grid: %w", index, err)
	}

	threshold := p.Districts/2 + 1

	// The target must validate and win, or the whole construction is
	// broken. Fail loudly here rather than hand out an unplayable level.
	if v := Check(target); !v.Valid {
		return nil, fmt.Errorf("level %d: %w: target partition is invalid", index, ErrUnsolvable)
	}
	if out := Evaluate(grid, target, threshold); !out.ObjectiveMet {
		return nil, fmt.Errorf("level %d: %w: target partition does not win", index, ErrUnsolvable)
	}

	initial, err := carveInitial(rng, grid, target, threshold)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", index, err)
	}

	// Blue must be a strict minority of cells, otherwise the level is
	// not a gerrymander at all.
	blue := 0
	for _, f := range factions {
		if f == FactionBlue {
			blue++
		}
	}
	if blue*2 >= total {
		return nil, fmt.Errorf("level %d: %w: blue holds %d of %d cells", index, ErrUnsolvable, blue, total)
	}

	return &Level{
		Index:     index,
		Seed:      seed,
		Grid:      grid,
		Districts: p.Districts,
		Threshold: threshold,
		Initial:   initial,
		Target:    target,
	}, nil
}

// carveDistricts partitions the grid into k connected districts whose
// sizes differ by at most one cell. Two phases: an uncapped multi-source
// BFS grows a Voronoi region around each seed cell (contiguous by
// construction), then boundary cells are transferred from oversized to
// adjacent undersized districts, each transfer checked to preserve
// contiguity of the shrinking district.
func carveDistricts(rng *rand.Rand, width, height, k int) ([]uint8, bool) {
	for attempt := 0; attempt < generateAttempts; attempt++ {
		if ids, ok := tryCarve(rng, width, height, k); ok {
			return ids, true
		}
	}
	return nil, false
}

func tryCarve(rng *rand.Rand, width, height, k int) ([]uint8, bool) {
	total := width * height
	ids := make([]uint8, total) // 0 = unassigned

	// One seed cell per district, spread at random.
	perm := rng.Perm(total)
	type entry struct{ pos, id int }
	queue := make([]entry, 0, total)
	for d := 0; d < k; d++ {
		ids[perm[d]] = uint8(d + 1)
		queue = append(queue, entry{perm[d], d + 1})
	}

	// Multi-source BFS. Each frontier level is shuffled so district
	// shapes vary instead of forming clean diamonds.
	head := 0
	for head < len(queue) {
		levelEnd := len(queue)
		for i := levelEnd - 1; i > head; i-- {
			j := head + rng.Intn(i-head+1)
			queue[i], queue[j] = queue[j], queue[i]
		}
		for head < levelEnd {
			e := queue[head]
			head++
			for _, nb := range orthNeighbors(width, height, e.pos) {
				if ids[nb] == 0 {
					ids[nb] = uint8(e.id)
					queue = append(queue, entry{nb, e.id})
				}
			}
		}
	}

	// Size targets: total/k each, remainder spread over the first few.
	sizes := make([]int, k+1) // 1-based like district ids
	counts := make([]int, k+1)
	for d := 1; d <= k; d++ {
		sizes[d] = total / k
		if d <= total%k {
			sizes[d]++
		}
	}
	for _, id := range ids {
		counts[id]++
	}

	// Boundary-swap balancing.
	for {
		balanced := true
		for d := 1; d <= k; d++ {
			if counts[d] != sizes[d] {
				balanced = false
				break
			}
		}
		if balanced {
			return ids, true
		}

		moved := false
		for _, pos := range rng.Perm(total) {
			from := int(ids[pos])
			if counts[from] <= sizes[from] {
				continue
			}
			for _, nb := range orthNeighbors(width, height, pos) {
				to := int(ids[nb])
				if to == from || counts[to] >= sizes[to] {
					continue
				}
				if !removable(ids, width, height, pos, counts[from]) {
					break
				}
				ids[pos] = uint8(to)
				counts[from]--
				counts[to]++
				moved = true
				break
			}
			if moved {
				break
			}
		}
		if !moved {
			// Degenerate seed layout that cannot be balanced; retry.
			return nil, false
		}
	}
}

// removable reports whether the district at pos stays connected after
// losing pos.
func removable(ids []uint8, width, height, pos, size int) bool {
	if size <= 1 {
		return false
	}
	start := -1
	for _, nb := range orthNeighbors(width, height, pos) {
		if ids[nb] == ids[pos] {
			start = nb
			break
		}
	}
	if start == -1 {
		return false
	}
	return floodCount(ids, width, height, start, pos) == size-1
}

// placeFactions colors the grid so Blue holds a minimal strict majority
// in threshold-many target districts, a strict minority in the rest,
// and a strict minority of all cells.
func placeFactions(rng *rand.Rand, target *Partition) ([]Faction, error) {
	total := target.Width * target.Height
	k := target.Districts
	need := k/2 + 1

	members := target.memberLists()
	winners := make(map[int]bool, need)
	for _, d := range rng.Perm(k)[:need] {
		winners[d] = true
	}

	blueBudget := (total - 1) / 2 // strict overall minority
	blueCounts := make([]int, k)
	for d := 0; d < k; d++ {
		if winners[d] {
			blueCounts[d] = len(members[d])/2 + 1
			blueBudget -= blueCounts[d]
		}
	}
	if blueBudget < 0 {
		return nil, fmt.Errorf("%w: board too small for minority majorities", ErrUnsolvable)
	}

	// Spend the leftover budget on losing districts so the starting
	// board does not give the answer away, keeping Blue strictly behind
	// in each.
	for _, d := range rng.Perm(k) {
		if winners[d] || blueBudget == 0 {
			continue
		}
		limit := (len(members[d]) - 1) / 2
		if limit > blueBudget {
			limit = blueBudget
		}
		n := rng.Intn(limit + 1)
		blueCounts[d] = n
		blueBudget -= n
	}

	factions := make([]Faction, total)
	for i := range factions {
		factions[i] = FactionRed
	}
	for d := 0; d < k; d++ {
		cells := append([]int(nil), members[d]...)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		for _, pos := range cells[:blueCounts[d]] {
			factions[pos] = FactionBlue
		}
	}
	return factions, nil
}

// carveInitial produces the partition the player starts from: valid,
// different from the target, and not already winning.
func carveInitial(rng *rand.Rand, grid *Grid, target *Partition, threshold int) (*Partition, error) {
	for attempt := 0; attempt < generateAttempts; attempt++ {
		ids, ok := tryCarve(rng, grid.Width, grid.Height, target.Districts)
		if !ok {
			continue
		}
		p, err := NewPartition(grid.Width, grid.Height, target.Districts, ids)
		if err != nil {
			continue
		}
		if p.Equal(target) {
			continue
		}
		if Evaluate(grid, p, threshold).ObjectiveMet {
			continue
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: no non-winning starting partition found", ErrUnsolvable)
}
