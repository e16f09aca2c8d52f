package springs

// Count returns the number of ways to resolve every unknown spring in r
// such that the runs of damaged springs are exactly r.Groups, in order.
// A record with a non-positive group size has no arrangements.
//
// Count scans the springs once from left to right, tracking how many
// partial resolutions of the prefix reach each (group, run) state: group
// is the index of the damaged group being matched and run is the number
// of consecutive damaged springs counted toward it so far. This takes
// O(len(r.Springs) * len(r.Groups) * max(r.Groups)) time.
func Count(r Record) uint64 {
	groups := r.Groups
	width := 1
	for _, g := range groups {
		if g <= 0 {
			return 0
		}
		if g+1 > width {
			width = g + 1
		}
	}
	cur := newStateTable(len(groups)+1, width)
	next := newStateTable(len(groups)+1, width)
	cur.add(0, 0, 1)

	for _, c := range r.Springs {
		next.reset()
		for group := 0; group <= len(groups); group++ {
			for run := 0; run < width; run++ {
				n := cur.get(group, run)
				if n == 0 {
					continue
				}
				if c != Operational && group < len(groups) && run < groups[group] {
					next.add(group, run+1, n)
				}
				if c != Damaged {
					switch {
					case run == 0:
						next.add(group, 0, n)
					case run == groups[group]:
						next.add(group+1, 0, n)
					}
					// Otherwise the group ended early.
				}
			}
		}
		cur, next = next, cur
	}

	total := cur.get(len(groups), 0)
	if last := len(groups) - 1; last >= 0 {
		total += cur.get(last, groups[last])
	}
	return total
}

// A stateTable maps (group, run) states to the number of partial
// resolutions that reach them.
type stateTable struct {
	width  int
	counts []uint64
}

func newStateTable(rows, width int) *stateTable {
	return &stateTable{
		width:  width,
		counts: make([]uint64, rows*width),
	}
}

func (t *stateTable) get(group, run int) uint64 {
	return t.counts[group*t.width+run]
}

func (t *stateTable) add(group, run int, n uint64) {
	t.counts[group*t.width+run] += n
}

func (t *stateTable) reset() {
	clear(t.counts)
}
