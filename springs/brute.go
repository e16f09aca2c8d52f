package springs

import "fmt"

// MaxBruteForceUnknowns is the largest number of unknown springs
// CountBruteForce will enumerate.
const MaxBruteForceUnknowns = 24

// CountBruteForce counts the arrangements of r by trying every resolution
// of its unknown springs. It agrees with Count but takes time exponential
// in the number of unknowns; it is useful for checking Count on small
// records.
func CountBruteForce(r Record) (uint64, error) {
	var unknowns []int
	for i, c := range r.Springs {
		if c == Unknown {
			unknowns = append(unknowns, i)
		}
	}
	if len(unknowns) > MaxBruteForceUnknowns {
		return 0, fmt.Errorf("record has %d unknown springs; brute force is limited to %d",
			len(unknowns), MaxBruteForceUnknowns)
	}

	damaged := make([]bool, len(r.Springs))
	for i, c := range r.Springs {
		damaged[i] = c == Damaged
	}
	var n uint64
	for mask := uint64(0); mask < 1<<len(unknowns); mask++ {
		for j, i := range unknowns {
			damaged[i] = mask&(1<<j) != 0
		}
		if groupsMatch(damaged, r.Groups) {
			n++
		}
	}
	return n, nil
}

// groupsMatch reports whether the runs of true values in damaged have
// exactly the lengths given by groups.
func groupsMatch(damaged []bool, groups []int) bool {
	var g, run int
	for i := 0; i <= len(damaged); i++ {
		if i < len(damaged) && damaged[i] {
			run++
			continue
		}
		if run == 0 {
			continue
		}
		if g == len(groups) || groups[g] != run {
			return false
		}
		g++
		run = 0
	}
	return g == len(groups)
}
