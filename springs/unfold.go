package springs

// UnfoldCopies is the number of copies Unfold makes of a record.
const UnfoldCopies = 5

// Unfold returns the unfolded form of r: its springs repeated
// UnfoldCopies times with a single unknown spring between copies, and its
// groups repeated UnfoldCopies times.
func Unfold(r Record) Record {
	return UnfoldN(r, UnfoldCopies)
}

// UnfoldN is like Unfold but makes n copies. It panics if n < 1.
func UnfoldN(r Record, n int) Record {
	if n < 1 {
		panic("springs: unfold copy count must be at least 1")
	}
	out := Record{
		Springs: make([]Cell, 0, n*len(r.Springs)+n-1),
		Groups:  make([]int, 0, n*len(r.Groups)),
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			out.Springs = append(out.Springs, Unknown)
		}
		out.Springs = append(out.Springs, r.Springs...)
		out.Groups = append(out.Groups, r.Groups...)
	}
	return out
}
