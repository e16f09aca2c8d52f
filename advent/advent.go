// Command advent runs Advent of Code solutions.
//
// Usage:
//
//	advent <solution> [flags] < input
//
// Run advent with no arguments for the list of solutions.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [solution] [flags...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where solution is one of:")
		for _, s := range sortedSolutions() {
			fmt.Fprintf(os.Stderr, "  %-4s %s\n", s.name, s.desc)
		}
		os.Exit(1)
	}

	s, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	s.run(os.Args[2:])
}

type solution struct {
	name string
	desc string
	run  func(args []string)
}

var solutions = make(map[string]solution)

func register(name, desc string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = solution{name: name, desc: desc, run: fn}
}

func sortedSolutions() []solution {
	var s []solution
	for _, sol := range solutions {
		s = append(s, sol)
	}
	sort.Slice(s, func(i, j int) bool { return nameLess(s[i].name, s[j].name) })
	return s
}

// nameLess orders solution names by day number, then by part suffix.
func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 != n1 {
		return n0 < n1
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
