package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/springcount/aoc2023/springs"
)

const day12Sample = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`

func TestNameLess(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want bool
	}{
		{"3a", "12a", true},
		{"12a", "3a", false},
		{"12a", "12b", true},
		{"12b", "12i", true},
		{"25", "12i", false},
		{"12a", "12a", false},
	} {
		if got := nameLess(tt.a, tt.b); got != tt.want {
			t.Errorf("nameLess(%q, %q): got %t; want %t", tt.a, tt.b, got, tt.want)
		}
	}
	var got []string
	for _, s := range sortedSolutions() {
		got = append(got, s.name)
	}
	if want := "12a 12b 12i"; strings.Join(got, " ") != want {
		t.Errorf("got solutions %q; want %q", got, want)
	}
}

func TestSolveDay12(t *testing.T) {
	records, err := springs.ParseRecords(strings.NewReader(day12Sample))
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		unfold bool
		opts   options
		want   uint64
	}{
		{false, options{copies: 5}, 21},
		{false, options{copies: 5, parallel: 3, brute: true}, 21},
		{true, options{copies: 5}, 525152},
		{true, options{copies: 5, parallel: 4}, 525152},
		{true, options{copies: 1, brute: true}, 21},
	} {
		got, err := solveDay12(records, tt.opts, tt.unfold)
		if err != nil {
			t.Errorf("solveDay12(unfold=%t, %+v): %s", tt.unfold, tt.opts, err)
			continue
		}
		if got != tt.want {
			t.Errorf("solveDay12(unfold=%t, %+v): got %d; want %d", tt.unfold, tt.opts, got, tt.want)
		}
	}

	_, err = solveDay12(records, options{copies: 5, brute: true}, true)
	if err == nil {
		t.Error("brute force of unfolded sample: got nil error")
	}
}

func TestDay12Input(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte(day12Sample), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := day12(options{input: input, copies: 5}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != 525152 {
		t.Errorf("got %d; want 525152", got)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("??? 1\n??x 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := day12(options{input: bad, copies: 5}, false); err == nil {
		t.Error("got nil error for malformed input")
	}
	if _, err := day12(options{input: filepath.Join(dir, "missing"), copies: 5}, false); err == nil {
		t.Error("got nil error for missing input")
	}
}

func TestDescribeRecord(t *testing.T) {
	got, err := describeRecord("?###???????? 3,2,1", options{copies: 5})
	if err != nil {
		t.Fatal(err)
	}
	if want := "10 arrangements; 506,250 unfolded (x5)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if _, err := describeRecord("?###???????? 3,x", options{copies: 5}); err == nil {
		t.Error("got nil error for bad record")
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions("12b", day12Section, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (options{copies: 5, parallel: 1}); opts != want {
		t.Errorf("defaults: got %+v; want %+v", opts, want)
	}

	config := filepath.Join(t.TempDir(), "advent.ini")
	const configText = `[day12]
input = records.txt
copies = 3
parallel = 8
verbose = true
`
	if err := os.WriteFile(config, []byte(configText), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err = parseOptions("12b", day12Section, []string{"-config", config, "-copies", "2"})
	if err != nil {
		t.Fatal(err)
	}
	want := options{input: "records.txt", copies: 2, parallel: 8, verbose: true}
	if opts != want {
		t.Errorf("with config: got %+v; want %+v", opts, want)
	}

	for _, args := range [][]string{
		{"-copies", "0"},
		{"-parallel", "x"},
		{"extra"},
		{"-config", filepath.Join(t.TempDir(), "missing.ini")},
	} {
		if _, err := parseOptions("12b", day12Section, args); err == nil {
			t.Errorf("parseOptions(%q): got nil error", args)
		}
	}
}

func TestParseOptionsBadConfig(t *testing.T) {
	dir := t.TempDir()
	for _, text := range []string{
		"[day12]\nunfold = 5\n",
		"[day12]\ncopies = five\n",
	} {
		config := filepath.Join(dir, "advent.ini")
		if err := os.WriteFile(config, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := parseOptions("12a", day12Section, []string{"-config", config}); err == nil {
			t.Errorf("config %q: got nil error", text)
		}
	}
}

func TestStartProfile(t *testing.T) {
	stop, err := startProfile("")
	if err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Fatal(err)
	}

	filename := filepath.Join(t.TempDir(), "fgprof.pprof")
	stop, err = startProfile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := solveDay12(nil, options{copies: 5}, true); err != nil {
		t.Fatal(err)
	}
	if err := stop(); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(filename)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}
}

func TestBruteForceMismatchIsWrapped(t *testing.T) {
	err := mismatchError(1, 2)
	if !errors.Is(err, errBruteForceMismatch) {
		t.Errorf("got %v; want errBruteForceMismatch", err)
	}
}
