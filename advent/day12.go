package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"github.com/springcount/aoc2023/springs"
)

func init() {
	register("12a", "count spring arrangements", day12a)
	register("12b", "count spring arrangements of unfolded records", day12b)
	register("12i", "count spring arrangements interactively", day12i)
}

const day12Section = "day12"

func day12a(args []string) {
	runDay12("12a", args, false)
}

func day12b(args []string) {
	runDay12("12b", args, true)
}

func runDay12(name string, args []string, unfold bool) {
	opts := mustParseOptions(name, args)
	stop, err := startProfile(opts.profile)
	if err != nil {
		log.Fatal(err)
	}
	n, err := day12(opts, unfold)
	if stopErr := stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
}

func mustParseOptions(name string, args []string) options {
	opts, err := parseOptions(name, day12Section, args)
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
	return opts
}

func day12(opts options, unfold bool) (uint64, error) {
	var r io.Reader = os.Stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}
	records, err := springs.ParseRecords(r)
	if err != nil {
		return 0, err
	}
	return solveDay12(records, opts, unfold)
}

var errBruteForceMismatch = errors.New("brute force disagrees")

func solveDay12(records []springs.Record, opts options, unfold bool) (uint64, error) {
	transform := func(r springs.Record) springs.Record { return r }
	if unfold {
		transform = func(r springs.Record) springs.Record {
			return springs.UnfoldN(r, opts.copies)
		}
	}
	count := func(r springs.Record) uint64 {
		return springs.Count(transform(r))
	}
	if opts.verbose {
		for i, r := range records {
			log.Printf("record %d: %# v", i+1, pretty.Formatter(r))
			log.Printf("record %d (%s): %s arrangements", i+1, r, humanize.Comma(int64(count(r))))
		}
	}

	total := springs.Sum(records, count, opts.parallel)
	if !opts.brute {
		return total, nil
	}
	want, err := bruteForceSum(records, transform)
	if err != nil {
		return 0, err
	}
	if want != total {
		return 0, mismatchError(total, want)
	}
	return total, nil
}

func bruteForceSum(records []springs.Record, transform func(springs.Record) springs.Record) (uint64, error) {
	expanded := make([]springs.Record, len(records))
	for i, r := range records {
		expanded[i] = transform(r)
		if n := expanded[i].Unknowns(); n > springs.MaxBruteForceUnknowns {
			return 0, fmt.Errorf("record %d (%s) has %d unknown springs; too many for -brute", i+1, r, n)
		}
	}
	var sum uint64
	for _, r := range expanded {
		n, err := springs.CountBruteForce(r)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return sum, nil
}

func mismatchError(counted, brute uint64) error {
	return fmt.Errorf("%w: counted %d; brute force found %d", errBruteForceMismatch, counted, brute)
}
