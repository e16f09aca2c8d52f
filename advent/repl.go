package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"github.com/springcount/aoc2023/springs"
)

func day12i(args []string) {
	opts := mustParseOptions("12i", args)
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "record> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent12.history"),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := describeRecord(line, opts)
		if err != nil {
			fmt.Fprintln(l.Stderr(), "error:", err)
			continue
		}
		fmt.Fprintln(l.Stdout(), s)
	}
}

// describeRecord counts the arrangements of the record on line, folded and
// unfolded.
func describeRecord(line string, opts options) (string, error) {
	r, err := springs.ParseRecord(line)
	if err != nil {
		return "", err
	}
	folded := springs.Count(r)
	unfolded := springs.Count(springs.UnfoldN(r, opts.copies))
	s := fmt.Sprintf("%s arrangements; %s unfolded (x%d)",
		humanize.Comma(int64(folded)), humanize.Comma(int64(unfolded)), opts.copies)
	if opts.verbose {
		s += fmt.Sprintf("\n%# v", pretty.Formatter(r))
	}
	return s, nil
}
