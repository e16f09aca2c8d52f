// Package springs counts the arrangements of damaged hot springs that are
// consistent with a condition record.
//
// A record lists each spring as operational ('.'), damaged ('#'), or
// unknown ('?'), followed by the sizes of the contiguous groups of damaged
// springs, in order:
//
//	???.### 1,1,3
package springs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Cell is the recorded condition of a single spring.
type Cell uint8

const (
	Operational Cell = iota
	Damaged
	Unknown
)

func (c Cell) String() string {
	switch c {
	case Operational:
		return "."
	case Damaged:
		return "#"
	case Unknown:
		return "?"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

func parseCell(c byte) (Cell, bool) {
	switch c {
	case '.':
		return Operational, true
	case '#':
		return Damaged, true
	case '?':
		return Unknown, true
	}
	return 0, false
}

// A Record is one row of springs together with the sizes of its damaged
// groups. Records are not modified after parsing.
type Record struct {
	Springs []Cell
	Groups  []int
}

// String formats r the way it appears in puzzle input.
func (r Record) String() string {
	var b strings.Builder
	for _, c := range r.Springs {
		b.WriteString(c.String())
	}
	b.WriteByte(' ')
	for i, g := range r.Groups {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(g))
	}
	return b.String()
}

// Unknowns reports how many springs in r have an unknown condition.
func (r Record) Unknowns() int {
	var n int
	for _, c := range r.Springs {
		if c == Unknown {
			n++
		}
	}
	return n
}

var errFieldCount = errors.New("record must have a springs field and a groups field")

// ParseRecord parses a single line of puzzle input.
func ParseRecord(line string) (Record, error) {
	var r Record
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return r, errFieldCount
	}
	r.Springs = make([]Cell, len(fields[0]))
	for i := 0; i < len(fields[0]); i++ {
		c, ok := parseCell(fields[0][i])
		if !ok {
			return r, fmt.Errorf("illegal spring state %q at column %d", fields[0][i], i+1)
		}
		r.Springs[i] = c
	}
	parts := strings.Split(fields[1], ",")
	r.Groups = make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return r, fmt.Errorf("bad group length %q: %w", part, err)
		}
		if n <= 0 {
			return r, fmt.Errorf("group length %d is not positive", n)
		}
		r.Groups[i] = n
	}
	return r, nil
}

// ParseRecords reads one record per line from r. Blank lines are ignored.
// The first malformed line aborts parsing.
func ParseRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
