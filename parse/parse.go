// Package parse reads valve networks written one valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// and turns them into core.NodeRecord values. Blank lines are skipped.
// Name resolution is left to core.Build.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valveflow/core"
)

// Sentinel errors for malformed input.
var (
	// ErrSyntax indicates a line that does not follow the valve grammar.
	ErrSyntax = errors.New("parse: syntax error")

	// ErrBadFlow indicates a flow rate that is not a non-negative integer.
	ErrBadFlow = errors.New("parse: bad flow rate")
)

var lineRE = regexp.MustCompile(
	`^Valve (\S+) has flow rate=([^;]*); tunnels? leads? to valves? (.*)$`)

// ParseFile opens path and parses it.
func ParseFile(path string) ([]core.NodeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads every valve line from r.
// Errors carry the 1-based line number.
func Parse(r io.Reader) ([]core.NodeRecord, error) {
	var out []core.NodeRecord
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return out, nil
}

func parseLine(text string) (core.NodeRecord, error) {
	m := lineRE.FindStringSubmatch(text)
	if m == nil {
		return core.NodeRecord{}, fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	flow, err := strconv.Atoi(m[2])
	if err != nil || flow < 0 {
		return core.NodeRecord{}, fmt.Errorf("%w: %q", ErrBadFlow, m[2])
	}

	rec := core.NodeRecord{Name: m[1], Flow: flow}
	for _, name := range strings.Split(m[3], ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return core.NodeRecord{}, fmt.Errorf("%w: empty tunnel target in %q", ErrSyntax, text)
		}
		rec.Neighbors = append(rec.Neighbors, name)
	}

	return rec, nil
}
