package header

import (
	"sort"
	"strings"
)

// Table maps canonical header names to their values in encounter order.
// A Table is never modified after Parse returns it.
type Table struct {
	values map[string][]string
}

// Parse builds a Table from a message head. The first line is the status or
// request line and is skipped. Parsing stops at the first line without a
// colon.
func Parse(lines []string) (Table, error) {
	if len(lines) == 0 {
		return Table{}, malformedHead()
	}

	values := make(map[string][]string, len(lines)-1)
	for _, line := range lines[1:] {
		colonIdx := strings.IndexByte(line, ':')
		if colonIdx == -1 {
			return Table{}, malformedHeaderLine(line)
		}

		key := Canonical(line[:colonIdx])
		values[key] = append(values[key], strings.TrimSpace(line[colonIdx+1:]))
	}

	return Table{values: values}, nil
}

// Canonical returns the form header names are stored and compared in.
func Canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (t Table) Len() int {
	return len(t.values)
}

// Names returns the canonical names in lexical order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t Table) Get(name string) []string {
	stored := t.values[Canonical(name)]
	out := make([]string, len(stored))
	copy(out, stored)
	return out
}

func (t Table) Equal(other Table) bool {
	if len(t.values) != len(other.values) {
		return false
	}
	for name, vals := range t.values {
		otherVals, ok := other.values[name]
		if !ok || len(vals) != len(otherVals) {
			return false
		}
		for i := range vals {
			if vals[i] != otherVals[i] {
				return false
			}
		}
	}
	return true
}
