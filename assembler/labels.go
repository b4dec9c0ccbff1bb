package assembler

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/grimdork/climate/str"
)

// LabelMap maps label names to instruction indices.
type LabelMap map[string]int

// Positions returns the instruction index recorded for each line. The counter
// advances after a line only if it occupies a slot, so a label definition gets
// the index of the next real instruction.
func Positions(lines []string) []int {
	pos := make([]int, len(lines))
	idx := 0
	for i, line := range lines {
		pos[i] = idx
		if ParseLine(line).OccupiesSlot() {
			idx++
		}
	}
	return pos
}

// BuildLabelMap collects the position of every label definition in expanded text.
// A label defined twice keeps the later position.
func BuildLabelMap(lines []string) LabelMap {
	pos := Positions(lines)
	labels := make(LabelMap)
	for i, line := range lines {
		n := ParseLine(line)
		if n.Type == NodeLabel {
			labels[n.Label] = pos[i]
		}
	}
	return labels
}

// Substitute replaces each resolvable reference line with "<index> # <line>".
// References to unknown labels are left alone.
func Substitute(lines []string, labels LabelMap) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		n := ParseLine(line)
		if n.Type != NodeReference {
			continue
		}
		if idx, ok := labels[n.Label]; ok {
			out[i] = strconv.Itoa(idx) + " # " + line
		}
	}
	return out
}

// Unresolved returns the names of references still present after substitution, in order.
func Unresolved(lines []string) []string {
	var names []string
	for _, line := range lines {
		n := ParseLine(line)
		if n.Type == NodeReference {
			names = append(names, n.Label)
		}
	}
	return names
}

// Label is one entry of a LabelMap.
type Label struct {
	Name  string
	Index int
}

// Sorted returns the labels ordered by index, then name.
func (m LabelMap) Sorted() []Label {
	list := make([]Label, 0, len(m))
	for name, idx := range m {
		list = append(list, Label{Name: name, Index: idx})
	}
	slices.SortFunc(list, func(a, b Label) int {
		if c := cmp.Compare(a.Index, b.Index); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return list
}

// String lists the table as "name=index" lines.
func (m LabelMap) String() string {
	s := str.NewStringer()
	for _, l := range m.Sorted() {
		s.WriteStrings(l.Name, "=", strconv.Itoa(l.Index), "\n")
	}
	return s.String()
}
