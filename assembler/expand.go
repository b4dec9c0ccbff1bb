package assembler

import "fmt"

// Expand returns the lines that replace one source line.
// Lines that aren't macros come back unchanged.
func Expand(line string) ([]string, error) {
	n := ParseLine(line)
	switch n.Type {
	case NodeGoto:
		return expandGoto(n)
	case NodeJneq, NodeJeq:
		return expandBranch(n)
	case NodeAdd, NodeSub:
		return expandMath(n)
	case NodeRaw, NodeBlank, NodeComment, NodeLabel, NodeReference:
		return []string{line}, nil
	}
	return nil, fmt.Errorf("unknown node type %d", n.Type)
}

// ExpandLines expands every line in order. The first failure stops expansion.
func ExpandLines(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		exp, err := Expand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, exp...)
	}
	return out, nil
}
