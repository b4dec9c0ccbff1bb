package assembler

import "github.com/grimdork/climate/str"

// LabelsToComments turns "@name" into "#name".
func LabelsToComments(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		n := ParseLine(line)
		if n.Type == NodeLabel {
			out[i] = SigilComment + n.Label
			continue
		}
		out[i] = line
	}
	return out
}

// RemoveBlank drops empty lines.
func RemoveBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Format joins lines into listing text, each line newline-terminated.
func Format(lines []string) string {
	s := str.NewStringer()
	for _, line := range lines {
		s.WriteStrings(line, "\n")
	}
	return s.String()
}
