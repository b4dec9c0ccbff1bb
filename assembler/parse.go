package assembler

import (
	"regexp"
	"strconv"
	"strings"
)

// Line sigils.
const (
	SigilComment   = "#"
	SigilLabel     = "@"
	SigilReference = "$"
)

// InputToken names the machine's input port as an operand.
const InputToken = "in"

var (
	reRegister = regexp.MustCompile(`^reg[0-9]+$`)

	macros = map[string]NodeType{
		OpGoto: NodeGoto,
		"jneq": NodeJneq,
		"jeq":  NodeJeq,
		OpAdd:  NodeAdd,
		OpSub:  NodeSub,
	}
)

// ParseLine classifies a single line. Sigils are checked on the first
// character. Macros must match the first word exactly and start the line, so
// "gotox" and "  add in 2" stay raw.
func ParseLine(s string) Node {
	n := Node{Type: NodeRaw, Raw: s}
	switch {
	case s == "":
		n.Type = NodeBlank
		return n
	case strings.HasPrefix(s, SigilComment):
		n.Type = NodeComment
		return n
	case strings.HasPrefix(s, SigilLabel):
		n.Type = NodeLabel
		n.Label = s[len(SigilLabel):]
		return n
	case strings.HasPrefix(s, SigilReference):
		n.Type = NodeReference
		n.Label = s[len(SigilReference):]
		return n
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return n
	}

	// The opcode must open the line; indented macros and bare macro words
	// pass through as base instructions.
	t, ok := macros[fields[0]]
	if !ok || len(fields) == 1 || !strings.HasPrefix(s, fields[0]) {
		return n
	}
	n.Type = t
	n.Mnemonic = fields[0]
	n.Operands = fields[1:]
	return n
}

// isRegister checks the register lexical form, "reg" and a decimal number.
func isRegister(s string) bool {
	return reRegister.MatchString(s)
}

// isReference checks for a '$name' token with a non-empty name.
func isReference(s string) bool {
	return strings.HasPrefix(s, SigilReference) && len(s) > len(SigilReference)
}

// parseNumber parses a signed 32-bit decimal literal.
func parseNumber(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, &ValidationError{Token: s}
	}
	return int32(v), nil
}

// assertRegister returns the token unchanged if it is register-shaped.
func assertRegister(s string) (string, error) {
	if !isRegister(s) {
		return "", &ValidationError{Token: s}
	}
	return s, nil
}

// assertNumber returns the token unchanged if it is a valid literal.
func assertNumber(s string) (string, error) {
	if _, err := parseNumber(s); err != nil {
		return "", err
	}
	return s, nil
}
