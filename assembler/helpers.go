package assembler

// Register names a machine register.
type Register string

// Registers with a fixed role in macro expansions. RegZero doubles as the
// accumulator that bare literals load into.
const (
	RegZero    Register = "reg0"
	RegLeft    Register = "reg1"
	RegRight   Register = "reg2"
	RegCompare Register = "reg3"
)

// Base instruction opcodes emitted by expansions.
const (
	OpGoto = "goto"
	OpAdd  = "add"
	OpSub  = "sub"
	OpJnz  = "jnz"
	OpJz   = "jz"
)

// move builds a "<src>_to_<dst>" base instruction.
func move(src string, dst Register) string {
	return src + "_to_" + string(dst)
}

// loadOperand lowers an arithmetic operand into the lines that place it in dst.
// Anything that isn't the input token or a register must be a literal.
func loadOperand(tok string, dst Register) ([]string, error) {
	switch {
	case tok == InputToken:
		return []string{move(InputToken, dst)}, nil
	case isRegister(tok):
		return []string{move(tok, dst)}, nil
	}

	lit, err := assertNumber(tok)
	if err != nil {
		return nil, err
	}
	return []string{lit, move(string(RegZero), dst)}, nil
}
