package assembler

// expandMath handles add and sub: left operand into RegLeft, right into RegRight, then the opcode.
func expandMath(n Node) ([]string, error) {
	if len(n.Operands) != 2 {
		return nil, &ValidationError{Token: n.Raw}
	}

	left, err := loadOperand(n.Operands[0], RegLeft)
	if err != nil {
		return nil, err
	}
	right, err := loadOperand(n.Operands[1], RegRight)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(left)+len(right)+2)
	out = append(out, left...)
	out = append(out, right...)
	return append(out, n.Mnemonic, ""), nil
}
