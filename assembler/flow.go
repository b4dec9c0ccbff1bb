package assembler

// expandGoto puts the target on the line before the goto opcode.
func expandGoto(n Node) ([]string, error) {
	if len(n.Operands) != 1 {
		return nil, &ValidationError{Token: n.Raw}
	}
	return []string{n.Operands[0], OpGoto}, nil
}

// expandBranch handles jneq and jeq: "<op> <reg> <value> $label".
func expandBranch(n Node) ([]string, error) {
	if len(n.Operands) != 3 {
		return nil, &ValidationError{Token: n.Raw}
	}

	jump := OpJnz
	if n.Type == NodeJeq {
		jump = OpJz
	}

	reg, err := assertRegister(n.Operands[0])
	if err != nil {
		return nil, err
	}
	v, err := parseNumber(n.Operands[1])
	if err != nil {
		return nil, err
	}
	target := n.Operands[2]
	if !isReference(target) {
		return nil, &ValidationError{Token: target}
	}

	// Comparing against zero needs no subtraction.
	if v == 0 {
		return []string{
			move(reg, RegCompare),
			target,
			jump,
			"",
		}, nil
	}

	return []string{
		move(reg, RegLeft),
		n.Operands[1],
		move(string(RegZero), RegRight),
		OpSub,
		target,
		jump,
		"",
	}, nil
}
