package assembler

import "errors"

var (
	// ErrValidation matches any *ValidationError.
	ErrValidation = errors.New("parse error")
	// ErrUnresolved matches any *UnresolvedError.
	ErrUnresolved = errors.New("unresolved label")
)

// ValidationError reports a malformed token in a macro line.
type ValidationError struct {
	Token string
}

func (e *ValidationError) Error() string {
	return "parse error on " + e.Token
}

// Is makes errors.Is(err, ErrValidation) work through wrapping.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnresolvedError reports a reference to an undefined label. Only returned in strict mode.
type UnresolvedError struct {
	Label string
}

func (e *UnresolvedError) Error() string {
	return "unresolved label " + e.Label
}

// Is makes errors.Is(err, ErrUnresolved) work through wrapping.
func (e *UnresolvedError) Is(target error) bool {
	return target == ErrUnresolved
}
