package expr

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer too large to convert to float")
)

// EvaluationError is returned for every failure of Evaluate. Callers that only
// need to know that evaluation failed can treat it as opaque; the wrapped
// sentinel tells syntax, division and overflow failures apart.
type EvaluationError struct {
	Expression string
	Offset     int
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluate %q: %v at offset %d", e.Expression, e.Err, e.Offset)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
