package exprs

import "errors"

var (
	// parse errors
	ErrUnknownToken         = errors.New("unknown token")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrInvalidExpression    = errors.New("invalid expression")

	// render errors: unreachable for parser-produced trees, so hitting one
	// means an internal inconsistency rather than bad input
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownNodeType = errors.New("unknown node type")
)
