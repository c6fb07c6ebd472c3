package exprs

import "fmt"

// Parse reduces a postfix token sequence to a single expression tree using an
// operand stack. Binary operators pop the right operand first, then the left.
func Parse(tokens []Token) (*Node, error) {
	var stack []*Node
	for _, tok := range tokens {
		switch tok.Kind {

		case TokenNumber, TokenFraction:
			stack = append(stack, Literal(tok.Text))

		case TokenConstant:
			stack = append(stack, Constant(constants[tok.Text]))

		case TokenVariable:
			stack = append(stack, Variable(tok.Text))

		case TokenUnaryOp:
			if len(stack) < 1 {
				return nil, fmt.Errorf("%w: %s needs 1 operand", ErrInsufficientOperands, tok.Text)
			}
			stack[len(stack)-1] = UnaryCall(tok.Text, stack[len(stack)-1])

		case TokenBinaryOp:
			if len(stack) < 2 {
				return nil, fmt.Errorf("%w: %s needs 2 operands", ErrInsufficientOperands, tok.Text)
			}
			right := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = BinaryCall(tok.Text, stack[len(stack)-1], right)

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownToken, tok.Text)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d values left on stack", ErrInvalidExpression, len(stack))
	}
	return stack[0], nil
}
