package exprs

type Node struct {
	Kind NodeKind

	// Text holds the literal digits, the variable name, or the constant
	// symbol, depending on Kind.
	Text string

	// Op is the operator token for NodeUnary and NodeBinary.
	Op string

	Left  *Node // unary child, or binary left operand
	Right *Node

	// ExpParens records whether this node must be wrapped in parentheses
	// when it appears as the base of an exponentiation. It is fixed at
	// construction and never recomputed during rendering.
	ExpParens bool
}

type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeLiteral
	NodeVariable
	NodeConstant
	NodeUnary
	NodeBinary
)

func Literal(text string) *Node {
	return &Node{Kind: NodeLiteral, Text: text}
}

func Variable(name string) *Node {
	return &Node{Kind: NodeVariable, Text: name}
}

func Constant(symbol string) *Node {
	return &Node{Kind: NodeConstant, Text: symbol}
}

func UnaryCall(op string, child *Node) *Node {
	return &Node{
		Kind:      NodeUnary,
		Op:        op,
		Left:      child,
		ExpParens: op == "neg" || op == "exp",
	}
}

func BinaryCall(op string, left, right *Node) *Node {
	var parens bool
	switch op {
	case "+", "-", "/", "^", "**", "root":
		parens = true
	}
	return &Node{
		Kind:      NodeBinary,
		Op:        op,
		Left:      left,
		Right:     right,
		ExpParens: parens,
	}
}
