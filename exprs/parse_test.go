package exprs

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	node, err := Parse(Tokenize("1 x phi + /"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Kind != NodeBinary || node.Op != "/" {
		t.Fatalf("expected division root, got %+v", node)
	}
	if node.Left.Kind != NodeLiteral || node.Left.Text != "1" {
		t.Fatalf("bad numerator: %+v", node.Left)
	}
	sum := node.Right
	if sum.Kind != NodeBinary || sum.Op != "+" {
		t.Fatalf("bad denominator: %+v", sum)
	}
	if sum.Left.Text != "x" || sum.Right.Text != `\phi` {
		t.Fatalf("bad operands: %+v %+v", sum.Left, sum.Right)
	}
}

func TestParseOperandOrder(t *testing.T) {
	// right operand pops first, left second; atan2 never commutes
	node, err := Parse(Tokenize("a b atan2"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Left.Text != "a" || node.Right.Text != "b" {
		t.Fatalf("operand order lost: %+v", node)
	}
}

func TestParseExpParens(t *testing.T) {
	tests := []struct {
		input  string
		parens bool
	}{
		{"x y +", true},
		{"x y -", true},
		{"x y /", true},
		{"x 2 ^", true},
		{"x 2 **", true},
		{"x 3 root", true},
		{"x neg", true},
		{"x exp", true},
		{"2", false},
		{"x", false},
		{"pi", false},
		{"x sqrt", false},
		{"x s", false},
		{"a b atan2", false},
		{"x 10 logN", false},
		{"x y *", false},
	}
	for _, test := range tests {
		node, err := Parse(Tokenize(test.input))
		if err != nil {
			t.Fatal(err)
		}
		if node.ExpParens != test.parens {
			t.Fatalf("input %q: expected ExpParens %v", test.input, test.parens)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"+", ErrInsufficientOperands},
		{"x +", ErrInsufficientOperands},
		{"sqrt", ErrInsufficientOperands},
		{"x y", ErrInvalidExpression},
		{"", ErrInvalidExpression},
		{"x bogus +", ErrUnknownToken},
		{"Z", ErrUnknownToken},
	}
	for _, test := range tests {
		_, err := Parse(Tokenize(test.input))
		if !errors.Is(err, test.err) {
			t.Fatalf("input %q: expected %v, got %v", test.input, test.err, err)
		}
	}
}
