package exprs

import (
	"regexp"
	"strings"
)

type Token struct {
	Kind TokenKind
	Text string
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenFraction
	TokenConstant
	TokenVariable
	TokenUnaryOp
	TokenBinaryOp
)

var (
	numberPattern   = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)$`)
	fractionPattern = regexp.MustCompile(`^-?\d+/\d+$`)
)

// Tokenize splits a whitespace-separated postfix expression into classified
// tokens. The squaring sugar dup* expands to "2 **" before classification.
func Tokenize(src string) []Token {
	fields := strings.Fields(src)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		if field == "dup*" {
			tokens = append(tokens,
				Token{Kind: TokenNumber, Text: "2"},
				Token{Kind: TokenBinaryOp, Text: "**"},
			)
			continue
		}
		tokens = append(tokens, Token{
			Kind: classify(field),
			Text: field,
		})
	}
	return tokens
}

// classify is total: every token lands in exactly one category, with
// TokenInvalid for anything unrecognized. Operator tables take priority over
// the single-letter variable rule so that tokens like "s" and "q" keep their
// operator meaning.
func classify(text string) TokenKind {
	switch {
	case numberPattern.MatchString(text):
		return TokenNumber
	case fractionPattern.MatchString(text):
		return TokenFraction
	}
	if _, ok := constants[text]; ok {
		return TokenConstant
	}
	if _, ok := unaryOps[text]; ok {
		return TokenUnaryOp
	}
	if _, ok := binaryOps[text]; ok {
		return TokenBinaryOp
	}
	if len(text) == 1 && text[0] >= 'a' && text[0] <= 'z' {
		return TokenVariable
	}
	return TokenInvalid
}
