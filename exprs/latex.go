package exprs

// ToLatex converts a whitespace-separated postfix token string, as emitted by
// the RIES solver, into LaTeX markup.
func ToLatex(src string) (string, error) {
	node, err := Parse(Tokenize(src))
	if err != nil {
		return "", err
	}
	return Render(node)
}
