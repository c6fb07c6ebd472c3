package solvertexts

import (
	"regexp"
	"strings"

	"github.com/thomasahle/ries/exprs"
	"github.com/thomasahle/ries/logs"
)

// Equation is one converted solver result row. Offset is the signed
// right-hand residual copied verbatim from the solver line, or "0" for an
// exact match.
type Equation struct {
	LHS    string
	RHS    string
	Offset string
}

// banner appears in every real solver transcript; its presence
// distinguishes "solver found nothing" from arbitrary non-solver text.
const banner = "Your target value"

const noEquations = `\text{no equations found}`

var (
	// the offset group must allow a + inside the exponent, not only as the
	// leading sign, or positive-exponent offsets get truncated
	offsetLine = regexp.MustCompile(`^\s*(.+?)\s*=\s*(.+?)\s+for\s+x\s*=\s*T\s*([+-]\s*[\d.]+(?:e[+-]?\d+)?)\s*$`)

	// ASCII and Unicode quotes both occur in solver output
	exactLine = regexp.MustCompile(`^\s*(.+?)\s*=\s*(.+?)\s*\(['‘]exact['’] match\)`)
)

// ParseOutput scans a raw solver transcript and returns the equations it
// asserts, in order of appearance.
func ParseOutput(text string, logger logs.Logger) []Equation {
	var equations []Equation

	for _, line := range strings.Split(text, "\n") {

		if m := offsetLine.FindStringSubmatch(line); m != nil {
			equations = append(equations, Equation{
				LHS:    convertSide(m[1], logger),
				RHS:    convertSide(m[2], logger),
				Offset: m[3],
			})
			continue
		}

		if m := exactLine.FindStringSubmatch(line); m != nil {
			equations = append(equations, Equation{
				LHS:    convertSide(m[1], logger),
				RHS:    convertSide(m[2], logger),
				Offset: "0",
			})
		}
	}

	if len(equations) == 0 && strings.Contains(text, banner) {
		equations = append(equations, Equation{
			LHS:    noEquations,
			Offset: "0",
		})
	}

	return equations
}

// convertSide degrades to the raw token text when a side fails to parse; a
// readable raw row beats a dropped solver result.
func convertSide(src string, logger logs.Logger) string {
	latex, err := exprs.ToLatex(src)
	if err != nil {
		logger.Debug("keeping raw equation side",
			"side", src,
			"error", err,
		)
		return src
	}
	return latex
}
