package numdiffs

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	markupSci = regexp.MustCompile(`^(-?[0-9.]+) \\cdot 10\^\{(-?\d+)\}$`)
	plainSci  = regexp.MustCompile(`^(-?[0-9.]+)e([+-]?\d+)$`)
	plainNum  = regexp.MustCompile(`^-?[0-9.]+$`)
)

// Highlight returns computed with the digits it shares with target left
// plain and the diverging tail wrapped in \textcolor{color}{...}. No digit
// of computed is ever dropped; identical inputs come back unmodified.
func Highlight(target, computed, color string) string {
	if coeff, exp, ok := splitScientific(computed); ok {
		return highlightScientific(target, computed, coeff, exp, color)
	}
	if plainNum.MatchString(computed) {
		if out, ok := highlightDecimal(target, computed, color); ok {
			return out
		}
	}
	return highlightChars(target, computed, color)
}

func splitScientific(s string) (coeff string, exp int, ok bool) {
	m := markupSci.FindStringSubmatch(s)
	if m == nil {
		m = plainSci.FindStringSubmatch(s)
	}
	if m == nil {
		return "", 0, false
	}
	exp, err := strconv.Atoi(strings.TrimPrefix(m[2], "+"))
	if err != nil {
		return "", 0, false
	}
	return m[1], exp, true
}

func highlightScientific(target, computed, coeff string, exp int, color string) string {
	var reference string
	if tc, te, ok := splitScientific(target); ok && te == exp {
		// same magnitude, coefficients compare directly
		reference = tc
	} else {
		if ok {
			target = rescale(tc, -te)
		}
		reference = rescale(target, exp)
	}

	split := splitPoint(reference, coeff)
	if split < 0 {
		return computed
	}

	out := coeff[:split] + `\textcolor{` + color + `}{` + coeff[split:] + `}`
	if exp != 0 {
		out += ` \cdot 10^{` + strconv.Itoa(exp) + `}`
	}
	return out
}

// rescale divides a plain decimal string by 10^exp, moving the decimal
// point without touching the digits.
func rescale(num string, exp int) string {
	sign := ""
	if strings.HasPrefix(num, "-") {
		sign = "-"
		num = num[1:]
	}
	intPart, fracPart, _ := strings.Cut(num, ".")
	digits := intPart + fracPart
	point := len(intPart) - exp

	switch {
	case point <= 0:
		digits = strings.Repeat("0", 1-point) + digits
		point = 1
	case point > len(digits):
		digits += strings.Repeat("0", point-len(digits))
	}

	out := digits[:point] + "." + digits[point:]
	out = strings.TrimSuffix(out, ".")
	for len(out) > 1 && out[0] == '0' && out[1] != '.' {
		out = out[1:]
	}
	return sign + out
}

// splitPoint walks target and computed digit by digit, each skipping its own
// decimal point, and returns the index in computed of the first diverging
// character, or -1 when every character of computed is confirmed. Once the
// target's precision runs out, zeros still count as confirmed.
func splitPoint(target, computed string) int {
	ti, ci := 0, 0
	for ci < len(computed) {
		if computed[ci] == '.' {
			ci++
			continue
		}
		for ti < len(target) && target[ti] == '.' {
			ti++
		}
		if ti >= len(target) {
			if computed[ci] == '0' {
				ci++
				continue
			}
			return ci
		}
		if target[ti] != computed[ci] {
			return ci
		}
		ti++
		ci++
	}
	return -1
}

// highlightDecimal handles a plain-decimal computed value when the target
// (with an implicit trailing zero after a bare decimal point) is a literal
// prefix of it. Zero digits after the confirmed prefix are still confirmed
// precision, never highlighted.
func highlightDecimal(target, computed, color string) (string, bool) {
	if strings.HasSuffix(target, ".") {
		target += "0"
	}
	if !strings.HasPrefix(computed, target) {
		return "", false
	}
	i := len(target)
	for i < len(computed) && (computed[i] == '0' || computed[i] == '.') {
		i++
	}
	if i >= len(computed) {
		return computed, true
	}
	return computed[:i] + `\textcolor{` + color + `}{` + computed[i:] + `}`, true
}

// highlightChars is the last resort: a plain left-to-right character
// comparison.
func highlightChars(target, computed, color string) string {
	i := 0
	for i < len(target) && i < len(computed) && target[i] == computed[i] {
		i++
	}
	if i >= len(computed) {
		return computed
	}
	return computed[:i] + `\textcolor{` + color + `}{` + computed[i:] + `}`
}
