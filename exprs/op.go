package exprs

// The operator and constant tables are process-wide constants, initialized
// once and never written to afterwards.

var constants = map[string]string{
	"pi":  `\pi`,
	"p":   `\pi`,
	"phi": `\phi`,
	"e":   "e",
	"a":   "a",
	"b":   "b",
	"x":   "x",
	"y":   "y",
}

type unaryEntry struct {
	render func(arg string) string
}

var unaryOps = map[string]unaryEntry{
	"q":     {render: func(arg string) string { return `\sqrt{` + arg + `}` }},
	"sqrt":  {render: func(arg string) string { return `\sqrt{` + arg + `}` }},
	"l":     {render: func(arg string) string { return `\ln(` + arg + `)` }},
	"ln":    {render: func(arg string) string { return `\ln(` + arg + `)` }},
	"s":     {render: func(arg string) string { return `\sin(` + arg + `)` }},
	"r":     {render: func(arg string) string { return `\frac{1}{` + arg + `}` }},
	"recip": {render: func(arg string) string { return `\frac{1}{` + arg + `}` }},
	"log2":  {render: func(arg string) string { return `\log_{2}(` + arg + `)` }},
	"exp":   {render: func(arg string) string { return `e^{` + arg + `}` }},
	"neg":   {render: func(arg string) string { return "-" + arg }},
	"sinpi": {render: func(arg string) string { return `\sin(\pi ` + arg + `)` }},
	"cospi": {render: func(arg string) string { return `\cos(\pi ` + arg + `)` }},
	"tanpi": {render: func(arg string) string { return `\tan(\pi ` + arg + `)` }},
}

// trigNames maps the trig-of-pi operators to their function commands, for
// the fraction-collapsing special case in the renderer.
var trigNames = map[string]string{
	"sinpi": `\sin`,
	"cospi": `\cos`,
	"tanpi": `\tan`,
}

type binaryEntry struct {
	prec   int
	render func(left, right string) string
}

var binaryOps = map[string]binaryEntry{
	"+": {prec: 1, render: func(left, right string) string { return left + " + " + right }},
	"-": {prec: 1, render: func(left, right string) string { return left + " - " + right }},
	"*": {prec: 2, render: func(left, right string) string { return left + " " + right }},
	"/": {prec: 2, render: func(left, right string) string { return `\frac{` + left + `}{` + right + `}` }},
	"^": {prec: 3, render: func(left, right string) string { return left + "^{" + right + "}" }},
	"**": {prec: 3, render: func(left, right string) string { return left + "^{" + right + "}" }},
	"root": {prec: 3, render: func(left, right string) string { return left + "^{1/" + right + "}" }},
	"logN": {prec: 4, render: func(left, right string) string { return `\log_{` + right + `}(` + left + `)` }},
	"atan2": {prec: 4, render: func(left, right string) string {
		return `\operatorname{atan2}(` + left + `,` + right + `)`
	}},
}
