package riesconfigs

import (
	"github.com/thomasahle/ries/cmds"
	"github.com/thomasahle/ries/configs"
	"github.com/thomasahle/ries/vars"
)

// HighlightColor is the \textcolor argument wrapping diverging digits.
type HighlightColor string

const defaultHighlightColor = "red"

var highlightColorFlag = cmds.Var[string]("-highlight-color")

func (Module) HighlightColor(
	loader configs.Loader,
) HighlightColor {
	return HighlightColor(vars.FirstNonZero(
		*highlightColorFlag,
		configs.First[string](loader, "highlight_color"),
		defaultHighlightColor,
	))
}
