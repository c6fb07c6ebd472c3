package numdiffs

import (
	"github.com/reusee/dscope"
	"github.com/thomasahle/ries/riesconfigs"
)

type Module struct {
	dscope.Module
	Configs riesconfigs.Module
}

type Highlighter func(target, computed string) string

func (Module) Highlighter(
	color riesconfigs.HighlightColor,
) Highlighter {
	return func(target, computed string) string {
		return Highlight(target, computed, string(color))
	}
}
