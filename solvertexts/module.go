package solvertexts

import (
	"github.com/reusee/dscope"
	"github.com/thomasahle/ries/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Parse func(text string) []Equation

func (Module) Parse(
	logger logs.Logger,
) Parse {
	return func(text string) []Equation {
		return ParseOutput(text, logger)
	}
}
