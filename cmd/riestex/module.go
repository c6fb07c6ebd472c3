package main

import (
	"github.com/reusee/dscope"
	"github.com/thomasahle/ries/debugs"
	"github.com/thomasahle/ries/numdiffs"
	"github.com/thomasahle/ries/solvertexts"
)

type Module struct {
	dscope.Module
	SolverTexts solvertexts.Module
	NumDiffs    numdiffs.Module
	Debugs      debugs.Module
}
