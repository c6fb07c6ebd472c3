package debugs

import (
	"github.com/reusee/dscope"
	"github.com/thomasahle/ries/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
