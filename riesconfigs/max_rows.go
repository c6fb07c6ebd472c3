package riesconfigs

import (
	"github.com/thomasahle/ries/cmds"
	"github.com/thomasahle/ries/configs"
	"github.com/thomasahle/ries/vars"
)

// MaxRows caps the number of equation rows printed; 0 means unlimited.
type MaxRows int

var maxRowsFlag = cmds.Var[int]("-max-rows")

func (Module) MaxRows(
	loader configs.Loader,
) MaxRows {
	return MaxRows(vars.FirstNonZero(
		*maxRowsFlag,
		configs.First[int](loader, "max_rows"),
	))
}
