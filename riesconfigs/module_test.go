package riesconfigs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		color HighlightColor,
		maxRows MaxRows,
	) {
		if *highlightColorFlag == "" && color != "red" {
			t.Fatalf("got %q", color)
		}
		if *maxRowsFlag == 0 && maxRows != 0 {
			t.Fatalf("got %d", maxRows)
		}
	})
}

func TestFlagOverride(t *testing.T) {
	*highlightColorFlag = "blue"
	defer func() {
		*highlightColorFlag = ""
	}()
	dscope.New(new(Module)).Call(func(
		color HighlightColor,
	) {
		if color != "blue" {
			t.Fatalf("got %q", color)
		}
	})
}
