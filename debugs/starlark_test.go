package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type equation struct {
		LHS    string
		Offset string
		hidden int
	}

	testCases := []struct {
		name  string
		input any
		check func(starlark.Value) bool
	}{
		{"nil", nil, func(v starlark.Value) bool {
			return v == starlark.None
		}},
		{"string", "x^{2}", func(v starlark.Value) bool {
			return v == starlark.String("x^{2}")
		}},
		{"int", 42, func(v starlark.Value) bool {
			return v == starlark.MakeInt(42)
		}},
		{"float", 3.5, func(v starlark.Value) bool {
			return v == starlark.Float(3.5)
		}},
		{"struct", equation{LHS: "x", Offset: "0", hidden: 1}, func(v starlark.Value) bool {
			d, ok := v.(*starlark.Dict)
			if !ok || d.Len() != 2 {
				return false
			}
			val, found, _ := d.Get(starlark.String("LHS"))
			return found && val == starlark.String("x")
		}},
		{"slice of structs", []equation{{LHS: "x"}}, func(v starlark.Value) bool {
			l, ok := v.(*starlark.List)
			return ok && l.Len() == 1
		}},
		{"pointer", &equation{LHS: "x"}, func(v starlark.Value) bool {
			_, ok := v.(*starlark.Dict)
			return ok
		}},
	}

	for _, tc := range testCases {
		v := toStarlarkValue(tc.input)
		if !tc.check(v) {
			t.Fatalf("%s: got %v", tc.name, v)
		}
	}
}
