package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatal(err)
	}
}

func TestOptionalArgs(t *testing.T) {
	executor := NewExecutor()

	var got string
	executor.Define("foo", Func(func(arg *string) {
		if arg != nil {
			got = *arg
		}
	}))

	if err := executor.Execute([]string{
		"foo", "bar",
	}); err != nil {
		t.Fatal(err)
	}
	if got != "bar" {
		t.Fatal()
	}
}

func TestAlias(t *testing.T) {
	executor := NewExecutor()

	var n int
	executor.Define("inc", Func(func() {
		n++
	}).Alias("i"))

	if err := executor.Execute([]string{
		"inc", "i",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatal()
	}
}
