package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/thomasahle/ries/cmds"
	"github.com/thomasahle/ries/debugs"
	"github.com/thomasahle/ries/logs"
	"github.com/thomasahle/ries/numdiffs"
	"github.com/thomasahle/ries/riesconfigs"
	"github.com/thomasahle/ries/solvertexts"
	"golang.org/x/term"
)

var (
	filePath     = cmds.Var[string]("-f")
	diffTarget   = cmds.Var[string]("-target")
	diffComputed = cmds.Var[string]("-computed")
	tapFlag      = cmds.Switch("-tap")
)

func init() {
	cmds.GlobalExecutor.Define("-about", cmds.Func(func() {
		fmt.Println("riestex converts RIES solver output to LaTeX rows")
		os.Exit(0)
	}).Desc("print a short description"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(new(Module))

	scope.Call(func(
		logger logs.Logger,
		parse solvertexts.Parse,
		highlight numdiffs.Highlighter,
		tap debugs.Tap,
		maxRows riesconfigs.MaxRows,
	) {

		// standalone diff mode
		if *diffTarget != "" || *diffComputed != "" {
			fmt.Println(highlight(*diffTarget, *diffComputed))
			return
		}

		var raw []byte
		if *filePath != "" {
			content, err := os.ReadFile(*filePath)
			ce(err)
			raw = content
		} else {
			raw = getStdinContent()
		}
		if len(raw) == 0 {
			logger.Warn("no solver output; pass -f or pipe stdin")
			return
		}

		equations := parse(string(raw))
		logger.Info("parsed solver output",
			"bytes", len(raw),
			"equations", len(equations),
		)

		if *tapFlag {
			tap(ctx, "equations", map[string]any{
				"equations": equations,
				"raw":       string(raw),
			})
		}

		for i, eq := range equations {
			if maxRows > 0 && i >= int(maxRows) {
				break
			}
			if eq.RHS == "" {
				fmt.Println(eq.LHS)
				continue
			}
			if eq.Offset == "0" {
				fmt.Printf("%s = %s\n", eq.LHS, eq.RHS)
			} else {
				fmt.Printf("%s = %s \\quad (x = T %s)\n", eq.LHS, eq.RHS, eq.Offset)
			}
		}

	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}
