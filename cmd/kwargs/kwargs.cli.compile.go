package main

import (
	"fmt"
)

// compileCmd prints the positional template produced for a list of names
type compileCmd struct {
	Template string   `help:"Template file (use '-' for stdin)." short:"t" required:""`
	Names    []string `help:"Comma-separated parameter names in positional order." short:"n" sep:","`
}

// Run executes the compile command.
func (c *compileCmd) Run(env *runEnv) error {
	source, err := readInput(c.Template, env.stdin)
	if err != nil {
		return newCommandError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	tmpl, err := env.engine.Compile(string(source), c.Names)
	if err != nil {
		return newCommandError(ExitCodeError, ErrMsgCompileFailed, err)
	}

	fmt.Fprint(env.stdout, tmpl.Positional())
	return nil
}
