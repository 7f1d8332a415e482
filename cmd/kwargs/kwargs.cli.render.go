package main

import (
	"github.com/itsatony/go-kwargs"
)

// renderCmd renders a template with bindings from a capture list, a
// bindings file, or both. Captured names shadow names from the file.
type renderCmd struct {
	Template string `help:"Template file (use '-' for stdin)." short:"t" required:""`
	Capture  string `help:"Capture list evaluated against the environment, e.g. 'x, total=price * qty'." short:"c"`
	EnvFile  string `help:"YAML mapping used as the expression environment." short:"e" type:"path"`
	DataFile string `help:"YAML mapping of ordered bindings." short:"f" type:"path"`
	Output   string `help:"Output file." short:"o" default:"-"`
}

// Run executes the render command.
func (c *renderCmd) Run(env *runEnv) error {
	source, err := readInput(c.Template, env.stdin)
	if err != nil {
		return newCommandError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	args, err := c.bindings(env)
	if err != nil {
		return err
	}

	result, err := env.engine.Format(string(source), args)
	if err != nil {
		return newCommandError(ExitCodeError, ErrMsgRenderFailed, err)
	}

	if err := writeOutput(c.Output, []byte(result), env.stdout); err != nil {
		return newCommandError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// bindings merges captured bindings ahead of file bindings
func (c *renderCmd) bindings(env *runEnv) (*kwargs.Args, error) {
	fileArgs, err := loadBindings(c.DataFile)
	if err != nil {
		return nil, err
	}

	var pairs []kwargs.Pair
	if c.Capture != "" {
		exprEnv, err := loadEnv(c.EnvFile)
		if err != nil {
			return nil, err
		}
		captured, err := env.engine.Eval(c.Capture, exprEnv)
		if err != nil {
			return nil, newCommandError(ExitCodeError, ErrMsgCaptureFailed, err)
		}
		pairs = append(pairs, captured.Pairs()...)
	}
	pairs = append(pairs, fileArgs.Pairs()...)

	args, err := kwargs.FromPairs(pairs...)
	if err != nil {
		return nil, newCommandError(ExitCodeError, ErrMsgCaptureFailed, err)
	}
	return args, nil
}
