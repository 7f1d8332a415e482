package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// namesCmd prints the names bound by a capture list
type namesCmd struct {
	Capture string `arg:"" help:"Capture list, e.g. 'foo, bar=1'."`
	Format  string `help:"Output format." short:"F" default:"text" enum:"text,json"`
}

// Run executes the names command.
func (c *namesCmd) Run(env *runEnv) error {
	names, err := env.engine.Names(c.Capture)
	if err != nil {
		return newCommandError(ExitCodeError, ErrMsgCaptureFailed, err)
	}

	if c.Format == OutputFormatJSON {
		if names == nil {
			names = []string{}
		}
		data, err := json.MarshalIndent(names, "", JSONIndent)
		if err != nil {
			return newCommandError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintln(env.stdout, string(data))
		return nil
	}

	if len(names) > 0 {
		fmt.Fprint(env.stdout, strings.Join(names, FmtNewline)+FmtNewline)
	}
	return nil
}
