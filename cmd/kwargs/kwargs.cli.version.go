package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/itsatony/go-kwargs"
)

// versionCmd prints library and toolchain versions
type versionCmd struct {
	Format string `help:"Output format." short:"F" default:"text" enum:"text,json"`
}

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// Run executes the version command.
func (c *versionCmd) Run(env *runEnv) error {
	if c.Format == OutputFormatJSON {
		data, err := json.MarshalIndent(versionOutput{
			Version:   kwargs.Version,
			GoVersion: runtime.Version(),
		}, "", JSONIndent)
		if err != nil {
			return newCommandError(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintln(env.stdout, string(data))
		return nil
	}

	fmt.Fprintf(env.stdout, VersionTextTemplate+FmtNewline, kwargs.Version, runtime.Version())
	return nil
}
