package main

import (
	"io"
	"os"

	"github.com/itsatony/go-kwargs"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadEnv reads an expression environment file. An empty path yields an
// empty environment.
func loadEnv(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newCommandError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	env, err := kwargs.LoadEnv(data)
	if err != nil {
		return nil, newCommandError(ExitCodeInputError, ErrMsgInvalidEnv, err)
	}
	return env, nil
}

// loadBindings reads an ordered bindings file. An empty path yields no
// bindings.
func loadBindings(path string) (*kwargs.Args, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newCommandError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	args, err := kwargs.LoadBindings(data)
	if err != nil {
		return nil, newCommandError(ExitCodeInputError, ErrMsgInvalidBindings, err)
	}
	return args, nil
}
