package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/itsatony/go-kwargs"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// cli is the kong grammar for the kwargs command
type cli struct {
	Config   string `help:"YAML engine configuration file." type:"path"`
	LogLevel string `help:"Log level written to stderr." default:"off" enum:"off,debug,info,warn,error"`

	Names   namesCmd   `cmd:"" help:"Print the names captured by a capture list."`
	Compile compileCmd `cmd:"" help:"Print the positional form of a named template."`
	Render  renderCmd  `cmd:"" help:"Render a named template with captured or loaded bindings."`
	Version versionCmd `cmd:"" help:"Show version information."`
}

// runEnv is bound into every command's Run method
type runEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
	engine *kwargs.Engine
}

// exitSignal carries a kong exit request out of the parser
type exitSignal struct {
	code int
}

// commandError pairs a failure with the exit code it maps to
type commandError struct {
	code int
	msg  string
	err  error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *commandError) Unwrap() error {
	return e.err
}

func newCommandError(code int, msg string, err error) error {
	return &commandError{code: code, msg: msg, err: err}
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (exitCode int) {
	if len(args) == 0 {
		args = []string{FlagHelp}
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			exitCode = sig.code
		}
	}()

	var grammar cli
	parser, err := kong.New(&grammar,
		kong.Name(CLIName),
		kong.Description(CLIDescription),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitSignal{code: code}) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCLISetupFailed, err)
		return ExitCodeError
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUsage, err)
		return ExitCodeUsageError
	}

	logger, err := newLogger(grammar.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidLogLevel, err)
		return ExitCodeUsageError
	}
	defer func() { _ = logger.Sync() }()

	engine, err := newEngine(grammar.Config, logger)
	if err != nil {
		return report(stderr, err)
	}

	logger.Debug(LogMsgCLIStart, zap.String(LogFieldCommand, ktx.Command()))

	env := &runEnv{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		engine: engine,
	}
	if err := ktx.Run(env); err != nil {
		return report(stderr, err)
	}
	return ExitCodeSuccess
}

// report prints err and returns its exit code
func report(stderr io.Writer, err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		fmt.Fprintf(stderr, FmtErrorWithCause, cmdErr.msg, cmdErr.err)
		return cmdErr.code
	}
	fmt.Fprintln(stderr, err)
	return ExitCodeError
}
