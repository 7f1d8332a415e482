package main

// CLI metadata
const (
	CLIName        = "kwargs"
	CLIDescription = "Named-argument capture and named format templates"
)

// Command names
const (
	CmdNameNames   = "names"
	CmdNameCompile = "compile"
	CmdNameRender  = "render"
	CmdNameVersion = "version"
)

// Flag names
const (
	FlagHelp = "--help"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
)

// Log levels accepted by --log-level besides the zap level names
const (
	LogLevelOff = "off"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUsage             = "invalid usage"
	ErrMsgCLISetupFailed    = "failed to build command line parser"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgInvalidLogLevel   = "invalid log level"
	ErrMsgInvalidBindings   = "invalid bindings"
	ErrMsgInvalidEnv        = "invalid expression environment"
	ErrMsgCaptureFailed     = "capture evaluation failed"
	ErrMsgCompileFailed     = "template compilation failed"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Log messages
const (
	LogMsgCLIStart  = "cli command starting"
	LogMsgCLIConfig = "cli configuration loaded"
)

// Log field names
const (
	LogFieldCommand = "command"
	LogFieldPath    = "path"
)

// Version output format templates
const (
	VersionTextTemplate = "kwargs version %s\nGo: %s"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %v\n"
	FmtNewline        = "\n"
	JSONIndent        = "  "
)
