package kwargs

import "time"

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Binding errors
	ErrMsgCaptureSyntax    = "invalid keyword arguments"
	ErrMsgArityMismatch    = "number of names does not match number of values"
	ErrMsgIndexOutOfRange  = "argument index out of range"
	ErrMsgTypeMismatch     = "keyword argument has unexpected type"
	ErrMsgEmptyName        = "keyword argument name cannot be empty"
	ErrMsgExpressionFailed = "keyword argument expression failed"

	// Template errors
	ErrMsgPlaceholderUnresolved = "placeholder does not name a keyword argument"
	ErrMsgFormatFailed          = "formatting failed"
	ErrMsgNilTemplate           = "template cannot be nil"

	// Call forwarding errors
	ErrMsgMissingArgument   = "argument missing"
	ErrMsgDuplicateArgument = "positional argument repeated as keyword argument"
	ErrMsgNotAFunction      = "target is not a function"
	ErrMsgParamCount        = "parameter names do not match function arity"
	ErrMsgArgumentType      = "argument cannot be used as parameter"
	ErrMsgTooManyPositional = "too many positional arguments"

	// Catalog errors
	ErrMsgEmptyTemplateName = "template name cannot be empty"
	ErrMsgCatalogClosed     = "catalog is closed"
	ErrMsgCatalogFailed     = "catalog operation failed"
	ErrMsgEmptyConnString   = "connection string cannot be empty"
	ErrMsgCatalogConnect    = "failed to connect to catalog database"
	ErrMsgCatalogMigration  = "catalog migration failed"
	ErrMsgNilStoredTemplate = "stored template cannot be nil"

	// Catalog driver errors
	ErrMsgNilCatalogDriver        = "catalog driver cannot be nil"
	ErrMsgDriverAlreadyRegistered = "catalog driver already registered"
	ErrMsgCatalogDriverNotFound   = "catalog driver not found"

	// Filesystem catalog errors
	ErrMsgInvalidCatalogRoot  = "catalog root directory cannot be empty"
	ErrMsgPathTraversal       = "template name contains path traversal"
	ErrMsgInvalidTemplateName = "template name contains invalid characters"

	// Config errors
	ErrMsgConfigInvalid   = "invalid configuration"
	ErrMsgBindingsInvalid = "bindings document must be a YAML mapping"
	ErrMsgUnknownPolicy   = "unknown unresolved placeholder policy"
)

// Error code constants for categorization
const (
	ErrCodeCapture     = "KWARGS_CAPTURE"
	ErrCodeArity       = "KWARGS_ARITY"
	ErrCodeIndex       = "KWARGS_INDEX"
	ErrCodeType        = "KWARGS_TYPE"
	ErrCodeTemplate    = "KWARGS_TEMPLATE"
	ErrCodeNilTemplate = "KWARGS_NIL_TEMPLATE"
	ErrCodeFormat      = "KWARGS_FORMAT"
	ErrCodeCall        = "KWARGS_CALL"
	ErrCodeExpr        = "KWARGS_EXPR"
	ErrCodeCatalog     = "KWARGS_CATALOG"
	ErrCodeConfig      = "KWARGS_CONFIG"
)

// Resource names reported by not-found errors
const (
	ResourceKeywordArgument = "keyword argument"
	ResourceTemplate        = "template"
)

// Metadata key constants for errors
const (
	MetaKeyCapture     = "capture"
	MetaKeyReason      = "reason"
	MetaKeyLine        = "line"
	MetaKeyColumn      = "column"
	MetaKeyOffset      = "offset"
	MetaKeyName        = "name"
	MetaKeyNames       = "names"
	MetaKeyValues      = "values"
	MetaKeyIndex       = "index"
	MetaKeyArity       = "arity"
	MetaKeyExpected    = "expected"
	MetaKeyActual      = "actual"
	MetaKeyPlaceholder = "placeholder"
	MetaKeyTemplate    = "template"
	MetaKeySuggestions = "suggestions"
	MetaKeyFunction    = "function"
	MetaKeyParameter   = "parameter"
	MetaKeyExpression  = "expression"
	MetaKeyField       = "field"
	MetaKeyDriver      = "driver"
	MetaKeyPath        = "path"
)

// Log message constants
const (
	LogMsgEngineCreated     = "engine created"
	LogMsgBind              = "binding keyword arguments"
	LogMsgBindRejected      = "keyword argument capture rejected"
	LogMsgCompile           = "compiling named template"
	LogMsgCacheHit          = "template cache hit"
	LogMsgCacheMiss         = "template cache miss"
	LogMsgCacheEvict        = "template cache eviction"
	LogMsgRender            = "rendering template"
	LogMsgForward           = "forwarding keyword arguments"
	LogMsgEval              = "evaluated keyword argument capture"
	LogMsgCatalogPut        = "template stored"
	LogMsgCatalogDelete     = "template deleted"
	LogMsgCatalogMigrate    = "catalog migrations applied"
	LogMsgLibraryRegistered = "template registered"
	LogMsgLibraryRejected   = "template registration rejected"
)

// Log field names
const (
	LogFieldCapture  = "capture"
	LogFieldTemplate = "template"
	LogFieldNames    = "name_count"
	LogFieldValues   = "value_count"
	LogFieldSlots    = "slot_count"
	LogFieldCacheLen = "cache_size"
	LogFieldCacheOn  = "cache_enabled"
	LogFieldLength   = "template_length"
	LogFieldPolicy   = "unresolved_policy"
	LogFieldFunction = "function"
	LogFieldName     = "name"
	LogFieldError    = "error"
	LogFieldVersion  = "version"
)

// Template cache defaults
const (
	DefaultCacheMaxEntries = 256
	DefaultMaxSuggestions  = 3
)

// Catalog driver names
const (
	CatalogDriverNameMemory     = "memory"
	CatalogDriverNameFilesystem = "filesystem"
	CatalogDriverNamePostgres   = "postgres"
)

// Filesystem catalog constants
const (
	FilesystemDirPermissions   = 0755
	FilesystemFilePermissions  = 0644
	FilesystemFileSuffix       = ".yaml"
	FilesystemInvalidNameChars = "/\\:*?\"<>|"
)

// PostgreSQL catalog defaults
const (
	PostgresDriverName             = "postgres"
	PostgresTablePrefix            = "kwargs_"
	PostgresTemplatesTable         = "templates"
	PostgresMigrationsTable        = "schema_migrations"
	PostgresDefaultMaxOpenConns    = 10
	PostgresDefaultMaxIdleConns    = 2
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Unresolved placeholder policy names used in configuration files
const (
	PolicyNameError  = "error"
	PolicyNameAppend = "append"
)

// Configuration field names used in error metadata
const (
	ConfigFieldPolicy          = "unresolved_policy"
	ConfigFieldSuggestions     = "suggestions"
	ConfigFieldCacheMaxEntries = "cache.max_entries"
)

// Metadata list separator
const listSeparator = ","
