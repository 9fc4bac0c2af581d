package utils

const (
	// EmptyString represents a reusable empty string constant.
	EmptyString = ""
	// ApplicationName is the binary and configuration namespace.
	ApplicationName = "copyctx"
	// ConfigFileName is the name of the local and global configuration file.
	ConfigFileName = ".copyctx.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home that holds the global configuration.
	GlobalConfigDirectoryName = ".copyctx"
	// LoggerInitializationFailedMessageFormat reports a failure to build the application logger.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command failures.
	ApplicationExecutionFailedMessage = "copyctx failed"
)
