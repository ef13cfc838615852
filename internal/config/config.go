package config

// Config holds all application configuration. It is loaded once at startup
// and passed explicitly to the components that need it; nothing reads
// environment variables after Load returns.
type Config struct {
	// Environment is the deployment environment name (dev, staging, prod).
	// It is stamped onto every task, response envelope, and error report.
	Environment string `mapstructure:"environment" validate:"required"`

	// Stage is the API stage name exposed in response metadata.
	Stage string `mapstructure:"stage" validate:"required"`

	// LogLevel controls slog verbosity.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// DLQURL is the dead-letter queue endpoint for error reports. An empty
	// value disables error forwarding entirely; it is never an error.
	DLQURL string `mapstructure:"dlq_url" validate:"omitempty,url"`

	// FunctionName identifies this deployment in error reports. The Lambda
	// adapter overrides it with the runtime-provided function name.
	FunctionName string `mapstructure:"function_name"`

	Server ServerConfig `mapstructure:"server"`
}

// ServerConfig contains settings used only by the standalone HTTP adapter.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}
