// Package config defines the application configuration structure and loads
// it once at startup from environment variables or an optional config file.
package config
