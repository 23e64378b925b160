// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It selects the
// key-value backend and carries its connection settings through to the
// binaries without interpreting them.
package config
