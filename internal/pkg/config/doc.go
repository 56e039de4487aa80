// Package config provides functionality for loading and managing the CLI configuration.
//
// Settings are read from an optional YAML file, overridden by environment variables,
// and validated before use. Defaults target the liboqs shared library that ships
// next to the binary or in the current working directory.
package config
