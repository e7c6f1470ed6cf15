// Package config provides configuration structures and utilities for assetext.
// It defines the runtime options built from command-line flags and the
// optional .assetext YAML file that supplies a default table path and
// logging preferences.
package config
