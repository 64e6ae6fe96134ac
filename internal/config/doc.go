// Package config defines the format-agnostic configuration model of an
// extraction run, its defaults, and the Loader interface implemented by the
// project-file readers (see package hcl).
//
// A run's Model is assembled in layers, each one overriding the previous:
// built-in defaults, the environment, the project file, and finally explicit
// command-line flags.
package config
