// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the flags the user actually gave into configuration overrides;
// flags left out never mask settings from the environment or project file.
package cli
