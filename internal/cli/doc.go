// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags into the application's internal configuration; flags
// the user did not set are left to the settings file and the defaults.
package cli
