// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates cobra flags into the application's internal configuration and
// dispatches to the app lifecycle.
package cli
