// Package cli holds the flag handling and exit codes shared by the step
// executables and the component catalog.
//
// Every step executable accepts its step options as named flags, echoes the
// computed result on stdout and logs to stderr. Exit codes are stable so an
// orchestrator can tell usage errors from step failures.
package cli
