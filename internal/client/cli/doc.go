// Package cli implements the interactive blogctl shell: a small REPL
// over the client services. Commands print their results to the app's
// output writer; errors are user-facing messages, the structured log is
// reserved for diagnostics.
package cli
