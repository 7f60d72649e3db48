// Package cli defines the Cobra command tree for the actionsmith CLI.
// Each file in this package registers one top-level command (new, inspect,
// fmt, etc.) with the root command. Command implementations delegate to
// the action, scaffold, and runner packages for business logic and only
// handle flag parsing, I/O formatting, and user interaction.
package cli
