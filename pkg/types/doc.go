// Package types defines the OKR domain entities, tracking-window
// configuration, month helpers, and standard errors shared by the storage
// layer, the scoring engine, and the CLI.
package types
