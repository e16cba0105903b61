// Package okrboard carries project-wide metadata.
package okrboard

// Version is the current release version.
const Version = "0.1.0"
