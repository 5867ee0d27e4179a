// Package contacts holds release metadata for the contacts module.
package contacts

// Version is the current release of the contacts CLI and libraries.
const Version = "0.1.0"
