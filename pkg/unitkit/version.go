// Package unitkit holds project-level metadata.
package unitkit

// Version is the unitkit release version.
const Version = "0.3.0"
