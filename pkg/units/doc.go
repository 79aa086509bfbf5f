// Package units implements a closed catalog of physical base properties
// and display units, conversion between units through each property's SI
// anchor, and auto-ranging (picking the unit that best fits a magnitude
// into a preferred decimal window).
//
// All catalog data is immutable and process-wide; every function in this
// package is pure and safe for concurrent use without synchronization.
package units
