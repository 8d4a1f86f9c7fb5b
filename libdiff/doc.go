// Package libdiff computes line differences between tablature texts, for
// showing what a reflow changed.
package libdiff
