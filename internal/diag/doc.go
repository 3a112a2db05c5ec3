// Package diag carries the positional error returned by a failed load and
// renders it for a terminal.
package diag
