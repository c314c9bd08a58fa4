//go:build !sideprojects

package jsonresume

// Extensions is empty unless the module is built with -tags sideprojects.
type Extensions struct{}
