//go:build novalidate

package jsonresume

const validateDates = false
