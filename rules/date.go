// Package rules holds the field-level checks applied to résumé values.
package rules

import "regexp"

// DatePattern is the format accepted for date fields: YYYY, YYYY-MM or
// YYYY-MM-DD. Only the leading digit of month and day is constrained, so
// 2021-19-39 matches. Keep it that way; other JSON Resume tools accept the
// same set.
const DatePattern = `^([1-2][0-9]{3}(-[0-1][0-9](-[0-3][0-9])?)?)$`

var dateRE = regexp.MustCompile(DatePattern)

// MatchDate reports whether s is an acceptable date value.
func MatchDate(s string) bool { return dateRE.MatchString(s) }
