package jsonresume

import eng "github.com/reoring/jsonresume/internal/engine"

// Severity expresses how an input irregularity is treated.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	// OnDuplicateKey selects what happens when an object repeats a key.
	// With Ignore or Warn the last value wins.
	OnDuplicateKey Severity
}

// DecodeOpt bundles decoding options. The zero value accepts any well-formed
// document of any size and depth.
type DecodeOpt struct {
	Strictness Strictness
	MaxDepth   int   // maximum container nesting; 0 disables the check
	MaxBytes   int64 // maximum input size; 0 disables the check
	// FailFast stops at the first issue instead of collecting all of them.
	FailFast bool
	// IssueSink receives non-fatal issues, such as duplicate keys under Warn.
	IssueSink func(Issue)
}

func lastOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}

func (o DecodeOpt) engineOptions() eng.EnforceOptions {
	eo := eng.EnforceOptions{MaxDepth: o.MaxDepth}
	switch o.Strictness.OnDuplicateKey {
	case Error:
		eo.OnDuplicate = eng.DupError
	case Warn:
		eo.OnDuplicate = eng.DupWarn
	}
	if o.IssueSink != nil {
		sink := o.IssueSink
		eo.IssueSink = func(si eng.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	return eo
}
