// Package i18n produces human-readable messages for issue codes.
package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" and "got" for invalid_type, "pattern" for pattern).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if data["expected"] != "" {
				return "型が不正です(期待: " + data["expected"] + ", 実際: " + data["got"] + ")"
			}
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "duplicate_key":
			return "キーが重複しています"
		case "pattern":
			return "日付の形式が不正です"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if data["expected"] != "" {
				return "invalid type: expected " + data["expected"] + ", got " + data["got"]
			}
			return "invalid type"
		case "required":
			return "required property missing"
		case "duplicate_key":
			return "duplicate key"
		case "pattern":
			if data["pattern"] != "" {
				return "value does not match " + data["pattern"]
			}
			return "value does not match pattern"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Value // holder

func init() { current.Store(holder{dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(holder{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation. nil restores the
// English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(holder{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return current.Load().(holder).tr.Message(code, data)
}
