// Package i18n holds the console labels of the exercise validator.
package i18n

import "strings"

// Message codes.
const (
	Valid           = "valid"
	Invalid         = "invalid"
	ErrorProcessing = "error_processing"
	ErrorLine       = "error_line"
	Title           = "title"
	Checkpoints     = "checkpoints"
	TotalSteps      = "total_steps"
)

// Translator retrieves localized messages for console lines.
// data fills {name} placeholders (for example "file" or "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// Languages lists the built-in dictionaries.
var Languages = []string{"en", "ja"}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	return fill(t.template(code), data)
}

func (t dictTranslator) template(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case Valid:
			return "✅ {file} は有効です!"
		case Invalid:
			return "❌ {file} は無効です!"
		case ErrorProcessing:
			return "❌ {file} の処理中にエラーが発生しました: {error}"
		case ErrorLine:
			return "   エラー: {error}"
		case Title:
			return "   タイトル: {value}"
		case Checkpoints:
			return "   チェックポイント: {value}"
		case TotalSteps:
			return "   ステップ合計: {value}"
		}
	default: // "en"
		switch code {
		case Valid:
			return "✅ {file} is valid!"
		case Invalid:
			return "❌ {file} is invalid!"
		case ErrorProcessing:
			return "❌ Error processing {file}: {error}"
		case ErrorLine:
			return "   Error: {error}"
		case Title:
			return "   Title: {value}"
		case Checkpoints:
			return "   Checkpoints: {value}"
		case TotalSteps:
			return "   Total steps: {value}"
		}
	}
	return code
}

func fill(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// For returns the built-in Translator for lang ("en" or "ja"). Unknown
// languages fall back to English.
func For(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}
