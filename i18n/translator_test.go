package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	en := For("")
	if msg := en.Message(Valid, map[string]string{"file": "a.yaml"}); msg != "✅ a.yaml is valid!" {
		t.Fatalf("unexpected english message %q", msg)
	}
	ja := For("ja")
	if msg := ja.Message(Valid, map[string]string{"file": "a.yaml"}); msg == "✅ a.yaml is valid!" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
	if msg := For("fr").Message(TotalSteps, map[string]string{"value": "3"}); msg != "   Total steps: 3" {
		t.Fatalf("unknown languages should fall back to english, got %q", msg)
	}
}

func TestTranslator_UnknownCode(t *testing.T) {
	if msg := For("en").Message("nope", nil); msg != "nope" {
		t.Fatalf("unknown codes are echoed, got %q", msg)
	}
}

func TestFill_ValueWithBraces(t *testing.T) {
	// Substituted values are not expanded again.
	got := For("en").Message(ErrorProcessing, map[string]string{"file": "{error}.json", "error": "boom"})
	if want := "❌ Error processing {error}.json: boom"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
