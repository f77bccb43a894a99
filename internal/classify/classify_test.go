package classify

import "testing"

func TestCategorizeLLM(t *testing.T) {
	cat := Categorize("New GPT model released", "OpenAI ships a faster reasoning model")
	if cat != LLM {
		t.Errorf("expected llm, got %s", cat)
	}
}

func TestCategorizeVision(t *testing.T) {
	cat := Categorize("Better object detection on edge devices", "A new segmentation architecture")
	if cat != Vision {
		t.Errorf("expected vision, got %s", cat)
	}
}

func TestCategorizeEthics(t *testing.T) {
	cat := Categorize("EU finalizes AI regulation", "New policy rules for foundation systems")
	if cat != Ethics {
		t.Errorf("expected ethics, got %s", cat)
	}
}

func TestCategorizeML(t *testing.T) {
	cat := Categorize("Faster training on sparse datasets", "A new optimizer")
	if cat != ML {
		t.Errorf("expected ml, got %s", cat)
	}
}

func TestCategorizePrecedenceLLMOverVision(t *testing.T) {
	// Both an LLM keyword and a vision keyword present: LLM wins.
	cat := Categorize("GPT now understands camera input", "Multimodal image generation with a language model")
	if cat != LLM {
		t.Errorf("expected llm to win precedence, got %s", cat)
	}
}

func TestCategorizePrecedenceVisionOverEthics(t *testing.T) {
	cat := Categorize("Facial recognition and privacy", "A camera system under scrutiny")
	if cat != Vision {
		t.Errorf("expected vision to win precedence, got %s", cat)
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	cat := Categorize("CHATGPT UPDATE", "")
	if cat != LLM {
		t.Errorf("expected llm for uppercase keyword, got %s", cat)
	}
}

func TestCategorizeDefaultsToML(t *testing.T) {
	cat := Categorize("Quarterly industry roundup", "What happened this quarter")
	if cat != ML {
		t.Errorf("expected ml catch-all, got %s", cat)
	}
	cat = Categorize("", "")
	if cat != ML {
		t.Errorf("expected ml for empty input, got %s", cat)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"llm", LLM, false},
		{"ml", ML, false},
		{"vision", Vision, false},
		{"ethics", Ethics, false},
		{"all", All, false},
		{"All", All, false},
		{"LLMs", LLM, false},
		{"Computer Vision", Vision, false},
		{"bogus", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, cat := range AllCategories() {
		if !cat.Valid() {
			t.Errorf("%s should be valid", cat)
		}
	}
	if All.Valid() {
		t.Error("all is a filter value, not an assignable category")
	}
	if Category("news").Valid() {
		t.Error("unknown category should not be valid")
	}
}
