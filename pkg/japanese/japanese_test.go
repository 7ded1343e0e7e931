package japanese

import "testing"

func TestIsJapanese(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'あ', true},
		{'ア', true},
		{'ｱ', true},
		{'漢', true},
		{'a', false},
		{'1', false},
		{'한', false},
	}
	for _, tt := range tests {
		if got := IsJapanese(tt.r); got != tt.want {
			t.Errorf("IsJapanese(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestContainsJapanese(t *testing.T) {
	if !ContainsJapanese("hello こんにちは") {
		t.Error("mixed text should contain japanese")
	}
	if ContainsJapanese("hello world") {
		t.Error("latin text should not contain japanese")
	}
}

func TestFixBrokenTextWidensKana(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ｱｲｳｴｵ", "アイウエオ"},
		// Voicing marks compose into their base kana.
		{"ｶﾞｷﾞｸﾞ", "ガギグ"},
		{"ﾊﾟﾋﾟﾌﾟ", "パピプ"},
		{"already wide アイウ", "already wide アイウ"},
		{"ascii stays narrow", "ascii stays narrow"},
	}
	for _, tt := range tests {
		if got := FixBrokenText(tt.input); got != tt.want {
			t.Errorf("FixBrokenText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFixBrokenTextRemovesGaiji(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"before[外:3A4B5C]after", "beforeafter"},
		{"[外:AB12][外:CD34]", ""},
		// Non-hex body or a missing bracket leaves the text alone.
		{"[外:XYZ]", "[外:XYZ]"},
		{"[外:AB12", "[外:AB12"},
		{"no gaiji here", "no gaiji here"},
	}
	for _, tt := range tests {
		if got := FixBrokenText(tt.input); got != tt.want {
			t.Errorf("FixBrokenText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFixBrokenTextStripsDirectionalMarks(t *testing.T) {
	input := "\u202aこんにちは\u202c&lrm;"
	if got := FixBrokenText(input); got != "こんにちは" {
		t.Errorf("FixBrokenText(%q) = %q, want %q", input, got, "こんにちは")
	}
}
