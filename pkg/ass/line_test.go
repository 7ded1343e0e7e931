package ass

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		input string
		kind  LineKind
		text  string
		ok    bool
	}{
		{"", LineEmpty, "", true},
		{"; generated by aegisub", LineComment, " generated by aegisub", true},
		{";!", LineComment, "!", true},
		{"Title: My Script", LineVariable, "Title: My Script", true},
		{"Key: value: with: colons", LineVariable, "Key: value: with: colons", true},
		{"!ABC0123&'()", LineEncoded, "!ABC0123&'()", true},
		{"lowercase is out of range", 0, "", false},
		{"no-separator-here", 0, "", false},
	}
	for _, tt := range tests {
		line, ok := ClassifyLine(tt.input)
		if ok != tt.ok {
			t.Errorf("ClassifyLine(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if line.Kind() != tt.kind {
			t.Errorf("ClassifyLine(%q) kind = %v, want %v", tt.input, line.Kind(), tt.kind)
		}
		if line.Text() != tt.text {
			t.Errorf("ClassifyLine(%q) text = %q, want %q", tt.input, line.Text(), tt.text)
		}
	}
}

func TestClassifyLineEncodedLength(t *testing.T) {
	long := make([]byte, 81)
	for i := range long {
		long[i] = 'A'
	}
	if _, ok := ClassifyLine(string(long)); ok {
		t.Error("81-byte encoded line should not classify")
	}
	if line, ok := ClassifyLine(string(long[:80])); !ok || line.Kind() != LineEncoded {
		t.Error("80-byte encoded line should classify as encoded")
	}
}

func TestLineItem(t *testing.T) {
	line := NewVariable("Title", "A: B")
	key, value, ok := line.Item()
	if !ok || key != "Title" || value != "A: B" {
		t.Fatalf("Item() = %q, %q, %v", key, value, ok)
	}
	if _, _, ok := (Line{}).Item(); ok {
		t.Error("empty line should have no item")
	}
}

func TestLineIsComment(t *testing.T) {
	comment, _ := ClassifyLine("; note")
	if !comment.IsComment() {
		t.Error("semicolon line should be a comment")
	}
	if !NewVariable("Comment", "ignored").IsComment() {
		t.Error("Comment variable should count as a comment")
	}
	if NewVariable("Title", "x").IsComment() {
		t.Error("Title variable should not be a comment")
	}
}

func TestLineSet(t *testing.T) {
	line := NewVariable("PlayResX", "1280")
	line.Set("1920")
	if _, value, _ := line.Item(); value != "1920" {
		t.Errorf("Set: value = %q, want %q", value, "1920")
	}
	empty := Line{}
	empty.Set("x")
	if empty.Kind() != LineEmpty {
		t.Error("Set on an empty line should be a no-op")
	}
	empty.Overwrite("Title", "x")
	if key, value, ok := empty.Item(); !ok || key != "Title" || value != "x" {
		t.Errorf("Overwrite: item = %q, %q, %v", key, value, ok)
	}
}
