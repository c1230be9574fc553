package task

import (
	"strings"
	"testing"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := New("same text")
		if task.ID == "" {
			t.Fatal("New returned empty id")
		}
		if task.Completed {
			t.Error("New task must start incomplete")
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	l := List{
		{ID: "a", Text: "first"},
		{ID: "b", Text: "second"},
		{ID: "c", Text: "third"},
	}

	if !l.Remove("b") {
		t.Fatal("Remove returned false for existing id")
	}
	if len(l) != 2 {
		t.Fatalf("length: got %d, want 2", len(l))
	}
	if l[0].ID != "a" || l[1].ID != "c" {
		t.Errorf("order not preserved: %v", l)
	}

	if l.Remove("missing") {
		t.Error("Remove returned true for missing id")
	}
	if len(l) != 2 {
		t.Errorf("Remove of missing id changed length: %d", len(l))
	}
}

func TestToggleIsInvolution(t *testing.T) {
	l := List{{ID: "a", Text: "task"}}

	if !l.Toggle("a") {
		t.Fatal("Toggle returned false for existing id")
	}
	if !l[0].Completed {
		t.Error("first toggle: completed should be true")
	}
	if l[0].ID != "a" || l[0].Text != "task" {
		t.Error("toggle changed other fields")
	}

	if !l.Toggle("a") {
		t.Fatal("second Toggle returned false")
	}
	if l[0].Completed {
		t.Error("second toggle: completed should be false again")
	}

	if l.Toggle("missing") {
		t.Error("Toggle returned true for missing id")
	}
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name string
		id   string
		text string
		want bool
	}{
		{name: "replace text", id: "a", text: "new text", want: true},
		{name: "empty text allowed", id: "a", text: "", want: true},
		{name: "missing id", id: "zzz", text: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := List{{ID: "a", Text: "old", Completed: true}}
			got := l.SetText(tt.id, tt.text)
			if got != tt.want {
				t.Fatalf("SetText() = %v, want %v", got, tt.want)
			}
			if !tt.want {
				return
			}
			if l[0].Text != tt.text {
				t.Errorf("text: got %q, want %q", l[0].Text, tt.text)
			}
			if l[0].ID != "a" || !l[0].Completed {
				t.Error("SetText changed id or completed")
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{"  x  ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.text); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := List{
		{ID: "a", Text: "Buy milk", Completed: false},
		{ID: "b", Text: "", Completed: true},
		{ID: "c", Text: "third", Completed: false},
	}

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("length: got %d, want %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("task %d: got %+v, want %+v", i, decoded[i], original[i])
		}
	}
}

func TestEncodeNilList(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil list: got %q, want empty array", data)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{nope"},
		{name: "not an array", data: `{"id":"a"}`},
		{name: "missing field", data: `[{"id":"a","text":"x"}]`},
		{name: "wrong type", data: `[{"id":"a","text":"x","completed":"yes"}]`},
		{name: "empty id", data: `[{"id":"","text":"x","completed":false}]`},
		{name: "extra field", data: `[{"id":"a","text":"x","completed":false,"due":"tomorrow"}]`},
		{name: "duplicate ids", data: `[{"id":"a","text":"x","completed":false},{"id":"a","text":"y","completed":true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Error("Decode accepted malformed input")
			}
		})
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	l, err := Decode([]byte("[]"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("got %d tasks, want 0", len(l))
	}
}
