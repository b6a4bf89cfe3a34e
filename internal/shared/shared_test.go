package shared

import (
	"bytes"
	"testing"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 36 {
			t.Fatalf("expected 36-char UUID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestDigestPassword(t *testing.T) {
	tc := []struct {
		name      string
		plaintext string
		want      string
	}{
		{
			name:      "known digest",
			plaintext: "hunter2",
			want:      "f52fbd32b2b3b86ff88ef6c490628285f482af15ddcb29541f94bcf526a3f6c7",
		},
		{
			name:      "empty string",
			plaintext: "",
			want:      "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := DigestPassword(tt.plaintext)
			if got != tt.want {
				t.Errorf("DigestPassword() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		if DigestPassword("abc") != DigestPassword("abc") {
			t.Error("same plaintext should digest identically")
		}
		if DigestPassword("abc") == DigestPassword("abd") {
			t.Error("different plaintexts should digest differently")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info("hello", "key", "value")

	if buf.Len() == 0 {
		t.Error("expected log output")
	}
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Errorf("expected message in output, got %s", buf.String())
	}
}
