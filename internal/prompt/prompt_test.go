package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain yes", "y\n", true},
		{"uppercase yes", "Y\n", true},
		{"padded yes", "  y  \n", true},
		{"yes without newline", "y", true},
		{"word yes is not enough", "yes\n", false},
		{"no", "n\n", false},
		{"uppercase no", "N\n", false},
		{"empty line", "\n", false},
		{"garbage", "whatever\n", false},
		{"closed input", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &TerminalConfirmer{In: strings.NewReader(tt.input), Out: &out}

			got, err := c.Confirm("Move 3 files to the trash?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() with input %q = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Move 3 files to the trash? [y/N]:") {
				t.Errorf("prompt output = %q, want question with [y/N] suffix", out.String())
			}
		})
	}
}

func TestAutoConfirm(t *testing.T) {
	got, err := AutoConfirmer{}.Confirm("anything")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !got {
		t.Error("Confirm() = false, want true")
	}
}
