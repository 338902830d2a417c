package sanitize

import (
	"strings"
	"testing"
)

func TestTextBounds(t *testing.T) {
	inputs := []string{
		"  hello   world  ",
		"<script>alert(1)</script>",
		strings.Repeat("a b\t c\n", 50),
		"",
		"plain",
		"a  <  b  >  c",
	}
	for _, in := range inputs {
		out := Text(in, 20)
		if len(out) > 20 {
			t.Fatalf("Text(%q, 20) too long: %q", in, out)
		}
		if strings.ContainsAny(out, "<>") {
			t.Fatalf("Text(%q, 20) contains angle bracket: %q", in, out)
		}
		if strings.Contains(out, "  ") {
			t.Fatalf("Text(%q, 20) contains whitespace run: %q", in, out)
		}
		if out != strings.TrimSpace(out) {
			t.Fatalf("Text(%q, 20) not trimmed: %q", in, out)
		}
	}
}

func TestTextCollapsesWhitespace(t *testing.T) {
	if got := Text("a \t\n b", 100); got != "a b" {
		t.Fatalf("expected %q, got %q", "a b", got)
	}
}

func TestEmail(t *testing.T) {
	if got := Email("  FOO@BAR.com "); got != "foo@bar.com" {
		t.Fatalf("expected foo@bar.com, got %q", got)
	}
	if got := Email("not-an-email"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Email("user@host"); got != "" {
		t.Fatalf("expected empty for missing tld, got %q", got)
	}
	if got := Email("user@host.c"); got != "" {
		t.Fatalf("expected empty for 1-letter tld, got %q", got)
	}
}

func TestPhone(t *testing.T) {
	if got := Phone("(555) 123-4567 x9"); got != "55512345679" {
		t.Fatalf("expected 55512345679, got %q", got)
	}
	if got := Phone("123456789012345678901234"); got != "12345678901234567890" {
		t.Fatalf("expected 20 digits, got %q", got)
	}
	if got := Phone("no digits"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
