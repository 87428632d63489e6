package tokenizer

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"simple", "a,b,c", ',', []string{"a", "b", "c"}},
		{"empty line", "", ',', []string{""}},
		{"empty fields", "a,,c", ',', []string{"a", "", "c"}},
		{"trailing delimiter", "a,b,", ',', []string{"a", "b", ""}},
		{"semicolon delimiter", "a;b;c", ';', []string{"a", "b", "c"}},
		{"single quotes are not special", "a,'Hello, World!',c", ',', []string{"a", "'Hello", " World!'", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLine(tt.line, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"no quotes", "a,b,c", ',', []string{"a", "b", "c"}},
		{"quoted field with delimiter", `a,"Hello, World!",c`, ',', []string{"a", "Hello, World!", "c"}},
		{"two backslashes", `a,"Hello, \\World!",c`, ',', []string{"a", `Hello, \World!`, "c"}},
		{"three backslashes", `a,"Hello, \\\World!",c`, ',', []string{"a", `Hello, \World!`, "c"}},
		{"four backslashes", `a,"Hello, \\\\World!",c`, ',', []string{"a", `Hello, \\World!`, "c"}},
		{"escaped quote", `a,"Hello, \"World!",c`, ',', []string{"a", `Hello, "World!`, "c"}},
		{"quoted first field", `"Hello, World!",b,c`, ',', []string{"Hello, World!", "b", "c"}},
		{"custom delimiter", `a;"Hello; World!";c`, ';', []string{"a", "Hello; World!", "c"}},
		{"empty quoted field", `a,"",c`, ',', []string{"a", "", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, tt.delim, 0)
			if err != nil {
				t.Fatalf("ParseLine(%q) unexpected error: %v", tt.line, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"unclosed quote", `a,"Hello, World!,c`, ErrUnterminatedQuote},
		{"lone opening quote", `"`, ErrUnterminatedQuote},
		{"trailing backslash", `a,"Hello, World!",c\`, ErrDanglingEscape},
		{"only a backslash", `\`, ErrDanglingEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line, ',', 0)
			if err == nil {
				t.Fatalf("ParseLine(%q) expected error, got nil", tt.line)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseLine(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

// TestParseLine_MatchesSplitLine verifies that for lines without quote
// characters the scanning path and the plain split path agree.
func TestParseLine_MatchesSplitLine(t *testing.T) {
	lines := []string{
		"",
		"a",
		"a,b,c",
		"a,,c",
		",,",
		"hello world,foo bar",
		"a;b,c;d",
	}

	for _, line := range lines {
		got, err := ParseLine(line, ',', 0)
		if err != nil {
			t.Fatalf("ParseLine(%q) unexpected error: %v", line, err)
		}
		want := SplitLine(line, ',')
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseLine(%q) = %#v, SplitLine = %#v", line, got, want)
		}
	}
}

func TestParseLine_Hint(t *testing.T) {
	// The hint pre-sizes the output but never constrains it.
	got, err := ParseLine("a,b,c,d", ',', 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLine with small hint = %#v, want %#v", got, want)
	}
}
