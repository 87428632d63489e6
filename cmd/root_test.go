package cmd

import "testing"

// TestRootCmd_SilencesErrors verifies cobra's own error printing is off:
// Execute logs the error itself, and printing it twice would garble the
// CLI output.
func TestRootCmd_SilencesErrors(t *testing.T) {
	if !rootCmd.SilenceErrors {
		t.Error("rootCmd.SilenceErrors should be true; Execute reports errors itself")
	}
}

func TestDelim(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    rune
		wantErr bool
	}{
		{"comma", ",", ',', false},
		{"semicolon", ";", ';', false},
		{"multi-byte rune", "é", 'é', false},
		{"empty", "", 0, true},
		{"two characters", ",,", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func(prev string) { delimiter = prev }(delimiter)
			delimiter = tt.flag

			got, err := delim()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("delim() with %q expected error, got nil", tt.flag)
				}
				return
			}
			if err != nil {
				t.Fatalf("delim() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("delim() = %q, want %q", got, tt.want)
			}
		})
	}
}
