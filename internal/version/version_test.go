package version

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"exact", "16.5.2", "16.5.2", false},
		{"caret", "^16.5.2", "16.5.2", false},
		{"tilde", "~1.2.3", "1.2.3", false},
		{"gte", ">=1.19.0", "1.19.0", false},
		{"major only", "16", "16.0.0", false},
		{"major minor", "~1.2", "1.2.0", false},
		{"v prefix", "v3", "3.0.0", false},
		{"prerelease dropped", "16.5.2-beta.1", "16.5.2", false},
		{"four parts", "1.2.3.4", "1.2.3", false},
		{"leading zeros", "01.02.03", "1.2.3", false},
		{"range takes first", ">=16.5.0 <17", "16.5.0", false},
		{"x range", "16.x", "16.0.0", false},
		{"embedded", "react@16.5.2", "16.5.2", false},
		{"no digits", "latest", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CoerceString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerce_ConcreteVersionIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.IntRange(0, 999).Draw(t, "major")
		minor := rapid.IntRange(0, 999).Draw(t, "minor")
		patch := rapid.IntRange(0, 999).Draw(t, "patch")
		v := fmt.Sprintf("%d.%d.%d", major, minor, patch)

		for _, prefix := range []string{"", "^", "~", ">=", "v", "="} {
			got, err := CoerceString(prefix + v)
			if err != nil {
				t.Fatalf("CoerceString(%q): %v", prefix+v, err)
			}
			if got != v {
				t.Fatalf("CoerceString(%q) = %q, want %q", prefix+v, got, v)
			}
		}
	})
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		expected   bool
		wantErr    bool
	}{
		{"below threshold", "1.18.0", ">=1.19.0", false, false},
		{"at threshold", "1.19.0", ">=1.19.0", true, false},
		{"above threshold", "1.20.3", ">=1.19.0", true, false},
		{"major above", "2.0.0", ">=1.19.0", true, false},
		{"v prefix", "v1.19.1", ">=1.19.0", true, false},
		{"prerelease excluded", "1.19.0-beta.1", ">=1.19.0", false, false},
		{"invalid version", "notaversion", ">=1.19.0", false, true},
		{"invalid constraint", "1.19.0", "abc", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Satisfies(tt.version, tt.constraint)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.constraint, result, tt.expected)
			}
		})
	}
}
