package oauth

import "testing"

func TestGenerateState(t *testing.T) {
	t.Parallel()

	first, err := GenerateState()
	if err != nil {
		t.Fatalf("GenerateState() error = %v", err)
	}
	if first == "" {
		t.Fatal("GenerateState() returned empty state")
	}

	second, err := GenerateState()
	if err != nil {
		t.Fatalf("GenerateState() error = %v", err)
	}
	if first == second {
		t.Error("GenerateState() returned the same state twice")
	}
}

func TestValidateState(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		expected string
		received string
		want     bool
	}{
		{name: "match", expected: "abc", received: "abc", want: true},
		{name: "mismatch", expected: "abc", received: "xyz", want: false},
		{name: "empty expected", expected: "", received: "", want: false},
		{name: "empty received", expected: "abc", received: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidateState(tt.expected, tt.received); got != tt.want {
				t.Errorf("ValidateState(%q, %q) = %v, want %v", tt.expected, tt.received, got, tt.want)
			}
		})
	}
}
