package csvn

import "testing"

func TestEmptyFieldPolicy_String(t *testing.T) {
	tests := []struct {
		policy EmptyFieldPolicy
		want   string
	}{
		{EmptyEmit, "emit"},
		{EmptySkip, "skip"},
		{EmptyReject, "reject"},
		{EmptyFieldPolicy(9), "EmptyFieldPolicy(9)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.policy.String(); got != tt.want {
				t.Errorf("EmptyFieldPolicy.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEmptyFieldPolicy(t *testing.T) {
	for _, p := range []EmptyFieldPolicy{EmptyEmit, EmptySkip, EmptyReject} {
		got, err := ParseEmptyFieldPolicy(p.String())
		if err != nil {
			t.Fatalf("ParseEmptyFieldPolicy(%q) error = %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParseEmptyFieldPolicy(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if got, err := ParseEmptyFieldPolicy(""); err != nil || got != EmptyEmit {
		t.Errorf("ParseEmptyFieldPolicy(\"\") = %v, %v; want emit, nil", got, err)
	}
	if _, err := ParseEmptyFieldPolicy("drop"); err == nil {
		t.Error("ParseEmptyFieldPolicy(\"drop\") expected error, got nil")
	}
}

func TestDefaultOptions(t *testing.T) {
	if DefaultOptions() != (Options{}) {
		t.Errorf("DefaultOptions() = %+v, want the zero value", DefaultOptions())
	}
	strict := StrictOptions()
	if !strict.Strict {
		t.Error("StrictOptions().Strict = false, want true")
	}
	strict.Strict = false
	if strict != DefaultOptions() {
		t.Errorf("StrictOptions() changes more than Strict: %+v", StrictOptions())
	}
}
