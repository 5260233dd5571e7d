package run

import "testing"

func TestStateLabels(t *testing.T) {
	tests := []struct {
		state  State
		name   string
		label  string
		status string
	}{
		{Stopped, "STOPPED", "DETENIDO", "DETENIDO"},
		{Running, "RUNNING", "ENCENDIDO", "EN MARCHA"},
		{Paused, "PAUSED", "PAUSADO", "PAUSADO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.state.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.state.StatusLabel(); got != tt.status {
				t.Errorf("StatusLabel() = %q, want %q", got, tt.status)
			}
			parsed, ok := ParseState(tt.name)
			if !ok || parsed != tt.state {
				t.Errorf("ParseState(%q) = %v, %v", tt.name, parsed, ok)
			}
		})
	}

	if State(7).String() != "UNKNOWN" {
		t.Errorf("State(7).String() = %q, want UNKNOWN", State(7).String())
	}
	if _, ok := ParseState("bogus"); ok {
		t.Error("ParseState(bogus) ok = true, want false")
	}
}
