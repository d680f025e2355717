package wayland

import (
	"errors"
	"testing"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"set", map[string]string{DisplayEnv: "wayland-1"}, false},
		{"set but empty", map[string]string{DisplayEnv: ""}, false},
		{"missing", map[string]string{"DISPLAY": ":0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			err := Require(lookup)
			if tt.wantErr {
				if !errors.Is(err, ErrNotWayland) {
					t.Fatalf("Require() = %v, want ErrNotWayland", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Require() = %v, want nil", err)
			}
		})
	}
}
