package model

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateMap(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]interface{}
		wantErr  bool
		problems []string
	}{
		{
			name:  "empty object",
			input: map[string]interface{}{},
		},
		{
			name: "scalars and lists",
			input: map[string]interface{}{
				"name":        "Jane",
				"template":    "creative",
				"exp_title[]": []interface{}{"Engineer", "Lead"},
				"exp_company": "Acme",
			},
		},
		{
			name:     "scalar must be a string",
			input:    map[string]interface{}{"name": 42.0},
			wantErr:  true,
			problems: []string{"name"},
		},
		{
			name:     "list items must be strings",
			input:    map[string]interface{}{"exp_title[]": []interface{}{"ok", true}},
			wantErr:  true,
			problems: []string{"exp_title[]"},
		},
		{
			name:     "scalar list rejected",
			input:    map[string]interface{}{"skills": []interface{}{"Go"}},
			wantErr:  true,
			problems: []string{"skills"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMap(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateMap() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if len(verr.Problems) == 0 {
				t.Fatal("ValidationError carries no problems")
			}
			for _, p := range tt.problems {
				if !strings.Contains(err.Error(), p) {
					t.Errorf("error %q does not mention %q", err, p)
				}
			}
		})
	}
}

func TestValidateMap_NotAnObject(t *testing.T) {
	if err := ValidateMap(nil); err == nil {
		t.Error("ValidateMap(nil) should fail: the payload must be an object")
	}
}
