package errors

import "testing"

func TestValidateBinCount(t *testing.T) {
	tests := []struct {
		name    string
		k       int
		wantErr bool
	}{
		{"One", 1, false},
		{"Many", 12, false},
		{"Zero", 0, true},
		{"Negative", -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBinCount(tt.k)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBinCount(%d) error = %v, wantErr %v", tt.k, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAlpha(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		wantErr bool
	}{
		{"Zero", 0, false},
		{"Mid", 0.75, false},
		{"One", 1, false},
		{"Negative", -0.1, true},
		{"TooLarge", 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlpha(tt.alpha)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlpha(%g) error = %v, wantErr %v", tt.alpha, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLineStyle(t *testing.T) {
	for _, valid := range []string{"solid", "dashed", "dotted"} {
		if err := ValidateLineStyle(valid); err != nil {
			t.Errorf("ValidateLineStyle(%q) = %v, want nil", valid, err)
		}
	}
	if err := ValidateLineStyle("wavy"); err == nil {
		t.Error("ValidateLineStyle(\"wavy\") = nil, want error")
	}
	if !Is(ValidateLineStyle(""), ErrCodeInvalidInput) {
		t.Error("ValidateLineStyle(\"\") should carry ErrCodeInvalidInput")
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"SixDigit", "#abacab", false},
		{"ThreeDigit", "#fff", false},
		{"Uppercase", "#ABCDEF", false},
		{"Empty", "", true},
		{"NoHash", "abacab", true},
		{"BadLength", "#abcd", true},
		{"BadChars", "#zzzzzz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePropertyName(t *testing.T) {
	tests := []struct {
		name    string
		prop    string
		wantErr bool
	}{
		{"Simple", "weight", false},
		{"Betweenness", "betweenness", false},
		{"Empty", "", true},
		{"Whitespace", "edge weight", true},
		{"Control", "weight\x00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePropertyName(tt.prop)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePropertyName(%q) error = %v, wantErr %v", tt.prop, err, tt.wantErr)
			}
		})
	}
}
