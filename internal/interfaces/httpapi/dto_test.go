package httpapi

import "testing"

func TestClampCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: -10, want: 5},
		{in: 0, want: 5},
		{in: 5, want: 5},
		{in: 48, want: 48},
		{in: 95, want: 95},
		{in: 120, want: 95},
	}

	for _, tt := range tests {
		if got := clampCoordinate(tt.in); got != tt.want {
			t.Fatalf("clampCoordinate(%v)=%v want=%v", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeAbbreviation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: " gk ", want: "GK"},
		{in: "striker", want: "STR"},
		{in: "cdm", want: "CDM"},
		{in: "äöüß", want: "ÄÖÜ"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := sanitizeAbbreviation(tt.in); got != tt.want {
			t.Fatalf("sanitizeAbbreviation(%q)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestUpdatePositionRequest_ToUpdateKeepsNilFields(t *testing.T) {
	x := 150.0
	update := updatePositionRequest{X: &x}.toUpdate()

	if update.Name != nil || update.Abbreviation != nil || update.Y != nil {
		t.Fatalf("expected only x to be set, got %+v", update)
	}
	if update.X == nil || *update.X != 95 {
		t.Fatalf("expected clamped x=95, got %v", update.X)
	}
}
