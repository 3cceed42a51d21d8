package maze

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinate
		wantErr bool
	}{
		{"plain", "(3,4)", Coordinate{3, 4}, false},
		{"space after comma", "(3, 4)", Coordinate{3, 4}, false},
		{"no parens", "3,4", Coordinate{3, 4}, false},
		{"surrounding whitespace", "  (10,0) ", Coordinate{10, 0}, false},
		{"doubled parens", "((1,2))", Coordinate{1, 2}, false},
		{"non numeric x", "(a,4)", Coordinate{}, true},
		{"non numeric y", "(3,b)", Coordinate{}, true},
		{"missing component", "(3)", Coordinate{}, true},
		{"too many components", "(1,2,3)", Coordinate{}, true},
		{"negative", "(-1,2)", Coordinate{}, true},
		{"empty", "", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCoordinate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCoordinate(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCoordinateNumericError(t *testing.T) {
	_, err := ParseCoordinate("(a,4)")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error = %v, want strconv.ErrSyntax", err)
	}
	if err != nil && !strings.Contains(err.Error(), "x component") {
		t.Errorf("error %q should name the x component", err)
	}
}

func TestCoordinateStringRoundTrip(t *testing.T) {
	c := Coordinate{12, 7}
	if got := c.String(); got != "(12,7)" {
		t.Errorf("String() = %q, want %q", got, "(12,7)")
	}

	parsed, err := ParseCoordinate(c.String())
	if err != nil {
		t.Fatalf("ParseCoordinate() error: %v", err)
	}
	if parsed != c {
		t.Errorf("round trip = %v, want %v", parsed, c)
	}
}
