package overlay

import (
	"errors"
	"math"
	"testing"
)

func TestCompositeValidate(t *testing.T) {
	tests := []struct {
		name  string
		c     Composite
		valid bool
	}{
		{"clear", CompositeClear, true},
		{"src", CompositeSrc, true},
		{"src over zero alpha", CompositeSrcOver.WithAlpha(0), true},
		{"unknown rule", Composite{Rule: 4, Alpha: 1}, false},
		{"zero rule", Composite{Alpha: 1}, false},
		{"alpha above one", CompositeSrc.WithAlpha(1.01), false},
		{"negative alpha", CompositeSrc.WithAlpha(-1), false},
		{"NaN alpha", CompositeSrc.WithAlpha(float32(math.NaN())), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCompositeString(t *testing.T) {
	if s := CompositeSrcOver.String(); s != "SrcOver" {
		t.Errorf("String() = %q", s)
	}
	if s := CompositeSrc.WithAlpha(0.5).String(); s != "Src(0.50)" {
		t.Errorf("String() = %q", s)
	}
}
