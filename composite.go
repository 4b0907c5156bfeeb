package overlay

import (
	"fmt"
	"math"

	"github.com/gogpu/overlay/internal/blend"
)

// Rule is a Porter-Duff compositing rule.
type Rule = blend.Rule

// Supported rules.
const (
	RuleClear   = blend.RuleClear
	RuleSrc     = blend.RuleSrc
	RuleSrcOver = blend.RuleSrcOver
)

// Composite is a rule together with an extra alpha factor in [0, 1] that
// scales the alpha of every source pixel.
type Composite struct {
	Rule  Rule
	Alpha float32
}

// Preset composites with an alpha factor of 1.
var (
	CompositeClear   = Composite{Rule: RuleClear, Alpha: 1}
	CompositeSrc     = Composite{Rule: RuleSrc, Alpha: 1}
	CompositeSrcOver = Composite{Rule: RuleSrcOver, Alpha: 1}
)

// WithAlpha returns c with its alpha factor replaced.
func (c Composite) WithAlpha(alpha float32) Composite {
	c.Alpha = alpha
	return c
}

// Validate reports an ErrInvalidArgument for unknown rules or an alpha
// factor outside [0, 1].
func (c Composite) Validate() error {
	if !c.Rule.IsValid() {
		return fmt.Errorf("%w: composite rule %d", ErrInvalidArgument, c.Rule)
	}
	a := float64(c.Alpha)
	if math.IsNaN(a) || a < 0 || a > 1 {
		return fmt.Errorf("%w: composite alpha %v", ErrInvalidArgument, c.Alpha)
	}
	return nil
}

func (c Composite) String() string {
	if c.Alpha == 1 {
		return c.Rule.String()
	}
	return fmt.Sprintf("%s(%.2f)", c.Rule, c.Alpha)
}
