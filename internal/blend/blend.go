package blend

// Rule is a compositing rule supported by the span compositor.
type Rule uint8

const (
	// RuleClear writes transparent black.
	RuleClear Rule = iota + 1
	// RuleSrc replaces the destination with the source.
	RuleSrc
	// RuleSrcOver blends the source over the destination.
	RuleSrcOver
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleClear:
		return "Clear"
	case RuleSrc:
		return "Src"
	case RuleSrcOver:
		return "SrcOver"
	default:
		return "Unknown"
	}
}

// IsValid reports whether r is one of the supported rules.
func (r Rule) IsValid() bool {
	return r >= RuleClear && r <= RuleSrcOver
}

// Mode is the complete compositing state applied to one span.
// When XOR is set, Rule and Alpha are ignored.
type Mode struct {
	Rule     Rule
	Alpha    float32
	XOR      bool
	XORColor uint32
}

// FillSpan composites the single color rgb into every pixel of dst.
func FillSpan(dst []uint32, rgb uint32, m Mode) {
	if m.XOR {
		x := m.XORColor ^ rgb
		for i := range dst {
			dst[i] ^= x
		}
		return
	}

	switch m.Rule {
	case RuleClear:
		clear(dst)
	case RuleSrc:
		rgb = ApplyAlpha(rgb, m.Alpha)
		for i := range dst {
			dst[i] = rgb
		}
	case RuleSrcOver:
		rgb = ApplyAlpha(rgb, m.Alpha)
		for i := range dst {
			dst[i] = Over(dst[i], rgb)
		}
	}
}

// CopySpan composites src into dst pixel by pixel. Only min(len(dst),
// len(src)) pixels are touched.
func CopySpan(dst, src []uint32, m Mode) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	if m.XOR {
		for i := range dst {
			dst[i] = Xor(dst[i], m.XORColor, src[i])
		}
		return
	}

	switch m.Rule {
	case RuleClear:
		clear(dst)
	case RuleSrc:
		for i := range dst {
			dst[i] = ApplyAlpha(src[i], m.Alpha)
		}
	case RuleSrcOver:
		for i := range dst {
			dst[i] = Over(dst[i], ApplyAlpha(src[i], m.Alpha))
		}
	}
}
