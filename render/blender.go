package render

// BlendMode defines pixel compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src, 255)
	BlendMax                      // Dst = max(Dst, Src) per channel
	BlendScreen                   // Dst = 1 - (1-Dst)*(1-Src)
)

// apply composites src over dst
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return src
	}
}
