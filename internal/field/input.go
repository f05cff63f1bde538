package field

import "strings"

const (
	KeyOuter    = "w"
	KeyInner    = "s"
	KeyLeft     = "a"
	KeyRight    = "d"
	KeyReserved = " "
)

// HandleKey dispatches one key press and reports whether the key is one the
// field responds to. Keys are matched case-insensitively.
func (f *Field) HandleKey(key string) bool {
	switch strings.ToLower(key) {
	case KeyOuter:
		f.SetActiveRing(min(f.p.Depth, f.active+1))
	case KeyInner:
		f.SetActiveRing(max(1, f.active-1))
	case KeyLeft:
		f.Rotate(-1)
	case KeyRight:
		f.Rotate(1)
	case KeyReserved:
		// reserved
	default:
		return false
	}
	return true
}
