package catalog

import "fmt"

// Color is a raw colour value as persisted in drawing files. The high byte
// selects the colour method and the low bytes carry its payload.
type Color uint32

const (
	methodByLayer byte = 0xC0
	methodByBlock byte = 0xC1
	methodRGB     byte = 0xC2
	methodIndex   byte = 0xC3
)

// ByLayer returns the colour inherited from the entity's layer.
func ByLayer() Color { return Color(uint32(methodByLayer) << 24) }

// ByBlock returns the colour inherited from the enclosing block.
func ByBlock() Color { return Color(uint32(methodByBlock) << 24) }

// FromIndex returns an indexed (ACI) colour.
func FromIndex(i uint8) Color {
	return Color(uint32(methodIndex)<<24 | uint32(i))
}

// FromRGB returns a true colour.
func FromRGB(r, g, b uint8) Color {
	return Color(uint32(methodRGB)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) method() byte { return byte(c >> 24) }

// IsByLayer reports whether the colour is inherited from the layer.
func (c Color) IsByLayer() bool { return c.method() == methodByLayer }

// IsByBlock reports whether the colour is inherited from the block.
func (c Color) IsByBlock() bool { return c.method() == methodByBlock }

// Index returns the ACI index for indexed colours.
func (c Color) Index() (uint8, bool) {
	if c.method() != methodIndex {
		return 0, false
	}
	return uint8(c), true
}

// RGB returns the components of a true colour.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	if c.method() != methodRGB {
		return 0, 0, 0, false
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c), true
}

// Raw returns the persisted 32-bit value.
func (c Color) Raw() int32 { return int32(c) }

// ColorFromRaw converts a persisted 32-bit value.
func ColorFromRaw(v int32) Color { return Color(uint32(v)) }

func (c Color) String() string {
	switch c.method() {
	case methodByLayer:
		return "ByLayer"
	case methodByBlock:
		return "ByBlock"
	case methodIndex:
		return fmt.Sprintf("ACI %d", uint8(c))
	case methodRGB:
		r, g, b, _ := c.RGB()
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	default:
		return fmt.Sprintf("0x%08X", uint32(c))
	}
}
