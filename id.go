package forms

import (
	"hash/fnv"
	"math"
)

// ID is a stable hash identifying a cached computation, such as a text
// measurement. IDs are not guaranteed collision-free, so they must only
// key caches whose entries can be recomputed.
type ID uint64

// HashString returns the 64-bit FNV-1a hash of a string.
func HashString(s string) ID {
	h := fnv.New64a()
	h.Write([]byte(s))
	return ID(h.Sum64())
}

// textMeasureID keys one text measurement: the font (by atlas texture and
// natural line height), the scale and the text all participate.
func textMeasureID(f Font, text string, scale float32) ID {
	h := fnv.New64a()
	var buf [12]byte
	tex := f.TextureID()
	buf[0] = byte(tex)
	buf[1] = byte(tex >> 8)
	buf[2] = byte(tex >> 16)
	buf[3] = byte(tex >> 24)
	sb := math.Float32bits(scale)
	buf[4] = byte(sb)
	buf[5] = byte(sb >> 8)
	buf[6] = byte(sb >> 16)
	buf[7] = byte(sb >> 24)
	lh := math.Float32bits(f.LineHeight(1))
	buf[8] = byte(lh)
	buf[9] = byte(lh >> 8)
	buf[10] = byte(lh >> 16)
	buf[11] = byte(lh >> 24)
	h.Write(buf[:])
	h.Write([]byte(text))
	return ID(h.Sum64())
}
