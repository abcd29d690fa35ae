package forms

import (
	"strings"
	"unicode"
)

// TextWrapMode selects how multiline text breaks against a width limit.
type TextWrapMode int

const (
	// WrapModeWord breaks between words. Right for Latin scripts.
	WrapModeWord TextWrapMode = iota
	// WrapModeChar breaks between characters. Right for CJK scripts,
	// which carry no spaces to break at.
	WrapModeChar
	// WrapModeAuto picks WrapModeChar when the text contains CJK
	// characters, WrapModeWord otherwise.
	WrapModeAuto
)

// textMeasureStore caches text measurements for the current frame. Layout
// can measure the same string several times per pass; the cache makes the
// repeats free. Entries expire automatically when the frame advances.
var textMeasureStore = NewFrameStore[Vec2]()

// measureText returns the pixel extent of text in the given font and
// scale, cached per frame.
func measureText(f Font, text string, scale float32) Vec2 {
	if f == nil || text == "" {
		return Vec2{}
	}
	key := textMeasureID(f, text, scale)
	if v := textMeasureStore.GetIfExists(key); v != nil {
		return *v
	}
	size := f.MeasureText(text, scale)
	textMeasureStore.Set(key, size)
	return size
}

// WrapText breaks text into lines no wider than maxWidth. A nil font or
// non-positive width passes the text through as a single line.
func WrapText(f Font, text string, scale, maxWidth float32, mode TextWrapMode) []string {
	if f == nil || maxWidth <= 0 {
		return []string{text}
	}

	if mode == WrapModeAuto {
		mode = WrapModeWord
		if strings.ContainsFunc(text, isCJKRune) {
			mode = WrapModeChar
		}
	}
	if mode == WrapModeChar {
		return wrapByChar(f, text, scale, maxWidth)
	}
	return wrapByWord(f, text, scale, maxWidth)
}

// wrapByWord fills each line greedily with whole words. A word wider than
// maxWidth overflows its line rather than being split.
func wrapByWord(f Font, text string, scale, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if measureText(f, candidate, scale).X > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// wrapByChar fills each line greedily rune by rune. Every line keeps at
// least one rune, even when maxWidth is narrower than a single glyph.
func wrapByChar(f Font, text string, scale, maxWidth float32) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var lines []string
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i-start > 1 && measureText(f, string(runes[start:i]), scale).X > maxWidth {
			lines = append(lines, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return append(lines, string(runes[start:]))
}

func isCJKRune(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana,
		unicode.Hangul, unicode.Bopomofo, unicode.Yi)
}

// TruncateText shortens text to fit maxWidth, marking the cut with "..".
func TruncateText(f Font, text string, scale, maxWidth float32) string {
	return TruncateTextWithSuffix(f, text, scale, maxWidth, "..")
}

// TruncateTextWithSuffix shortens text to fit maxWidth, appending suffix
// when it had to cut. Text that already fits comes back untouched. When
// even one rune plus the suffix cannot fit, the bare suffix is returned.
func TruncateTextWithSuffix(f Font, text string, scale, maxWidth float32, suffix string) string {
	if measureText(f, text, scale).X <= maxWidth {
		return text
	}

	target := maxWidth - measureText(f, suffix, scale).X
	runes := []rune(text)
	for len(runes) > 0 && measureText(f, string(runes), scale).X > target {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return suffix
	}
	return string(runes) + suffix
}

// MeasureWrappedText returns the extent of text after wrapping: the
// widest line by the line count times the font's line height.
func MeasureWrappedText(f Font, text string, scale, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := WrapText(f, text, scale, maxWidth, mode)
	if len(lines) == 0 {
		return Vec2{}
	}

	var widest float32
	for _, line := range lines {
		widest = maxf(widest, measureText(f, line, scale).X)
	}
	return Vec2{X: widest, Y: float32(len(lines)) * f.LineHeight(scale)}
}
