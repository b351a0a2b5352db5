// Package alphabets exposes named alphabet strings for non-Latin
// string generation, ready to pass to stringgen.WithAlphabet. Each
// value is a plain string of letters (no digits, no punctuation) and
// values can be concatenated to build a mixed alphabet.
package alphabets

import "strings"

// rangeString builds a string from a half-open Unicode code-point
// range [lo, hi).
func rangeString(lo, hi rune) string {
	var b strings.Builder
	for c := lo; c < hi; c++ {
		b.WriteRune(c)
	}
	return b.String()
}

// rangesString concatenates several half-open ranges, for alphabets
// the original built from more than one contiguous block.
func rangesString(pairs ...[2]rune) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(rangeString(p[0], p[1]))
	}
	return b.String()
}

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ASCII is the plain Latin alphabet (equivalent to stringgen's
// built-in default, exposed here for symmetry with the other presets).
const ASCII = asciiLetters

// Cyrillic is the Russian Cyrillic alphabet, lower- and uppercase.
const Cyrillic = "абвгдеёжзийклмнопрстуфхцчшщъыьэюяАБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

// Greek is the modern Greek alphabet, lower- and uppercase.
const Greek = "αβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"

// LatinExtended is ASCII plus the Latin-1 Supplement letters commonly
// used by Western European languages.
var LatinExtended = asciiLetters +
	"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖØÙÚÛÜÝÞß" +
	"àáâãäåæçèéêëìíîïðñòóôõöøùúûüýþÿ"

var (
	// Hiragana is the Japanese hiragana syllabary.
	Hiragana = rangeString(0x3041, 0x3097)
	// Katakana is the Japanese katakana syllabary.
	Katakana = rangeString(0x30A1, 0x30FB)
	// CJK is the CJK Unified Ideographs block.
	CJK = rangeString(0x4E00, 0x9FFF+1)
	// Hangul is the precomposed Hangul syllables block.
	Hangul = rangeString(0xAC00, 0xD7A4)
	// Arabic is the core Arabic letters block.
	Arabic = rangeString(0x0621, 0x064B)
	// Devanagari is the Devanagari script block.
	Devanagari = rangeString(0x0904, 0x0970)
	// Thai is the Thai script block.
	Thai = rangeString(0x0E01, 0x0E3B)
	// Hebrew is the Hebrew alphabet block.
	Hebrew = rangeString(0x05D0, 0x05EB)
	// Bengali is the Bengali script, split around a reserved gap.
	Bengali = rangesString([2]rune{0x0985, 0x09B0}, [2]rune{0x09B6, 0x09BA})
	// Tamil is the Tamil script, split around its several reserved gaps.
	Tamil = rangesString(
		[2]rune{0x0B85, 0x0B8B},
		[2]rune{0x0B8E, 0x0B91},
		[2]rune{0x0B92, 0x0B96},
		[2]rune{0x0B99, 0x0B9B},
		[2]rune{0x0B9C, 0x0B9D},
		[2]rune{0x0B9E, 0x0BA0},
		[2]rune{0x0BA3, 0x0BA5},
		[2]rune{0x0BA8, 0x0BAB},
		[2]rune{0x0BAE, 0x0BBA},
	)
	// Telugu is the Telugu script block.
	Telugu = rangeString(0x0C05, 0x0C3A)
	// Georgian is the Georgian script, split around a reserved gap.
	Georgian = rangesString([2]rune{0x10A0, 0x10C6}, [2]rune{0x10D0, 0x10FB})
	// Armenian is the Armenian script, split around a reserved gap.
	Armenian = rangesString([2]rune{0x0531, 0x0557}, [2]rune{0x0561, 0x0588})
	// Ethiopic is the Ethiopic script block.
	Ethiopic = rangeString(0x1200, 0x1249)
	// Myanmar is the Myanmar script block.
	Myanmar = rangeString(0x1000, 0x102B)
	// Sinhala is the Sinhala script, split around a reserved gap.
	Sinhala = rangesString([2]rune{0x0D85, 0x0D97}, [2]rune{0x0D9A, 0x0DC7})
	// Gujarati is the Gujarati script, split around its reserved gaps.
	Gujarati = rangesString(
		[2]rune{0x0A85, 0x0A8E},
		[2]rune{0x0A8F, 0x0A92},
		[2]rune{0x0A93, 0x0AAA},
		[2]rune{0x0AAB, 0x0AB1},
		[2]rune{0x0AB2, 0x0AB4},
		[2]rune{0x0AB5, 0x0ABA},
	)
	// Punjabi is the Gurmukhi script, split around its reserved gaps.
	Punjabi = rangesString(
		[2]rune{0x0A05, 0x0A0B},
		[2]rune{0x0A0F, 0x0A11},
		[2]rune{0x0A13, 0x0A29},
		[2]rune{0x0A2A, 0x0A31},
		[2]rune{0x0A32, 0x0A34},
		[2]rune{0x0A35, 0x0A37},
		[2]rune{0x0A38, 0x0A3A},
	)
)
