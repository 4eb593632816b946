// Package ocr recognizes the 4x6 letter glyphs that Intcode programs render
// as 2-D imagery.
package ocr

import (
	"embed"
	"fmt"
	"strings"

	"github.com/chazu/intcode/geom"
)

//go:embed letters/*.txt
var letterFS embed.FS

// Glyphs are 4 pixels wide and 6 tall.
var LetterDimensions = geom.Dimensions{Width: 4, Height: 6}

var knownLetters []knownLetter

type knownLetter struct {
	character byte
	image     LetterImage
}

func init() {
	for _, c := range []byte{'A', 'C', 'E', 'F', 'G', 'H', 'P', 'R', 'U'} {
		data, err := letterFS.ReadFile(fmt.Sprintf("letters/%c.txt", c))
		if err != nil {
			panic(fmt.Sprintf("ocr: missing glyph %c: %v", c, err))
		}
		knownLetters = append(knownLetters, knownLetter{character: c, image: ParseLetterImage(string(data))})
	}
}

// LetterImage is one glyph-sized bitmap, row-major.
type LetterImage []bool

// NewLetterImage wraps glyph-sized pixel data.
func NewLetterImage(pixels []bool) LetterImage {
	if len(pixels) != LetterDimensions.Area() {
		panic(fmt.Sprintf("ocr: letter image has %d pixels, want %d", len(pixels), LetterDimensions.Area()))
	}
	return LetterImage(pixels)
}

// ParseLetterImage reads a glyph from text: '#' pixels are set, anything
// else is clear.
func ParseLetterImage(text string) LetterImage {
	pixels := make([]bool, 0, LetterDimensions.Area())
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		for x := 0; x < LetterDimensions.Width; x++ {
			pixels = append(pixels, x < len(line) && line[x] == '#')
		}
	}
	return NewLetterImage(pixels)
}

// similarity scores how closely two glyphs match, 0..1.
func (img LetterImage) similarity(other LetterImage) float64 {
	matching := 0
	for i := range img {
		if img[i] == other[i] {
			matching++
		}
	}
	return float64(matching) / float64(LetterDimensions.Area())
}

// String renders the glyph with '@' for set pixels.
func (img LetterImage) String() string {
	var sb strings.Builder
	for pos := range LetterDimensions.Iter() {
		if pos.X == 0 {
			sb.WriteByte('\n')
		}
		if img[LetterDimensions.Index(pos)] {
			sb.WriteByte('@')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Result is a recognized character with its match confidence.
type Result struct {
	Character  byte
	Confidence float64
}

// Recognize returns the known letter most similar to the image.
func Recognize(img LetterImage) Result {
	best := Result{}
	for _, known := range knownLetters {
		confidence := img.similarity(known.image)
		if confidence > best.Confidence {
			best = Result{Character: known.character, Confidence: confidence}
		}
	}
	return best
}

// RecognizeRow splits a rendered image of side-by-side glyphs (with a
// one-pixel gap after each, the usual layout) into letters. The renderer
// marks set pixels with any byte other than ' ' and '.'.
func RecognizeRow(rendered string) string {
	lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
	if len(lines) < LetterDimensions.Height {
		return ""
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	stride := LetterDimensions.Width + 1
	count := (width + stride - 1) / stride

	var sb strings.Builder
	for letter := 0; letter < count; letter++ {
		pixels := make([]bool, 0, LetterDimensions.Area())
		for y := 0; y < LetterDimensions.Height; y++ {
			for x := 0; x < LetterDimensions.Width; x++ {
				col := letter*stride + x
				set := col < len(lines[y]) && lines[y][col] != ' ' && lines[y][col] != '.'
				pixels = append(pixels, set)
			}
		}
		sb.WriteByte(Recognize(NewLetterImage(pixels)).Character)
	}
	return sb.String()
}
