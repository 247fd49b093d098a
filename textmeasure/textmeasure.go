// Package textmeasure provides text measurement backends for laying out
// charts: one based on the fonts of gonum.org/v1/plot and one based on an
// OpenType font parsed with golang.org/x/image.
//
// Both report the advance width of a single line of text and the line
// height in pixels; sizes are font sizes in pixels.
package textmeasure

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// VG

// VG measures text with a font of the vg package.
type VG struct {
	Name string // font name as understood by vg.MakeFont

	mu    sync.Mutex
	fonts map[float64]vg.Font
}

// NewVG returns a measurer for the named vg font, e.g. "Helvetica".
// It fails if the font is unknown.
func NewVG(name string) (*VG, error) {
	m := &VG{Name: name, fonts: make(map[float64]vg.Font)}
	if _, err := m.font(12); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *VG) font(size float64) (vg.Font, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fonts[size]; ok {
		return f, nil
	}
	f, err := vg.MakeFont(m.Name, vg.Length(size))
	if err != nil {
		return vg.Font{}, fmt.Errorf("textmeasure: font %q: %w", m.Name, err)
	}
	m.fonts[size] = f
	return f, nil
}

// Measure returns the width and height of text at the given size. One
// pixel is taken to be one point.
func (m *VG) Measure(text string, size float64) (width, height float64) {
	f, err := m.font(size)
	if err != nil {
		return Approximate{}.Measure(text, size)
	}
	return float64(f.Width(text)), float64(f.Extents().Height)
}

// ----------------------------------------------------------------------------
// OpenType

// OpenType measures text with an OpenType or TrueType font.
type OpenType struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewOpenType parses the font data src, typically the content of a .ttf
// or .otf file.
func NewOpenType(src []byte) (*OpenType, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("textmeasure: %w", err)
	}
	return &OpenType{font: f, faces: make(map[float64]font.Face)}, nil
}

// GoRegular returns a measurer using the Go Regular font.
func GoRegular() *OpenType {
	m, err := NewOpenType(goregular.TTF)
	if err != nil {
		panic(err) // the embedded font is known to be valid
	}
	return m
}

func (m *OpenType) face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// Measure returns the advance width of text and the line height of the
// font at the given size.
func (m *OpenType) Measure(text string, size float64) (width, height float64) {
	face, err := m.face(size)
	if err != nil {
		return Approximate{}.Measure(text, size)
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64, float64(face.Metrics().Height) / 64
}

// ----------------------------------------------------------------------------
// Approximate

// Approximate estimates text extents from the number of runes: every rune
// is 0.6 of the size wide, lines are 1.2 sizes high. It is deterministic
// and needs no font, which makes it handy for tests.
type Approximate struct{}

// Measure implements the measurer interface.
func (Approximate) Measure(text string, size float64) (width, height float64) {
	return 0.6 * size * float64(len([]rune(text))), 1.2 * size
}
