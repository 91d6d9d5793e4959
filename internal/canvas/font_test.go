package canvas

import (
	"reflect"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		expected FontSpec
		wantErr  bool
	}{
		{"weight size family", "bold 48px Go", FontSpec{Bold: true, SizePx: 48, Families: []string{"Go"}}, false},
		{"numeric weight", "700 32px Go Mono", FontSpec{Bold: true, SizePx: 32, Families: []string{"Go Mono"}}, false},
		{"light numeric weight", "300 12px Go", FontSpec{SizePx: 12, Families: []string{"Go"}}, false},
		{"italic and fallbacks", `italic normal 20.5px "Noto Sans", monospace`, FontSpec{Italic: true, SizePx: 20.5, Families: []string{"Noto Sans", "monospace"}}, false},
		{"leading space from empty weight", " 16px Go", FontSpec{SizePx: 16, Families: []string{"Go"}}, false},
		{"missing size", "bold Go", FontSpec{}, true},
		{"bad size", "bold xpx Go", FontSpec{}, true},
		{"zero size", "0px Go", FontSpec{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFont(tc.desc)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseFont(%q) = %+v, expected error", tc.desc, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFont(%q) error = %v", tc.desc, err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ParseFont(%q) = %+v, expected %+v", tc.desc, got, tc.expected)
			}
		})
	}
}

func TestFontBookResolvesAndCaches(t *testing.T) {
	book := NewFontBook()

	regular, err := book.Face(FontSpec{SizePx: 24, Families: []string{"Unknown", "sans-serif"}})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	again, err := book.Face(FontSpec{SizePx: 24, Families: []string{"go"}})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if regular != again {
		t.Error("Face() did not reuse the cached face")
	}

	bold, err := book.Face(FontSpec{Bold: true, SizePx: 24, Families: []string{"Go"}})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if bold == regular {
		t.Error("bold and regular resolved to the same face")
	}
	if h := regular.Metrics().Height.Ceil(); h < 20 {
		t.Errorf("24px face height = %d, expected at least 20", h)
	}

	if _, err := book.Face(FontSpec{SizePx: 0}); err == nil {
		t.Error("Face() with zero size returned nil error")
	}
}

func TestFontBookRegisterTTF(t *testing.T) {
	book := NewFontBook()
	if err := book.RegisterTTF("Band", false, false, gomono.TTF); err != nil {
		t.Fatalf("RegisterTTF() error = %v", err)
	}
	if err := book.RegisterTTF("Broken", false, false, []byte("not a font")); err == nil {
		t.Error("RegisterTTF() accepted garbage")
	}

	face, err := book.Face(FontSpec{Bold: true, SizePx: 16, Families: []string{"band"}})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	// Monospaced: every glyph advances the same distance.
	a, _ := face.GlyphAdvance('i')
	b, _ := face.GlyphAdvance('W')
	if a != b {
		t.Errorf("advance i = %v, W = %v, expected equal", a, b)
	}

	found := false
	for _, name := range book.Families() {
		if name == "band" {
			found = true
		}
	}
	if !found {
		t.Errorf("Families() = %v, missing band", book.Families())
	}
}
