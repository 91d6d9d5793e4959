package canvas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const (
	DefaultFamily = "go"
	faceCacheSize = 64
)

type variant struct {
	bold, italic bool
}

type faceKey struct {
	family  string
	variant variant
	sizePx  float64
}

// builtin families are the Go fonts shipped with x/image.
var builtin = map[string]map[variant][]byte{
	"go": {
		{}:                         goregular.TTF,
		{bold: true}:               gobold.TTF,
		{italic: true}:             goitalic.TTF,
		{bold: true, italic: true}: gobolditalic.TTF,
	},
	"go mono": {
		{}:                         gomono.TTF,
		{bold: true}:               gomonobold.TTF,
		{italic: true}:             gomonoitalic.TTF,
		{bold: true, italic: true}: gomonobolditalic.TTF,
	},
	"go medium":    {{}: gomedium.TTF},
	"go smallcaps": {{}: gosmallcaps.TTF},
}

var genericFamilies = map[string]string{
	"sans-serif": "go",
	"serif":      "go",
	"system-ui":  "go",
	"monospace":  "go mono",
}

// FontBook resolves font descriptions to faces. Built-in Go fonts are parsed
// with opentype; fonts registered from files go through freetype's truetype
// parser. Faces are cached by family, variant and size.
type FontBook struct {
	mu       sync.Mutex
	parsed   map[faceKey]*sfnt.Font
	external map[string]map[variant]*truetype.Font
	faces    *lru.Cache[faceKey, font.Face]
}

func NewFontBook() *FontBook {
	faces, err := lru.New[faceKey, font.Face](faceCacheSize)
	if err != nil {
		panic(err)
	}
	return &FontBook{
		parsed:   map[faceKey]*sfnt.Font{},
		external: map[string]map[variant]*truetype.Font{},
		faces:    faces,
	}
}

// RegisterTTF makes a TrueType font available under family.
func (b *FontBook) RegisterTTF(family string, bold, italic bool, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("register %q: %w", family, err)
	}
	key := normalizeFamily(family)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.external[key] == nil {
		b.external[key] = map[variant]*truetype.Font{}
	}
	b.external[key][variant{bold: bold, italic: italic}] = f
	b.faces.Purge()
	return nil
}

// Families lists every resolvable family name.
func (b *FontBook) Families() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(builtin)+len(b.external))
	for name := range builtin {
		out = append(out, name)
	}
	for name := range b.external {
		if _, ok := builtin[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Face returns a face for spec, using the first family that resolves and
// falling back to the default Go font.
func (b *FontBook) Face(spec FontSpec) (font.Face, error) {
	if spec.SizePx <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", spec.SizePx)
	}
	want := variant{bold: spec.Bold, italic: spec.Italic}
	families := append(append([]string(nil), spec.Families...), DefaultFamily)
	for _, family := range families {
		name := normalizeFamily(family)
		if face, ok, err := b.lookup(name, want, spec.SizePx); ok || err != nil {
			return face, err
		}
	}
	return nil, fmt.Errorf("no face for %v", spec.Families)
}

func (b *FontBook) lookup(family string, want variant, sizePx float64) (font.Face, bool, error) {
	key := faceKey{family: family, variant: want, sizePx: sizePx}
	if face, ok := b.faces.Get(key); ok {
		return face, true, nil
	}

	b.mu.Lock()
	ext := b.external[family]
	b.mu.Unlock()
	if ext != nil {
		f := ext[want]
		if f == nil {
			f = ext[variant{}]
		}
		if f != nil {
			face := truetype.NewFace(f, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
			b.faces.Add(key, face)
			return face, true, nil
		}
	}

	variants, ok := builtin[family]
	if !ok {
		return nil, false, nil
	}
	data, ok := variants[want]
	if !ok {
		want = variant{}
		data = variants[want]
	}
	parsed, err := b.parse(faceKey{family: family, variant: want}, data)
	if err != nil {
		return nil, false, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: sizePx, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, false, fmt.Errorf("face %s %vpx: %w", family, sizePx, err)
	}
	b.faces.Add(key, face)
	return face, true, nil
}

func (b *FontBook) parse(key faceKey, data []byte) (*sfnt.Font, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if f, ok := b.parsed[key]; ok {
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", key.family, err)
	}
	b.parsed[key] = f
	return f, nil
}

func normalizeFamily(family string) string {
	name := strings.ToLower(strings.TrimSpace(family))
	if alias, ok := genericFamilies[name]; ok {
		return alias
	}
	return name
}
