package marquee

import (
	"math"
	"testing"
)

func newTestInstance(cfg RenderConfig) (*Instance, *fakeContext) {
	ctx := &fakeContext{}
	binding := SurfaceBinding{
		ID:       "band",
		Text:     "A",
		WidthPx:  int(cfg.SurfaceWidthPx()),
		HeightPx: int(cfg.SurfaceHeightPx),
	}
	return newInstance(binding, cfg, ctx, DefaultVerticalNudgePx), ctx
}

func TestInstanceFrameDrawsTwoSets(t *testing.T) {
	in, ctx := newTestInstance(testConfig())
	in.Frame()

	expectedX := []float64{0, 50, 100, -150, -100, -50}
	if len(ctx.texts) != len(expectedX) {
		t.Fatalf("FillText calls = %d, expected %d", len(ctx.texts), len(expectedX))
	}
	for i, call := range ctx.texts {
		if call.x != expectedX[i] {
			t.Errorf("call %d x = %v, expected %v", i, call.x, expectedX[i])
		}
		// (40 + 20) / 2 - 5
		if call.y != 25 {
			t.Errorf("call %d y = %v, expected 25", i, call.y)
		}
		if call.text != "A" {
			t.Errorf("call %d text = %q, expected %q", i, call.text, "A")
		}
	}
	if ctx.clears != 1 {
		t.Errorf("clears = %d, expected 1", ctx.clears)
	}
	if in.Offset() != 2 {
		t.Errorf("Offset() = %v, expected 2", in.Offset())
	}
}

func TestInstanceWrapIsFrameCountDriven(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		period int
	}{
		{"speed divides set width", 2, 75},
		{"speed leaves remainder", 7, 22},
		{"speed overshoots", 40, 4},
		{"speed equals set width", 150, 1},
		{"tenth of a pixel", 0.1, 1500},
		{"three tenths of a pixel", 0.3, 500},
		{"fractional remainder", 0.7, 215},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.SpeedPxPerFrame = tc.speed
			in, _ := newTestInstance(cfg)

			for cycle := 0; cycle < 2; cycle++ {
				for i := 1; i <= tc.period; i++ {
					in.Frame()
					expected := float64(i) * tc.speed
					if i == tc.period {
						expected = 0
					}
					if in.Offset() != expected {
						t.Fatalf("cycle %d frame %d: Offset() = %v, expected %v", cycle, i, in.Offset(), expected)
					}
				}
			}
		})
	}
}

func TestInstanceOffsetStaysBounded(t *testing.T) {
	cfg := testConfig()
	cfg.SpeedPxPerFrame = 3.3
	in, _ := newTestInstance(cfg)
	setWidth := cfg.SetWidthPx()

	for i := 0; i < 100000; i++ {
		in.Frame()
		if in.Offset() < 0 || in.Offset() >= setWidth {
			t.Fatalf("frame %d: Offset() = %v, outside [0, %v)", i, in.Offset(), setWidth)
		}
	}
	if in.Frames() != 100000 {
		t.Errorf("Frames() = %d, expected 100000", in.Frames())
	}
}

func TestInstanceSetsTileWithoutGaps(t *testing.T) {
	cfg := testConfig()
	cfg.RepeatCount = 4
	cfg.SpacingPx = 30
	setWidth := cfg.SetWidthPx()

	for offset := 0.0; offset < setWidth; offset += 0.5 {
		in, ctx := newTestInstance(cfg)
		in.offsetPx = offset
		in.Frame()

		for _, call := range ctx.texts {
			phase := math.Mod(call.x-offset, cfg.SpacingPx)
			if math.Abs(phase) > 1e-9 {
				t.Fatalf("offset %v: repetition at %v is off the spacing grid", offset, call.x)
			}
		}
		for p := 0.0; p < setWidth; p++ {
			covered := false
			for _, call := range ctx.texts {
				if call.x <= p && p < call.x+cfg.SpacingPx {
					covered = true
					break
				}
			}
			if !covered {
				t.Fatalf("offset %v: x=%v has no repetition", offset, p)
			}
		}
	}
}

func TestInstanceStopSkipsFrames(t *testing.T) {
	in, ctx := newTestInstance(testConfig())
	in.Frame()
	in.Stop()
	in.Frame()

	if !in.Stopped() {
		t.Fatal("Stopped() = false, expected true")
	}
	if ctx.clears != 1 {
		t.Errorf("clears = %d, expected 1", ctx.clears)
	}
	if in.Offset() != 2 {
		t.Errorf("Offset() = %v, expected 2", in.Offset())
	}
}
