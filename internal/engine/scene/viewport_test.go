package scene

import "testing"

func TestViewportPixelRatioCap(t *testing.T) {
	tests := []struct {
		name       string
		vp         Viewport
		wantRatio  float32
		wantBuffer [2]int
		capped     bool
	}{
		{
			name:       "standard display",
			vp:         Viewport{Width: 1280, Height: 720, DevicePixelRatio: 1, MaxPixelRatio: 2},
			wantRatio:  1,
			wantBuffer: [2]int{1280, 720},
		},
		{
			name:       "retina within cap",
			vp:         Viewport{Width: 1280, Height: 720, DevicePixelRatio: 2, MaxPixelRatio: 2},
			wantRatio:  2,
			wantBuffer: [2]int{2560, 1440},
		},
		{
			name:       "dense display is capped",
			vp:         Viewport{Width: 1000, Height: 500, DevicePixelRatio: 3, MaxPixelRatio: 2},
			wantRatio:  2,
			wantBuffer: [2]int{2000, 1000},
			capped:     true,
		},
		{
			name:       "unknown ratio",
			vp:         Viewport{Width: 800, Height: 600},
			wantRatio:  1,
			wantBuffer: [2]int{800, 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vp.PixelRatio(); got != tt.wantRatio {
				t.Errorf("PixelRatio = %v, want %v", got, tt.wantRatio)
			}
			w, h := tt.vp.BufferSize()
			if [2]int{w, h} != tt.wantBuffer {
				t.Errorf("BufferSize = %dx%d, want %v", w, h, tt.wantBuffer)
			}
			if got := tt.vp.Capped(); got != tt.capped {
				t.Errorf("Capped = %v, want %v", got, tt.capped)
			}
		})
	}
}

func TestViewportAspect(t *testing.T) {
	if got := (Viewport{Width: 1920, Height: 1080}).Aspect(); got != float32(1920)/1080 {
		t.Errorf("Aspect = %v", got)
	}
	if got := (Viewport{Width: 1920}).Aspect(); got != 1 {
		t.Errorf("degenerate Aspect = %v, want 1", got)
	}
}

func TestViewportMinimumSize(t *testing.T) {
	w, h := Viewport{}.BufferSize()
	if w != 1 || h != 1 {
		t.Errorf("empty viewport BufferSize = %dx%d, want 1x1", w, h)
	}
}
