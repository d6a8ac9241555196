package earth

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

type recordingTitler struct {
	titles []string
}

func (r *recordingTitler) SetTitle(title string) {
	r.titles = append(r.titles, title)
}

func TestTitleIndicator(t *testing.T) {
	w := &recordingTitler{}
	ind := NewTitleIndicator(w, "Earth")

	if len(w.titles) != 1 || w.titles[0] != "Earth"+LoadingSuffix {
		t.Fatalf("titles = %q, want loading title", w.titles)
	}
	if !ind.Visible() {
		t.Error("indicator should start visible")
	}

	ind.Hide()
	ind.Hide()
	if len(w.titles) != 2 || w.titles[1] != "Earth" {
		t.Errorf("titles = %q, want a single restore", w.titles)
	}
	if ind.Visible() {
		t.Error("indicator still visible after Hide")
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}
