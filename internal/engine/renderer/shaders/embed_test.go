package shaders

import (
	"strings"
	"testing"
)

func TestSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"phong.vert":      PhongVertexShader,
		"phong.frag":      PhongFragmentShader,
		"atmosphere.vert": AtmosphereVertexShader,
		"atmosphere.frag": AtmosphereFragmentShader,
		"points.vert":     PointsVertexShader,
		"points.frag":     PointsFragmentShader,
		"present.vert":    PresentVertexShader,
		"present.frag":    PresentFragmentShader,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing #version 410 core header", name)
		}
	}
}

// The glow must match atmosphere.RimIntensity: falloff and tint come in
// as uniforms and the clamped square is taken per pixel.
func TestAtmosphereMatchesRimIntensity(t *testing.T) {
	frag := AtmosphereFragmentShader
	for _, want := range []string{
		"uniform vec3 uGlowColor;",
		"uniform float uFalloff;",
		"float d = uFalloff - dot(normalize(vNormal), normalize(vViewVector));",
		"float intensity = d > 0.0 ? d * d : 0.0;",
		"FragColor = vec4(uGlowColor * intensity, 1.0);",
	} {
		if !strings.Contains(frag, want) {
			t.Errorf("atmosphere.frag lacks %q", want)
		}
	}

	if strings.Contains(AtmosphereVertexShader, "intensity") {
		t.Error("atmosphere.vert should not compute the glow per vertex")
	}
}
