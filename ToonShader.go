package stlander

import "math"

// ToonShader implements cel shading with four brightness bands.
type ToonShader struct {
	Matrix         Matrix
	LightDirection Vector
	Highlight      Color
	MidTone        Color
	Shadow         Color
	DeepShadow     Color
}

func NewToonShader(matrix Matrix, lightDir Vector) *ToonShader {
	return &ToonShader{
		Matrix:         matrix,
		LightDirection: lightDir.Normalize(),
		Highlight:      HexColor("ffffaa"),
		MidTone:        HexColor("ff8844"),
		Shadow:         HexColor("a12c00"),
		DeepShadow:     HexColor("4d1100"),
	}
}

func (s *ToonShader) Vertex(v Vertex) Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	return v
}

func (s *ToonShader) Fragment(v Vertex, fromObject *Object) Color {
	intensity := math.Max(0, v.Normal.Dot(s.LightDirection))
	var band Color
	switch {
	case intensity > 0.8:
		band = s.Highlight
	case intensity > 0.5:
		band = s.MidTone
	case intensity > 0.2:
		band = s.Shadow
	default:
		band = s.DeepShadow
	}

	if fromObject.Texture != nil {
		return fromObject.Texture.Sample(v.Texture.X, v.Texture.Y).Mul(band)
	}
	return fromObject.Color.Mul(band)
}
