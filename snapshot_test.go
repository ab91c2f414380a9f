package stlander

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countNonWhite(im image.Image) int {
	bounds := im.Bounds()
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := im.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				n++
			}
		}
	}
	return n
}

func TestRenderComparison(t *testing.T) {
	a, err := Align(boxMesh(Vector{2, 2, 2}, Vector{3, 2, 1}), AlignOptions{})
	require.NoError(t, err)

	opts := DefaultSnapshotOptions()
	opts.Size = 64
	opts.Scale = 1

	im := RenderComparison(a.Original, a.Aligned, opts)
	bounds := im.Bounds()
	assert.Equal(t, 128, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())

	// both panes actually rendered something
	assert.Greater(t, countNonWhite(im), 100)
}

func TestRenderComparisonStyles(t *testing.T) {
	a, err := Align(cubeMesh(Vector{1, 1, 1}), AlignOptions{})
	require.NoError(t, err)

	for _, style := range []RenderStyle{StyleSolid, StyleToon, StyleWireframe} {
		opts := DefaultSnapshotOptions()
		opts.Size = 32
		opts.Scale = 1
		opts.Style = style

		im := RenderComparison(a.Original, a.Aligned, opts)
		assert.Greater(t, countNonWhite(im), 0, "style %v drew nothing", style)
	}
}

func TestSnapshotOptionsWithDefaults(t *testing.T) {
	opts := SnapshotOptions{
		Style:     StyleWireframe,
		LeftColor: HexColor("ff0000"),
		Eye:       V(0, 0, 9),
	}
	got := opts.withDefaults()
	def := DefaultSnapshotOptions()

	// caller-set fields survive
	assert.Equal(t, StyleWireframe, got.Style)
	assert.Equal(t, HexColor("ff0000"), got.LeftColor)
	assert.Equal(t, V(0, 0, 9), got.Eye)

	// unset fields pick up the defaults
	assert.Equal(t, def.Size, got.Size)
	assert.Equal(t, def.Scale, got.Scale)
	assert.Equal(t, def.Fovy, got.Fovy)
	assert.Equal(t, def.RightColor, got.RightColor)
	assert.Equal(t, def.Up, got.Up)
}

func TestParseRenderStyle(t *testing.T) {
	style, err := ParseRenderStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleSolid, style)

	style, err = ParseRenderStyle("wireframe")
	require.NoError(t, err)
	assert.Equal(t, StyleWireframe, style)

	_, err = ParseRenderStyle("sketch")
	var invalid *InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
}
