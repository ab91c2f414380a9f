package stlander

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// RenderStyle selects how comparison meshes are shaded.
type RenderStyle int

const (
	StyleSolid RenderStyle = iota
	StyleToon
	StyleWireframe
)

// ParseRenderStyle accepts "solid", "toon" or "wireframe".
func ParseRenderStyle(s string) (RenderStyle, error) {
	switch s {
	case "", "solid":
		return StyleSolid, nil
	case "toon":
		return StyleToon, nil
	case "wireframe":
		return StyleWireframe, nil
	}
	return 0, &InvalidConfigurationError{Option: "style", Value: s}
}

// SnapshotOptions configures a comparison render.
type SnapshotOptions struct {
	Size  int // output height in pixels; the image is 2*Size wide
	Scale int // supersampling factor
	Style RenderStyle

	Eye, Center, Up Vector
	Fovy            float64
	Light           Vector
	Ambient         Color
	Diffuse         Color

	LeftColor  Color
	RightColor Color
}

// DefaultSnapshotOptions frames both meshes from an isometric-ish
// viewpoint with the original tinted grey and the aligned mesh tinted
// blue.
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		Size:       800,
		Scale:      2,
		Style:      StyleSolid,
		Eye:        V(3, 2, 3),
		Center:     V(0, 0, 0),
		Up:         V(0, 0, 1),
		Fovy:       40,
		Light:      V(1, 2, 3).Normalize(),
		Ambient:    HexColor("444444"),
		Diffuse:    HexColor("bbbbbb"),
		LeftColor:  HexColor("8c8c8c"),
		RightColor: HexColor("4f7fc2"),
	}
}

// withDefaults fills unset fields from DefaultSnapshotOptions, leaving
// whatever the caller did set alone. Center stays as given: the origin
// is the intended look-at point.
func (o SnapshotOptions) withDefaults() SnapshotOptions {
	def := DefaultSnapshotOptions()
	if o.Size == 0 {
		o.Size = def.Size
	}
	if o.Scale < 1 {
		o.Scale = def.Scale
	}
	if o.Eye == (Vector{}) {
		o.Eye = def.Eye
	}
	if o.Up == (Vector{}) {
		o.Up = def.Up
	}
	if o.Fovy == 0 {
		o.Fovy = def.Fovy
	}
	if o.Light == (Vector{}) {
		o.Light = def.Light
	}
	if o.Ambient == (Color{}) {
		o.Ambient = def.Ambient
	}
	if o.Diffuse == (Color{}) {
		o.Diffuse = def.Diffuse
	}
	if o.LeftColor == (Color{}) {
		o.LeftColor = def.LeftColor
	}
	if o.RightColor == (Color{}) {
		o.RightColor = def.RightColor
	}
	return o
}

// RenderComparison renders the original and aligned meshes side by side
// with an identical camera, the offline stand-in for the linked
// two-pane viewer. Both panes are supersampled by opts.Scale and
// downsampled for antialiasing.
func RenderComparison(original, aligned *Mesh, opts SnapshotOptions) image.Image {
	opts = opts.withDefaults()

	left := renderPane(original, opts.LeftColor, opts)
	right := renderPane(aligned, opts.RightColor, opts)

	out := image.NewNRGBA(image.Rect(0, 0, 2*opts.Size, opts.Size))
	draw.Draw(out, image.Rect(0, 0, opts.Size, opts.Size), left, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(opts.Size, 0, 2*opts.Size, opts.Size), right, image.Point{}, draw.Src)
	return out
}

func renderPane(mesh *Mesh, color Color, opts SnapshotOptions) image.Image {
	shader := paneShader(opts)
	scene := NewScene(opts.Eye, opts.Center, opts.Up, opts.Fovy, opts.Size, opts.Scale, shader)
	scene.Context.ClearColorBufferWith(White)
	if opts.Style == StyleWireframe {
		scene.Context.Wireframe = true
		scene.Context.Cull = CullNone
	}

	o := NewObjectFromMesh(mesh)
	o.SetColor(color)
	scene.AddObject(o)

	im := scene.Render(true)
	if opts.Scale > 1 {
		im = resize.Resize(uint(opts.Size), uint(opts.Size), im, resize.Bilinear)
	}
	return im
}

func paneShader(opts SnapshotOptions) Shader {
	matrix := LookAt(opts.Eye, opts.Center, opts.Up).Perspective(opts.Fovy, 1, 1, 999)
	switch opts.Style {
	case StyleToon:
		return NewToonShader(matrix, opts.Light)
	case StyleWireframe:
		return NewSolidColorShader(matrix, HexColor("222222"))
	}
	return NewPhongShader(matrix, opts.Light, opts.Eye, opts.Ambient, opts.Diffuse)
}
