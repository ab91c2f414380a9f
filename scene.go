package stlander

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"
)

// Scene assembles objects with a camera for rendering.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          Shader
	eye, center, up Vector
	fovy, aspect    float64
}

// NewScene renders into a square size*scale buffer; the caller
// downsamples by scale for antialiasing (see RenderComparison).
func NewScene(eye, center, up Vector, fovy float64, size, scale int, shader Shader) *Scene {
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{context, nil, shader, eye, center, up, fovy, 1}
}

func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

// FitObjectsToScene widens the field of view until every object's
// bounding box corner is inside the frustum, with 5% padding.
func (s *Scene) FitObjectsToScene(eye, center, up Vector, aspect, near, far float64) Matrix {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.Mesh.BoundingBox())
		}
	}

	viewMatrix := LookAt(eye, center, up)
	if len(boxes) == 0 {
		return viewMatrix.Perspective(60, aspect, near, far)
	}
	sceneBox := BoxForBoxes(boxes)

	var maxAngleX, maxAngleY float64
	for _, corner := range sceneBox.Corners() {
		p := viewMatrix.MulPosition(corner)

		// the camera looks down -Z in view space
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}

		maxAngleX = math.Max(maxAngleX, math.Atan(math.Abs(p.X)/absZ))
		maxAngleY = math.Max(maxAngleY, math.Atan(math.Abs(p.Y)/absZ))
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	fovyDeg := Degrees(math.Max(fovyFromX, fovyFromY)) * 1.05

	return viewMatrix.Perspective(fovyDeg, aspect, near, far)
}

func (s *Scene) setShaderMatrix(m Matrix) {
	switch sh := s.Shader.(type) {
	case *PhongShader:
		sh.Matrix = m
	case *ToonShader:
		sh.Matrix = m
	case *SolidColorShader:
		sh.Matrix = m
	}
}

// Render draws all objects and returns the image.
func (s *Scene) Render(fit bool) image.Image {
	if fit {
		s.setShaderMatrix(s.FitObjectsToScene(s.eye, s.center, s.up, s.aspect, 1, 999))
	}
	for _, o := range s.Objects {
		s.Context.DrawObject(o)
	}
	return s.Context.Image()
}

// Draw renders the scene and writes it to path as PNG.
func (s *Scene) Draw(fit bool, path string, objects []*Object) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.DrawToWriter(fit, file, objects)
}

func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.AddObjects(objects)
	return png.Encode(writer, s.Render(fit))
}
