package stlander

import "math"

// SurfaceMoments are the area-weighted first and second moments of a
// triangle mesh surface, treating the mesh as a thin shell with mass
// concentrated at triangle centroids.
type SurfaceMoments struct {
	// Area is the total surface area of the valid triangles.
	Area float64
	// Centroid is the area-weighted mean of triangle centroids.
	Centroid Vector
	// Second is the symmetric positive-semidefinite matrix of
	// area-weighted outer products of centroid offsets, normalized by
	// total area.
	Second Mat3
}

// DefaultEpsilon is the area tolerance used when the caller supplies no
// override: the squared bounding box diagonal scaled down by 2^-40,
// comfortably above float64 roundoff accumulated over tens of
// thousands of triangles and far below any meaningful surface area.
func DefaultEpsilon(box Box) float64 {
	d := box.Diagonal()
	return d * d * math.Exp2(-40)
}

// SurfaceMoments computes the mesh's area-weighted surface moments.
// Triangles with area at or below eps are skipped so that
// ill-conditioned slivers cannot poison the moment matrix. eps <= 0
// selects DefaultEpsilon. Returns *DegenerateMeshError when no triangle
// survives or the total area is itself within tolerance of zero.
//
// Two passes: the centroid first, then second moments about that
// centroid. Pure function of the geometry; m is not modified.
func (m *Mesh) SurfaceMoments(eps float64) (*SurfaceMoments, error) {
	if eps <= 0 {
		eps = DefaultEpsilon(m.BoundingBox())
	}

	var totalArea float64
	var weighted Vector
	valid := 0
	for _, t := range m.Triangles {
		area := t.Area()
		if !isFiniteArea(area) || area <= eps {
			continue
		}
		valid++
		totalArea += area
		weighted = weighted.Add(t.Centroid().MulScalar(area))
	}
	if valid == 0 || totalArea <= eps {
		return nil, &DegenerateMeshError{Area: totalArea, Valid: valid, Epsilon: eps}
	}

	centroid := weighted.DivScalar(totalArea)

	var second Mat3
	for _, t := range m.Triangles {
		area := t.Area()
		if !isFiniteArea(area) || area <= eps {
			continue
		}
		second.AddOuterScaled(t.Centroid().Sub(centroid), area)
	}
	second = second.Scale(1 / totalArea)

	return &SurfaceMoments{Area: totalArea, Centroid: centroid, Second: second}, nil
}

func isFiniteArea(a float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0)
}
