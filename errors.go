package stlander

import "fmt"

// DegenerateMeshError reports a mesh whose total weighted area is
// numerically zero, or which has no valid triangle. Alignment of such a
// mesh is undefined; the caller needs a different input.
type DegenerateMeshError struct {
	Area    float64
	Valid   int // triangles that passed the area tolerance
	Epsilon float64
}

func (e *DegenerateMeshError) Error() string {
	if e.Valid == 0 {
		return fmt.Sprintf("degenerate mesh: no triangle with area above %g", e.Epsilon)
	}
	return fmt.Sprintf("degenerate mesh: total area %g below tolerance %g", e.Area, e.Epsilon)
}

// EigendecompositionError reports a symmetric eigensolver failure.
// Should not occur for a well-formed moment matrix, but is surfaced
// rather than defaulted.
type EigendecompositionError struct {
	Second Mat3
}

func (e *EigendecompositionError) Error() string {
	return fmt.Sprintf("eigendecomposition failed for moment matrix %v", e.Second)
}

// InvalidConfigurationError reports an unrecognized option value.
type InvalidConfigurationError struct {
	Option string
	Value  string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s", e.Value, e.Option)
}
