package stlander

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

type stlHeader struct {
	_     [80]uint8
	Count uint32
}

type stlTriangle struct {
	N, V1, V2, V3 [3]float32
	_             uint16
}

// LoadSTL reads a binary or ASCII STL file.
func LoadSTL(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadSTLFromReader(file)
}

// LoadSTLFromReader sniffs the format: a well-formed binary file's
// 84-byte header encodes a triangle count matching the remaining
// length, otherwise the positions are parsed as ASCII.
func LoadSTLFromReader(r io.Reader) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if isBinarySTL(data) {
		return loadBinarySTL(data)
	}
	return loadASCIISTL(data)
}

func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	return len(data) == 84+int(count)*50
}

func loadBinarySTL(data []byte) (*Mesh, error) {
	count := binary.LittleEndian.Uint32(data[80:84])
	triangles := make([]*Triangle, 0, count)
	for i := 0; i < int(count); i++ {
		d := data[84+i*50:]
		var v [9]float64
		for j := range v {
			// skip the 12-byte normal, recomputed by FixNormals
			bits := binary.LittleEndian.Uint32(d[12+j*4:])
			v[j] = float64(math.Float32frombits(bits))
		}
		t := NewTriangleForPoints(
			Vector{v[0], v[1], v[2]},
			Vector{v[3], v[4], v[5]},
			Vector{v[6], v[7], v[8]})
		triangles = append(triangles, t)
	}
	return NewTriangleMesh(triangles), nil
}

func loadASCIISTL(data []byte) (*Mesh, error) {
	var triangles []*Triangle
	var points []Vector
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 4 && fields[0] == "vertex" {
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("stl: bad vertex line %q", scanner.Text())
			}
			points = append(points, Vector{x, y, z})
			if len(points) == 3 {
				triangles = append(triangles, NewTriangleForPoints(points[0], points[1], points[2]))
				points = points[:0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("stl: no triangles found")
	}
	return NewTriangleMesh(triangles), nil
}

// SaveSTL writes the mesh triangles as binary STL.
func SaveSTL(path string, mesh *Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSTL(file, mesh)
}

func WriteSTL(w io.Writer, mesh *Mesh) error {
	bw := bufio.NewWriter(w)
	header := stlHeader{Count: uint32(len(mesh.Triangles))}
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return err
	}
	for _, triangle := range mesh.Triangles {
		n := triangle.Normal()
		d := stlTriangle{}
		d.N[0] = float32(n.X)
		d.N[1] = float32(n.Y)
		d.N[2] = float32(n.Z)
		d.V1[0] = float32(triangle.V1.Position.X)
		d.V1[1] = float32(triangle.V1.Position.Y)
		d.V1[2] = float32(triangle.V1.Position.Z)
		d.V2[0] = float32(triangle.V2.Position.X)
		d.V2[1] = float32(triangle.V2.Position.Y)
		d.V2[2] = float32(triangle.V2.Position.Z)
		d.V3[0] = float32(triangle.V3.Position.X)
		d.V3[1] = float32(triangle.V3.Position.Y)
		d.V3[2] = float32(triangle.V3.Position.Z)
		if err := binary.Write(bw, binary.LittleEndian, &d); err != nil {
			return err
		}
	}
	return bw.Flush()
}
