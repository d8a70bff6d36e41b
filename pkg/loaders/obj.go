// Package loaders implements geodesic's out-of-core collaborators: the
// Wavefront OBJ mesh parser and the JSON scene/asset/camera readers. Both
// are thin wrappers that translate file formats into the core's construction
// calls (geometry.NewTriangleWithNormals, bvh.Build, scene.SceneBuilder);
// none of the parsing logic participates in a query.
package loaders

import (
	"fmt"

	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geometry"
	"github.com/FreddyWordingham/geodesic/pkg/gplog"
	"github.com/udhos/gwob"
)

var logger = gplog.New("loaders")

// LoadMesh parses a triangulated Wavefront OBJ file at path and builds a
// Mesh over it using config. Faces take their per-vertex normals from the
// file's normal indices; when the file carries no normal coordinates at
// all, every triangle uses its flat geometric normal at each vertex.
func LoadMesh(path string, config bvh.Config[float64]) (*geometry.Mesh[float64], error) {
	options := gwob.ObjParserOptions{
		LogStats: true,
		Logger:   func(s string) { logger.Debug(s) },
	}

	obj, err := gwob.NewObjFromFile(path, &options)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading obj %q: %w", path, err)
	}

	stride := obj.StrideSize / 4
	posOffset := obj.StrideOffsetPosition / 4
	normOffset := obj.StrideOffsetNormal / 4

	vertexAt := func(index int) core.Vec3[float64] {
		base := stride*obj.Indices[index] + posOffset
		return core.NewVec3(obj.Coord64(base), obj.Coord64(base+1), obj.Coord64(base+2))
	}
	normalAt := func(index int) core.Vec3[float64] {
		base := stride*obj.Indices[index] + normOffset
		return core.NewVec3(obj.Coord64(base), obj.Coord64(base+1), obj.Coord64(base+2))
	}

	triangles := make([]geometry.Triangle[float64], 0, len(obj.Indices)/3)
	for _, g := range obj.Groups {
		faceCount := g.IndexCount / 3
		for f := 0; f < faceCount; f++ {
			i0 := g.IndexBegin + 3*f
			i1, i2 := i0+1, i0+2

			v0, v1, v2 := vertexAt(i0), vertexAt(i1), vertexAt(i2)

			var tri geometry.Triangle[float64]
			var triErr error
			if obj.NormCoordFound {
				tri, triErr = geometry.NewTriangleWithNormals(v0, v1, v2,
					normalAt(i0), normalAt(i1), normalAt(i2))
			} else {
				tri, triErr = geometry.NewTriangle(v0, v1, v2)
			}
			if triErr != nil {
				logger.Warningf("skipping degenerate face in %s: %v", path, triErr)
				continue
			}
			triangles = append(triangles, tri)
		}
	}

	mesh, err := geometry.NewMesh(config, triangles)
	if err != nil {
		return nil, fmt.Errorf("loaders: building mesh from %q: %w", path, err)
	}

	logger.Noticef("loaded mesh %s: %d triangles", path, mesh.TriangleCount())
	return mesh, nil
}
