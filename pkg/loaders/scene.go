package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FreddyWordingham/geodesic/pkg/bvh"
	"github.com/FreddyWordingham/geodesic/pkg/core"
	"github.com/FreddyWordingham/geodesic/pkg/geometry"
	"github.com/FreddyWordingham/geodesic/pkg/scene"
)

// vec3JSON is the [x, y, z] array every scene/camera document uses to
// encode a point or direction.
type vec3JSON [3]float64

func (v vec3JSON) toVec3() core.Vec3[float64] {
	return core.NewVec3(v[0], v[1], v[2])
}

// bvhConfigJSON mirrors bvh.Config's five tunables, the shape the assets
// document carries them in.
type bvhConfigJSON struct {
	TraverseCost     float64 `json:"traverse_cost"`
	IntersectCost    float64 `json:"intersect_cost"`
	SAHBuckets       int     `json:"sah_buckets"`
	MaxShapesPerNode int     `json:"max_shapes_per_node"`
	MaxDepth         int     `json:"max_depth"`
}

func (c bvhConfigJSON) toConfig() bvh.Config[float64] {
	return bvh.Config[float64]{
		TraverseCost:     c.TraverseCost,
		IntersectCost:    c.IntersectCost,
		SAHBuckets:       c.SAHBuckets,
		MaxShapesPerNode: c.MaxShapesPerNode,
		MaxDepth:         c.MaxDepth,
	}
}

// assetsDocument is the root of the assets JSON file: the BVH tuning
// shared by every mesh and the top-level scene, plus the name -> OBJ path
// table the scene document's Instance entries resolve mesh_name against.
type assetsDocument struct {
	BvhConfig bvhConfigJSON `json:"bvh_config"`
	Meshes    [][2]string   `json:"meshes"`
}

// AssetBundle is the mesh lookup service the scene loader consumes: a
// name -> Mesh mapping plus the BVH configuration every BVH in the scene
// (inner and outer) is built with.
type AssetBundle struct {
	Config bvh.Config[float64]
	Meshes map[string]*geometry.Mesh[float64]
}

// LoadAssets reads an assets JSON document and eagerly loads every mesh it
// references, building each mesh's inner BVH with the shared config.
func LoadAssets(path string) (*AssetBundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading assets %q: %w", path, err)
	}

	var doc assetsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("loaders: parsing assets %q: %w", path, err)
	}

	config := doc.BvhConfig.toConfig()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	bundle := &AssetBundle{Config: config, Meshes: make(map[string]*geometry.Mesh[float64], len(doc.Meshes))}
	for _, entry := range doc.Meshes {
		name, meshPath := entry[0], entry[1]
		mesh, err := LoadMesh(meshPath, config)
		if err != nil {
			return nil, err
		}
		bundle.Meshes[name] = mesh
	}

	logger.Noticef("loaded assets %s: %d meshes", path, len(bundle.Meshes))
	return bundle, nil
}

// Scene JSON tagged-union payloads, indexed positionally: Sphere is
// [center, radius], Plane is [point, normal],
// Triangle is [[v0,v1,v2],[n0,n1,n2]], Instance is [mesh_name, transform].
type sphereFields struct {
	Sphere [2]json.RawMessage `json:"Sphere"`
}

type planeFields struct {
	Plane [2]vec3JSON `json:"Plane"`
}

type triangleFields struct {
	Triangle [2][3]vec3JSON `json:"Triangle"`
}

type instanceFields struct {
	Instance [2]json.RawMessage `json:"Instance"`
}

// mat4JSON is a 4x4 transform encoded as 4 rows of 4 numbers, or omitted
// (null) for an identity placement.
type mat4JSON [4][4]float64

func (m mat4JSON) toMat4() core.Mat4[float64] {
	var out core.Mat4[float64]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[r][c]
		}
	}
	return out
}

// transformJSON is the compact translation/rotation/scale form an Instance
// may carry instead of a raw 4x4 matrix, mirroring the source library's
// SerializedTransform: an optional translation vector, an optional Euler
// rotation in degrees, and an optional uniform scale factor. Fields absent
// default to identity; the combined transform is Translation * Rotation *
// Scale, applied scale-first.
type transformJSON struct {
	Translation *vec3JSON `json:"translation"`
	Rotation    *vec3JSON `json:"rotation"`
	Scale       *float64  `json:"scale"`
}

func (tr transformJSON) toMat4() core.Mat4[float64] {
	m := core.Identity4[float64]()
	if tr.Scale != nil {
		s := *tr.Scale
		m[0][0], m[1][1], m[2][2] = s, s, s
	}
	if tr.Rotation != nil {
		m = core.RotationEulerDegrees(tr.Rotation.toVec3()).Mul(m)
	}
	if tr.Translation != nil {
		t := tr.Translation.toVec3()
		translation := core.Identity4[float64]()
		translation[0][3], translation[1][3], translation[2][3] = t.X, t.Y, t.Z
		m = translation.Mul(m)
	}
	return m
}

// parseTransform resolves an Instance's transform field, accepting either a
// raw 4x4 row-major matrix or the compact translation/rotation/scale form.
func parseTransform(raw json.RawMessage) (core.Mat4[float64], error) {
	var m mat4JSON
	if err := json.Unmarshal(raw, &m); err == nil {
		return m.toMat4(), nil
	}
	var tr transformJSON
	if err := json.Unmarshal(raw, &tr); err != nil {
		return core.Mat4[float64]{}, fmt.Errorf("unrecognised transform shape: %w", err)
	}
	return tr.toMat4(), nil
}

// sceneDocument is the root of the scene JSON file.
type sceneDocument struct {
	Objects []json.RawMessage `json:"objects"`
}

// LoadScene reads a scene JSON document, resolving each Instance entry's
// mesh_name against assets, and returns the finished, immutable Scene.
func LoadScene(path string, assets *AssetBundle) (*scene.Scene[float64], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: reading scene %q: %w", path, err)
	}

	var doc sceneDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("loaders: parsing scene %q: %w", path, err)
	}

	builder := scene.NewSceneBuilder[float64]()
	for i, rawObj := range doc.Objects {
		if err := addObject(builder, rawObj, assets); err != nil {
			return nil, fmt.Errorf("loaders: scene %q: object %d: %w", path, i, err)
		}
	}

	built, err := builder.Build(assets.Config)
	if err != nil {
		return nil, err
	}

	logger.Noticef("loaded scene %s: %d objects", path, built.ObjectCount())
	return built, nil
}

func addObject(builder *scene.SceneBuilder[float64], raw json.RawMessage, assets *AssetBundle) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return err
	}

	switch {
	case probe["Sphere"] != nil:
		var fields sphereFields
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		var center vec3JSON
		var radius float64
		if err := json.Unmarshal(fields.Sphere[0], &center); err != nil {
			return err
		}
		if err := json.Unmarshal(fields.Sphere[1], &radius); err != nil {
			return err
		}
		builder.AddSphere(center.toVec3(), radius)

	case probe["Plane"] != nil:
		var fields planeFields
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		builder.AddPlane(fields.Plane[0].toVec3(), fields.Plane[1].toVec3())

	case probe["Triangle"] != nil:
		var fields triangleFields
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		v, n := fields.Triangle[0], fields.Triangle[1]
		builder.AddTriangleWithNormals(
			v[0].toVec3(), v[1].toVec3(), v[2].toVec3(),
			n[0].toVec3(), n[1].toVec3(), n[2].toVec3(),
		)

	case probe["Instance"] != nil:
		var fields instanceFields
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		var meshName string
		if err := json.Unmarshal(fields.Instance[0], &meshName); err != nil {
			return err
		}
		mesh, ok := assets.Meshes[meshName]
		if !ok {
			return fmt.Errorf("unknown mesh %q", meshName)
		}
		transform := core.Identity4[float64]()
		if len(fields.Instance[1]) > 0 && string(fields.Instance[1]) != "null" {
			var err error
			transform, err = parseTransform(fields.Instance[1])
			if err != nil {
				return err
			}
		}
		builder.AddInstance(mesh, transform)

	default:
		return fmt.Errorf("unrecognised object tag")
	}
	return nil
}
