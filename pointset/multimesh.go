package pointset

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NamedMesh pairs a name with any mesh input accepted by NewTriangularMesh.
type NamedMesh struct {
	Name string
	Mesh interface{}
}

// MultiMesh is a family of coordinate sets sharing a single face table, such
// as the white, pial and inflated surfaces of one cortical hemisphere. All
// entries are assumed to share the first entry's topology; this is a caller
// contract and is not enforced.
type MultiMesh struct {
	triangles    Triangles
	names        []string
	coordsByName map[string]CoordinateArray
	defaultName  string
}

// NewMultiMesh builds the family from ordered entries. The first entry's face
// table becomes the shared table; later entries' tables are discarded without
// an equality check, though a differing face count logs a warning. An empty
// defaultName selects the first entry.
func NewMultiMesh(entries []NamedMesh, defaultName string, logger golog.Logger) (*MultiMesh, error) {
	if len(entries) == 0 {
		return nil, errors.New("at least one named mesh is required")
	}
	if logger == nil {
		logger = golog.Global()
	}
	mm := &MultiMesh{coordsByName: make(map[string]CoordinateArray, len(entries))}
	for _, entry := range entries {
		tm, err := NewTriangularMesh(entry.Mesh)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q", entry.Name)
		}
		if _, ok := mm.coordsByName[entry.Name]; ok {
			return nil, errors.Errorf("duplicate mesh name %q", entry.Name)
		}
		if mm.triangles == nil {
			mm.triangles = tm.GetTriangles()
		} else if len(tm.GetTriangles()) != len(mm.triangles) {
			logger.Warnw("face table size differs from the shared table; keeping the first table",
				"name", entry.Name,
				"faces", len(tm.GetTriangles()),
				"shared", len(mm.triangles))
		}
		mm.names = append(mm.names, entry.Name)
		mm.coordsByName[entry.Name] = tm.Coordinates()
	}
	if defaultName == "" {
		defaultName = mm.names[0]
	} else if _, ok := mm.coordsByName[defaultName]; !ok {
		return nil, NewUnknownNameError(defaultName, mm.names)
	}
	mm.defaultName = defaultName
	return mm, nil
}

// Names returns the registered coordinate-set names in definition order.
func (mm *MultiMesh) Names() []string {
	names := make([]string, len(mm.names))
	copy(names, mm.names)
	return names
}

// DefaultName returns the name selected when a lookup passes the empty name.
func (mm *MultiMesh) DefaultName() string {
	return mm.defaultName
}

// NumTriangles returns the number of faces in the shared table.
func (mm *MultiMesh) NumTriangles() int {
	return len(mm.triangles)
}

// GetTriangles returns the shared face-index table.
func (mm *MultiMesh) GetTriangles() Triangles {
	return mm.triangles
}

// CoordsFor returns the coordinates registered under name, or the default
// entry's coordinates when name is empty.
func (mm *MultiMesh) CoordsFor(name string) (*mat.Dense, error) {
	if name == "" {
		name = mm.defaultName
	}
	coords, ok := mm.coordsByName[name]
	if !ok {
		return nil, NewUnknownNameError(name, mm.names)
	}
	return coords.AsDense(), nil
}

// GetMesh returns the named coordinates together with the shared face table.
func (mm *MultiMesh) GetMesh(name string) (*mat.Dense, Triangles, error) {
	coords, err := mm.CoordsFor(name)
	if err != nil {
		return nil, nil, err
	}
	return coords, mm.triangles, nil
}
