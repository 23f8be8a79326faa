package scenegraph

// ClearcoatParams holds the clearcoat layer parameters of materials that
// support one. Absence of the struct means the material has no clearcoat
// layer and clearcoat assignments are silently skipped.
type ClearcoatParams struct {
	Amount    float32
	Roughness float32
}

// TransmissionParams holds the refraction parameters of materials that
// support transmission.
type TransmissionParams struct {
	Transmission float32
	Thickness    float32
	IOR          float32
}

// Material is a named shading-parameter bundle shared by reference among
// meshes. ID is a stable dense index assigned when the model is built and
// is the key for all per-material caches.
type Material struct {
	ID   int
	Name string

	BaseColor         Color
	Roughness         float32
	Metalness         float32
	EmissiveColor     Color
	EmissiveIntensity float32
	Opacity           float32
	Transparent       bool
	EnvMapIntensity   float32

	// Optional capability groups; nil when unsupported.
	Clearcoat    *ClearcoatParams
	Transmission *TransmissionParams

	ColorMap *Texture

	// Render-state hints, used by generated overlay materials such as
	// decals. DepthWrite off plus a negative polygon offset keeps an
	// overlay from z-fighting with the surface beneath it.
	DepthWrite    bool
	PolygonOffset float32

	needsUpdate bool
}

// NewMaterial returns an opaque material with neutral defaults.
func NewMaterial(name string) *Material {
	return &Material{
		Name:            name,
		BaseColor:       Color{1, 1, 1},
		Roughness:       0.5,
		Metalness:       0,
		Opacity:         1,
		EnvMapIntensity: 1,
		DepthWrite:      true,
	}
}

// MarkDirty flags the material as needing a GPU state refresh. The
// renderer clears the flag after re-uploading.
func (m *Material) MarkDirty() {
	m.needsUpdate = true
}

// Dirty reports whether the material needs a GPU state refresh.
func (m *Material) Dirty() bool {
	return m.needsUpdate
}

// ClearDirty resets the refresh flag; called by the renderer.
func (m *Material) ClearDirty() {
	m.needsUpdate = false
}
