// Package snapshot records immutable per-material baselines so every look
// mutation can be undone byte-for-byte. The store is the reversibility
// anchor for the whole engine: restore-then-apply on every pass keeps
// repeated parameter changes from compounding.
package snapshot

import "github.com/garagekit/restyle/pkg/scenegraph"

// State is the subset of material fields the engine mutates, copied by
// value. Capability groups are flattened; the Has flags remember whether
// the group existed at capture time.
type State struct {
	BaseColor         scenegraph.Color
	Roughness         float32
	Metalness         float32
	EmissiveColor     scenegraph.Color
	EmissiveIntensity float32
	Opacity           float32
	Transparent       bool
	EnvMapIntensity   float32

	HasClearcoat       bool
	Clearcoat          float32
	ClearcoatRoughness float32

	HasTransmission bool
	Transmission    float32
	Thickness       float32
	IOR             float32

	ColorMap *scenegraph.Texture
}

// Store holds at most one baseline per material, keyed by the material's
// stable ID. One instance serves the look pipeline; a second, independent
// instance is the plate applier's namespace.
type Store struct {
	states map[int]State
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{states: make(map[int]State)}
}

// Capture records the material's current state unless a baseline already
// exists. Repeated capture is a no-op.
func (s *Store) Capture(m *scenegraph.Material) {
	if m == nil {
		return
	}
	if _, exists := s.states[m.ID]; exists {
		return
	}

	st := State{
		BaseColor:         m.BaseColor,
		Roughness:         m.Roughness,
		Metalness:         m.Metalness,
		EmissiveColor:     m.EmissiveColor,
		EmissiveIntensity: m.EmissiveIntensity,
		Opacity:           m.Opacity,
		Transparent:       m.Transparent,
		EnvMapIntensity:   m.EnvMapIntensity,
		ColorMap:          m.ColorMap,
	}
	if m.Clearcoat != nil {
		st.HasClearcoat = true
		st.Clearcoat = m.Clearcoat.Amount
		st.ClearcoatRoughness = m.Clearcoat.Roughness
	}
	if m.Transmission != nil {
		st.HasTransmission = true
		st.Transmission = m.Transmission.Transmission
		st.Thickness = m.Transmission.Thickness
		st.IOR = m.Transmission.IOR
	}
	s.states[m.ID] = st
}

// Restore writes the recorded baseline back and marks the material dirty.
// A material without a baseline is left untouched.
func (s *Store) Restore(m *scenegraph.Material) {
	if m == nil {
		return
	}
	st, exists := s.states[m.ID]
	if !exists {
		return
	}

	m.BaseColor = st.BaseColor
	m.Roughness = st.Roughness
	m.Metalness = st.Metalness
	m.EmissiveColor = st.EmissiveColor
	m.EmissiveIntensity = st.EmissiveIntensity
	m.Opacity = st.Opacity
	m.Transparent = st.Transparent
	m.EnvMapIntensity = st.EnvMapIntensity
	m.ColorMap = st.ColorMap
	if st.HasClearcoat && m.Clearcoat != nil {
		m.Clearcoat.Amount = st.Clearcoat
		m.Clearcoat.Roughness = st.ClearcoatRoughness
	}
	if st.HasTransmission && m.Transmission != nil {
		m.Transmission.Transmission = st.Transmission
		m.Transmission.Thickness = st.Thickness
		m.Transmission.IOR = st.IOR
	}
	m.MarkDirty()
}

// Has reports whether a baseline exists for the material.
func (s *Store) Has(m *scenegraph.Material) bool {
	if m == nil {
		return false
	}
	_, exists := s.states[m.ID]
	return exists
}

// Len returns the number of recorded baselines.
func (s *Store) Len() int {
	return len(s.states)
}

// Clear drops every baseline. Called exactly once per model swap.
func (s *Store) Clear() {
	s.states = make(map[int]State)
}
