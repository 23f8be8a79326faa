// Package classify maps free-form mesh and material names to semantic
// vehicle-part tags. Loaders give no part metadata, so everything downstream
// of the look pipeline rides on these substring heuristics.
package classify

import "strings"

// PartTags is the derived classification for one surface. Tags are
// independent booleans; callers resolve overlaps by precedence
// (wheel, caliper, glass, light, trim).
type PartTags struct {
	IsWheel   bool
	IsCaliper bool
	IsGlass   bool
	IsLight   bool
	IsTrim    bool
}

// Any reports whether at least one tag is set.
func (t PartTags) Any() bool {
	return t.IsWheel || t.IsCaliper || t.IsGlass || t.IsLight || t.IsTrim
}

var (
	glassWords = []string{"glass", "window", "windshield", "windscreen"}
	lightWords = []string{"light", "lamp", "head", "tail"}
	trimWords  = []string{"trim", "chrome", "badge", "emblem", "mirror", "grill", "grille", "exhaust", "handle"}
)

// Classify derives part tags from a (mesh name, material name) pair.
// Total: any input, including empty or unicode strings, yields a tag set.
func Classify(meshName, materialName string) PartTags {
	hay := normalize(meshName) + " " + normalize(materialName)

	var tags PartTags
	// Tire sidewalls frequently share the wheel mesh name and must not be
	// recolored as the wheel.
	tags.IsWheel = (strings.Contains(hay, "wheel") || strings.Contains(hay, "rim")) &&
		!strings.Contains(hay, "tire")
	tags.IsCaliper = strings.Contains(hay, "caliper")
	tags.IsGlass = containsAny(hay, glassWords)
	tags.IsLight = containsAny(hay, lightWords)
	tags.IsTrim = containsAny(hay, trimWords)
	return tags
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func containsAny(hay string, words []string) bool {
	for _, w := range words {
		if strings.Contains(hay, w) {
			return true
		}
	}
	return false
}
