package interpreter

import (
	"strings"
)

// ============================================================================
// VOCABULARY — Fixed role catalog and restriction-type mapper
// ============================================================================
// Both are static lookups built once at startup and never mutated. Matching
// runs in the catalog's listed order — first listed, first matched — unlike
// the project index, which prefers longer keys.
// ============================================================================

// Catalog maps normalized keywords to canonical labels, preserving the
// fixed iteration order of the source list.
type Catalog struct {
	keys      []string // normalized, in listed order
	canonical map[string]string
}

// NewCatalog builds a Catalog from (keyword, canonical) pairs. Keywords are
// normalized with the same function used on queries.
func NewCatalog(pairs [][2]string) *Catalog {
	c := &Catalog{canonical: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		key := Normalize(p[0])
		if _, seen := c.canonical[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.canonical[key] = p[1]
	}
	return c
}

// FirstMatch returns the canonical label of the first listed keyword that is
// a substring of the normalized query.
func (c *Catalog) FirstMatch(normalizedQuery string) (string, bool) {
	for _, key := range c.keys {
		if strings.Contains(normalizedQuery, key) {
			return c.canonical[key], true
		}
	}
	return "", false
}

// MatchesAny reports whether any keyword occurs in the normalized query.
func (c *Catalog) MatchesAny(normalizedQuery string) bool {
	_, ok := c.FirstMatch(normalizedQuery)
	return ok
}

// PhraseMatch scans for "restriccion de <keyword>" / "restricciones de
// <keyword>" and returns the mapped canonical label of the first hit.
func (c *Catalog) PhraseMatch(normalizedQuery string) (string, bool) {
	for _, key := range c.keys {
		if strings.Contains(normalizedQuery, "restriccion de "+key) ||
			strings.Contains(normalizedQuery, "restricciones de "+key) {
			return c.canonical[key], true
		}
	}
	return "", false
}

// ============================================================================
// FIXED VOCABULARIES
// ============================================================================

// NewRoleCatalog returns the fixed catalog of valid job-role labels.
func NewRoleCatalog() *Catalog {
	return NewCatalog([][2]string{
		{"director de obra", "Director de Obra"},
		{"residente", "Residente"},
		{"interventor", "Interventor"},
		{"contratista", "Contratista"},
		{"siso", "SISO"},
		{"almacenista", "Almacenista"},
		{"arquitecto", "Arquitecto"},
		{"ingeniero", "Ingeniero"},
	})
}

// NewRestrictionTypes returns the fixed restriction-category keyword mapper.
func NewRestrictionTypes() *Catalog {
	return NewCatalog([][2]string{
		{"materiales", "Materiales"},
		{"mano de obra", "Mano de Obra"},
		{"equipos", "Equipos"},
		{"diseno", "Diseños"},
		{"licencias", "Licencias"},
		{"clima", "Clima"},
		{"financiera", "Financiera"},
	})
}
