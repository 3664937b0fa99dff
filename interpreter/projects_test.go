package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obralens/obralens/engine"
)

func projectView(names ...string) engine.RecordView {
	records := make([]engine.Record, 0, len(names))
	for _, n := range names {
		records = append(records, engine.Record{
			Dimensions: map[string]string{"proyecto": n},
		})
	}
	return engine.NewSliceView(records)
}

func TestBuildProjectIndexDistinct(t *testing.T) {
	idx := BuildProjectIndex("proyecto",
		projectView("Burdeos", "Burdeos", "Altos del Mar"),
		projectView("Mar"),
	)
	assert.Equal(t, 3, idx.Len())

	canonical, ok := idx.Canonical("burdeos")
	require.True(t, ok)
	assert.Equal(t, "Burdeos", canonical)
}

func TestBuildProjectIndexCollisionLastWins(t *testing.T) {
	// Two distinct originals normalize identically; the later one (dataset
	// order, then row order) silently overwrites the earlier.
	idx := BuildProjectIndex("proyecto", projectView("Bürdeos", "BURDEOS"))

	canonical, ok := idx.Canonical("burdeos")
	require.True(t, ok)
	assert.Equal(t, "BURDEOS", canonical)
	assert.Equal(t, 1, idx.Len())
}

func TestProjectIndexNames(t *testing.T) {
	idx := BuildProjectIndex("proyecto", projectView("Marval", "Altos del Mar", "Burdeos"))
	assert.Equal(t, []string{"Altos del Mar", "Burdeos", "Marval"}, idx.Names())
}

func TestResolveRoundTrip(t *testing.T) {
	idx := BuildProjectIndex("proyecto", projectView("Burdeos", "Altos del Mar"))

	canonical, norm := idx.Resolve(Normalize("cual es el avance de Bürdeos hoy"))
	assert.Equal(t, "Burdeos", canonical)
	assert.Equal(t, "burdeos", norm)
}

func TestResolveLongestMatchPrecedence(t *testing.T) {
	// "Altos del Mar" must win over its prefix "Altos".
	idx := BuildProjectIndex("proyecto", projectView("Altos", "Altos del Mar"))

	canonical, norm := idx.Resolve("restricciones en altos del mar")
	assert.Equal(t, "Altos del Mar", canonical)
	assert.Equal(t, "altos del mar", norm)
}

func TestResolveBoundaryRejectsPartialToken(t *testing.T) {
	// Project "Mar" must not match inside the token "marval".
	idx := BuildProjectIndex("proyecto", projectView("Mar", "Marval"))

	canonical, _ := idx.Resolve("avance de obra en marval")
	assert.Equal(t, "Marval", canonical)
}

func TestResolveSubstringFallback(t *testing.T) {
	// No boundary match exists, so pass 2 recovers the glued mention.
	idx := BuildProjectIndex("proyecto", projectView("Mar"))

	canonical, norm := idx.Resolve("avance de obramar")
	assert.Equal(t, "Mar", canonical)
	assert.Equal(t, "mar", norm)
}

func TestResolveBoundaryAtEdgesAndPunctuation(t *testing.T) {
	idx := BuildProjectIndex("proyecto", projectView("Burdeos"))

	for _, q := range []string{
		"burdeos",
		"avance en burdeos",
		"burdeos: avance",
		"(burdeos)",
	} {
		canonical, _ := idx.Resolve(q)
		assert.Equal(t, "Burdeos", canonical, "query %q", q)
	}
}

func TestResolveNoMatch(t *testing.T) {
	idx := BuildProjectIndex("proyecto", projectView("Burdeos"))

	canonical, norm := idx.Resolve("avance de obra en proyectoinexistente")
	assert.Empty(t, canonical)
	assert.Empty(t, norm)
}

func TestResolveSkipsNilViewsAndBlanks(t *testing.T) {
	idx := BuildProjectIndex("proyecto", nil, projectView("", "Burdeos"))
	assert.Equal(t, 1, idx.Len())
}
