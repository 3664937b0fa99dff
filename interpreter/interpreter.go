package interpreter

// ============================================================================
// INTERPRETER — natural language → QuerySpec
// ============================================================================
// Deterministic, rule-based translation. The interpreter owns the immutable
// lookup structures (project index, role catalog, restriction mapper) built
// once at load; every Interpret call is a pure function of its input.
// ============================================================================

import (
	"github.com/obralens/obralens/engine"
)

// Interpreter turns raw query text into an engine.QuerySpec.
type Interpreter struct {
	index        *ProjectIndex
	roles        *Catalog
	restrictions *Catalog
	router       *Router
}

// New builds an Interpreter over the loaded datasets. projectKey names the
// original (as-entered) project dimension scanned for the index.
func New(projectKey string, src engine.Sources) *Interpreter {
	roles := NewRoleCatalog()
	return &Interpreter{
		index: BuildProjectIndex(projectKey,
			src.Progress, src.Responsible, src.Restrictions,
			src.Sustainability, src.DesignProgress, src.DesignInventory),
		roles:        roles,
		restrictions: NewRestrictionTypes(),
		router:       NewRouter(roles),
	}
}

// Projects exposes the built index (CLI uses it to list known projects).
func (it *Interpreter) Projects() *ProjectIndex { return it.index }

// Interpret normalizes the query, resolves the project mention, classifies
// the intent, and extracts the intent's sub-filter.
func (it *Interpreter) Interpret(rawQuery string) engine.QuerySpec {
	q := Normalize(rawQuery)

	spec := engine.QuerySpec{
		NormalizedQuery: q,
		Intent:          it.router.Classify(q),
	}
	spec.Project, spec.ProjectNorm = it.index.Resolve(q)

	switch spec.Intent {
	case engine.IntentResponsible:
		if role, ok := it.roles.FirstMatch(q); ok {
			spec.Role = role
		}
	case engine.IntentRestrictions:
		// Candidate only — the executor accepts it just when the type
		// occurs in the filtered rows.
		if rt, ok := it.restrictions.PhraseMatch(q); ok {
			spec.RestrictionType = rt
		}
	}

	return spec
}
