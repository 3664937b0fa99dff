package interpreter

import (
	"strings"

	"github.com/obralens/obralens/engine"
)

// ============================================================================
// INTENT ROUTER — Ordered keyword rules
// ============================================================================
// A pure decision table: rules are evaluated top to bottom and the first
// match wins. The priority order is an explicit slice, not code order inside
// a conditional chain, so it is testable as data.
//
// All predicates run on normalized text, so only unaccented spellings are
// checked ("restriccion", never "restricción").
// ============================================================================

// rule pairs a trigger predicate with the intent it selects. resolve may
// inspect the query again for sub-selection (design progress vs inventory).
type rule struct {
	matches func(q string) bool
	resolve func(q string) engine.Intent
}

// Router classifies normalized queries into intents.
type Router struct {
	roles *Catalog
	rules []rule
}

// NewRouter builds the fixed rule table. The role catalog participates in
// the responsible-party trigger.
func NewRouter(roles *Catalog) *Router {
	r := &Router{roles: roles}
	r.rules = []rule{
		{
			matches: containsAny("avance de obra", "avance obra"),
			resolve: fixed(engine.IntentWorkProgress),
		},
		{
			matches: containsAny("avance en diseno", "avance diseno", "estado diseno", "inventario diseno"),
			resolve: func(q string) engine.Intent {
				if strings.Contains(q, "inventario") {
					return engine.IntentDesignInventory
				}
				return engine.IntentDesignProgress
			},
		},
		{
			matches: func(q string) bool {
				return strings.Contains(q, "responsable") ||
					strings.Contains(q, "cargo") ||
					r.roles.MatchesAny(q)
			},
			resolve: fixed(engine.IntentResponsible),
		},
		{
			matches: containsAny("restriccion", "problema"),
			resolve: fixed(engine.IntentRestrictions),
		},
		{
			matches: containsAny("sostenibilidad", "edge", "sostenible", "ambiental"),
			resolve: fixed(engine.IntentSustainability),
		},
	}
	return r
}

// Classify returns the intent for a normalized query. Deterministic: no
// state, no side effects, first matching rule wins.
func (r *Router) Classify(normalizedQuery string) engine.Intent {
	for _, rl := range r.rules {
		if rl.matches(normalizedQuery) {
			return rl.resolve(normalizedQuery)
		}
	}
	return engine.IntentUnrecognized
}

func containsAny(needles ...string) func(string) bool {
	return func(q string) bool {
		for _, n := range needles {
			if strings.Contains(q, n) {
				return true
			}
		}
		return false
	}
}

func fixed(intent engine.Intent) func(string) engine.Intent {
	return func(string) engine.Intent { return intent }
}
