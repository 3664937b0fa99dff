package engine

// ============================================================================
// FILTERS — Dimension-Based Filtering via RecordView
// ============================================================================
// Filters return SubViews (index lists into parent) — zero data copy.
// ============================================================================

// FilterByProject keeps rows whose derived normalized-project dimension
// equals projectNorm. An empty projectNorm means "all projects" and returns
// the view unchanged.
func FilterByProject(view RecordView, projectNormKey, projectNorm string) RecordView {
	if projectNorm == "" {
		return view
	}
	return FilterEqual(view, projectNormKey, projectNorm)
}

// FilterEqual keeps rows whose dimension value equals want exactly.
// Used for canonical role and restriction-type sub-filters, which compare
// canonical values — no case folding here.
func FilterEqual(view RecordView, key, want string) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if view.Dimension(i, key) == want {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// ContainsValue reports whether any row has the given dimension value.
func ContainsValue(view RecordView, key, want string) bool {
	for i := 0; i < view.Len(); i++ {
		if view.Dimension(i, key) == want {
			return true
		}
	}
	return false
}
