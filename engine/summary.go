package engine

import (
	"fmt"
)

// ============================================================================
// SUMMARY BUILDER — One-line human summaries
// ============================================================================
// Every Result carries a summary sentence. The query log records the same
// text, so log entries stay readable without the full result payload.
// ============================================================================

// projectLabel returns the display scope for a spec.
func projectLabel(spec QuerySpec) string {
	if spec.Project == "" {
		return "todos los proyectos"
	}
	return spec.Project
}

// buildSummary produces the one-line summary for a populated result.
func buildSummary(topic string, spec QuerySpec, view RecordView) string {
	return fmt.Sprintf("%s registros de %s para %s",
		FormatInt(view.Len()), topic, projectLabel(spec))
}

// buildEmptySummary produces the summary for an empty-result variant.
func buildEmptySummary(topic string, spec QuerySpec) string {
	return fmt.Sprintf("sin registros de %s para %s", topic, projectLabel(spec))
}
