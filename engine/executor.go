package engine

import (
	"fmt"
)

// ============================================================================
// EXECUTOR — Per-intent filtering and aggregation
// ============================================================================
// Entry point: Execute(spec, sources, opts...)
//
// Pipeline per intent:
//   1. Pick the relevant dataset view
//   2. Filter by resolved project (skip when none — "all projects")
//   3. Apply the intent's sub-filter (role / restriction type)
//   4. Build table, optional chart aggregate, title, summary
//
// Every code path returns a well-formed Result. Empty result sets and
// unrecognized queries are normal variants, never errors. All computation
// is local and read-only — identical spec + data yields identical output.
// ============================================================================

// Sources holds the six dataset views. Nil entries behave as empty datasets.
type Sources struct {
	Progress        RecordView
	Responsible     RecordView
	Restrictions    RecordView
	Sustainability  RecordView
	DesignProgress  RecordView
	DesignInventory RecordView
}

// HelpMessage is the fixed reply for unrecognized queries.
const HelpMessage = "No reconocí la consulta. Puedo responder sobre: " +
	"avance de obra, avance de diseño, inventario de diseño, responsables, " +
	"restricciones y sostenibilidad."

// Execute runs a QuerySpec against the loaded datasets and returns a
// render-ready Result.
func Execute(spec QuerySpec, src Sources, opts ...Option) *Result {
	cfg := applyOptions(opts)

	switch spec.Intent {
	case IntentWorkProgress:
		return executeWorkProgress(spec, orEmpty(src.Progress), cfg)
	case IntentDesignProgress:
		return executeListing(spec, orEmpty(src.DesignProgress), "avance de diseño", "Avance de diseño", cfg)
	case IntentDesignInventory:
		return executeListing(spec, orEmpty(src.DesignInventory), "inventario de diseño", "Inventario de diseño", cfg)
	case IntentResponsible:
		return executeResponsible(spec, orEmpty(src.Responsible), cfg)
	case IntentRestrictions:
		return executeRestrictions(spec, orEmpty(src.Restrictions), cfg)
	case IntentSustainability:
		return executeListing(spec, orEmpty(src.Sustainability), "sostenibilidad", "Sostenibilidad", cfg)
	default:
		return &Result{
			Title:   HelpMessage,
			Kind:    KindGeneral,
			Summary: "consulta no reconocida",
		}
	}
}

// ============================================================================
// WORK PROGRESS — table + mean-percent-by-stage chart
// ============================================================================

func executeWorkProgress(spec QuerySpec, view RecordView, cfg *config) *Result {
	filtered := FilterByProject(view, cfg.Columns.ProjectNorm, spec.ProjectNorm)
	if filtered.Len() == 0 {
		return emptyResult("avance de obra", spec)
	}

	title := fmt.Sprintf("Avance de obra — %s", projectLabel(spec))
	summary := buildSummary("avance de obra", spec, filtered)
	if hasMeasure(filtered, cfg.Columns.Percent) {
		summary = fmt.Sprintf("%s (avance promedio %s)",
			summary, FormatPercent(MeanMeasure(filtered, cfg.Columns.Percent)))
	}

	result := &Result{
		Title:   title,
		Kind:    KindGeneral,
		Summary: summary,
		Table:   BuildTable(title, filtered, cfg.Columns.ProjectNorm),
		Rows:    filtered,
	}

	// Chart needs both the stage dimension and the percent measure; a dataset
	// missing either just loses the chart.
	if cfg.Chart != nil && hasDimension(filtered, cfg.Columns.Stage) && hasMeasure(filtered, cfg.Columns.Percent) {
		groups := GroupMean(filtered, cfg.Columns.Stage, cfg.Columns.Percent)
		result.Chart = cfg.Chart.Build(AggregateRequest{
			GroupBy:     cfg.Columns.Stage,
			Value:       cfg.Columns.Percent,
			Aggregation: AggMean,
			Title:       title,
		}, groups)
	}

	return result
}

// ============================================================================
// LISTINGS — design progress, design inventory, sustainability
// ============================================================================

func executeListing(spec QuerySpec, view RecordView, topic, heading string, cfg *config) *Result {
	filtered := FilterByProject(view, cfg.Columns.ProjectNorm, spec.ProjectNorm)
	if filtered.Len() == 0 {
		return emptyResult(topic, spec)
	}

	title := fmt.Sprintf("%s — %s", heading, projectLabel(spec))
	return &Result{
		Title:   title,
		Kind:    KindGeneral,
		Summary: buildSummary(topic, spec, filtered),
		Table:   BuildTable(title, filtered, cfg.Columns.ProjectNorm),
		Rows:    filtered,
	}
}

// ============================================================================
// RESPONSIBLE — project filter, then canonical-role equality
// ============================================================================

func executeResponsible(spec QuerySpec, view RecordView, cfg *config) *Result {
	filtered := FilterByProject(view, cfg.Columns.ProjectNorm, spec.ProjectNorm)

	roleLabel := "cualquier cargo"
	if spec.Role != "" {
		roleLabel = spec.Role
		filtered = FilterEqual(filtered, cfg.Columns.Role, spec.Role)
	}

	if filtered.Len() == 0 {
		return &Result{
			Title: ErrorTitlePrefix + fmt.Sprintf("no hay responsables (%s) para %s",
				roleLabel, projectLabel(spec)),
			Kind:    KindGeneral,
			Summary: buildEmptySummary("responsables", spec),
		}
	}

	title := fmt.Sprintf("Responsables — %s", projectLabel(spec))
	if spec.Role != "" {
		title = fmt.Sprintf("Responsables (%s) — %s", spec.Role, projectLabel(spec))
	}

	return &Result{
		Title:   title,
		Kind:    KindGeneral,
		Summary: buildSummary("responsables", spec, filtered),
		Table:   BuildTable(title, filtered, cfg.Columns.ProjectNorm),
		Rows:    filtered,
	}
}

// ============================================================================
// RESTRICTIONS — project filter, count-by-type chart, type preselection
// ============================================================================

func executeRestrictions(spec QuerySpec, view RecordView, cfg *config) *Result {
	filtered := FilterByProject(view, cfg.Columns.ProjectNorm, spec.ProjectNorm)
	if filtered.Len() == 0 {
		return emptyResult("restricciones", spec)
	}

	// The interpreter extracts a candidate type from the query phrase; it is
	// accepted only when it actually occurs among the filtered rows.
	preselected := AllRestrictionTypes
	if spec.RestrictionType != "" &&
		ContainsValue(filtered, cfg.Columns.RestrictionType, spec.RestrictionType) {
		preselected = spec.RestrictionType
	}

	title := fmt.Sprintf("Restricciones — %s", projectLabel(spec))
	result := &Result{
		Title:       title,
		Kind:        KindRestrictions,
		Summary:     buildSummary("restricciones", spec, filtered),
		Table:       BuildTable(title, filtered, cfg.Columns.ProjectNorm),
		Rows:        filtered,
		Preselected: preselected,
	}

	// The chart always covers the project-filtered set, not the preselected
	// type — the preselection is a view default, not a data filter.
	if cfg.Chart != nil && hasDimension(filtered, cfg.Columns.RestrictionType) {
		groups := GroupCount(filtered, cfg.Columns.RestrictionType)
		result.Chart = cfg.Chart.Build(AggregateRequest{
			GroupBy:     cfg.Columns.RestrictionType,
			Aggregation: AggCount,
			Title:       title,
		}, groups)
	}

	return result
}

// ============================================================================
// EMPTY RESULT
// ============================================================================

func emptyResult(topic string, spec QuerySpec) *Result {
	return &Result{
		Title: ErrorTitlePrefix + fmt.Sprintf("no hay registros de %s para %s",
			topic, projectLabel(spec)),
		Kind:    KindGeneral,
		Summary: buildEmptySummary(topic, spec),
	}
}
