package engine

// ============================================================================
// ENGINE TYPES — Construction-Project Query Answering
// ============================================================================
// The interpreter produces a QuerySpec; the engine consumes it together with
// the loaded dataset views and returns a render-ready Result.
// ============================================================================

// Intent is the classified purpose of a query.
type Intent string

const (
	IntentWorkProgress    Intent = "work_progress"
	IntentDesignProgress  Intent = "design_progress"
	IntentDesignInventory Intent = "design_inventory"
	IntentResponsible     Intent = "responsible"
	IntentRestrictions    Intent = "restrictions"
	IntentSustainability  Intent = "sustainability"
	IntentUnrecognized    Intent = "unrecognized"
)

// ResultKind tags how the frontend should present a Result.
type ResultKind string

const (
	KindGeneral      ResultKind = "general"
	KindRestrictions ResultKind = "restrictions"
)

// ============================================================================
// QUERYSPEC — Contract between Interpreter and Engine
// ============================================================================

// QuerySpec defines what the engine should compute.
// The interpreter produces this deterministically from the query text;
// the engine never sees the raw query.
type QuerySpec struct {
	Intent          Intent `json:"intent"`
	Project         string `json:"project"`         // canonical project name, "" = all projects
	ProjectNorm     string `json:"projectNorm"`     // normalized form used for filtering
	Role            string `json:"role"`            // canonical role sub-filter, "" = any
	RestrictionType string `json:"restrictionType"` // candidate restriction-type preselection
	NormalizedQuery string `json:"normalizedQuery"`
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// ErrorTitlePrefix marks empty-result titles. Frontends key off it.
const ErrorTitlePrefix = "Sin resultados: "

// AllRestrictionTypes is the sentinel preselection when no restriction-type
// phrase matched or the mapped type is absent from the filtered rows.
const AllRestrictionTypes = "Todas"

// Result is the engine's render-ready output. Created fresh per query; the
// engine holds no state between calls.
type Result struct {
	Title   string     `json:"title"`
	Kind    ResultKind `json:"kind"`
	Summary string     `json:"summary"`

	// Table and Chart are nil on empty-result and unrecognized paths.
	Table *TableData   `json:"table,omitempty"`
	Chart *ChartConfig `json:"chart,omitempty"`

	// Rows is the filtered raw row view backing Table. Nil when Table is nil.
	Rows RecordView `json:"-"`

	// Preselected is the restriction-type preselection. Empty unless
	// Kind == KindRestrictions.
	Preselected string `json:"preselected,omitempty"`
}

// IsEmpty reports whether the result is an empty-result variant.
func (r *Result) IsEmpty() bool {
	return r.Table == nil
}

// ============================================================================
// GROUP — Intermediate aggregation result
// ============================================================================

// Group represents one grouped/aggregated bucket.
// The chart builder converts these into a ChartConfig.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // rows in this group (zero-copy)
}

// ============================================================================
// AGGREGATE REQUEST — Abstract chart port input
// ============================================================================

// Aggregation names for AggregateRequest.
const (
	AggMean  = "mean"
	AggCount = "count"
)

// AggregateRequest describes a computed aggregate for the chart port.
// The engine emits this together with the groups; it never renders anything.
type AggregateRequest struct {
	GroupBy     string `json:"groupBy"`
	Value       string `json:"value"` // measure key, "" for count
	Aggregation string `json:"aggregation"`
	Title       string `json:"title"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
