package engine

// ============================================================================
// CHART BUILDER — Optional visualization port
// ============================================================================
// The engine computes aggregate groups and hands them to this port together
// with the abstract request. When no builder is injected the Result's chart
// field stays nil and nothing else changes.
// ============================================================================

// ChartBuilder renders already-computed aggregate groups into a ChartConfig.
// Returning nil means "no chart" and is never an error.
type ChartBuilder interface {
	Build(req AggregateRequest, groups []Group) *ChartConfig
}

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// DefaultChartBuilder renders bar charts for mean aggregates and pie charts
// for count aggregates.
type DefaultChartBuilder struct{}

// NewChartBuilder returns the default ChartBuilder.
func NewChartBuilder() ChartBuilder {
	return DefaultChartBuilder{}
}

// Build produces a ChartConfig from an aggregate request and its groups.
func (DefaultChartBuilder) Build(req AggregateRequest, groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	chartType := "bar"
	yAxis := LabelForDimension(req.Value)
	if req.Aggregation == AggCount {
		chartType = "pie"
		yAxis = "Cantidad"
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: roundTo2(g.Value),
		})
	}

	return &ChartConfig{
		ChartType:  chartType,
		Title:      req.Title,
		XAxis:      LabelForDimension(req.GroupBy),
		YAxis:      yAxis,
		Series:     []ChartSeries{{Name: req.Title, Data: points}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
		ShowGrid:   chartType != "pie",
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

func roundTo2(v float64) float64 {
	if v < 0 {
		return -roundTo2(-v)
	}
	return float64(int64(v*100+0.5)) / 100
}
