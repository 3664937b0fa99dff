package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Chart   ChartBuilder // nil = no charts, never an error
	Columns Columns
}

// Columns names the dataset columns the executor relies on. Loaders that
// rename columns can remap them here; a missing column only disables the
// feature that reads it.
type Columns struct {
	ProjectNorm     string // derived normalized-project dimension
	Stage           string // progress grouping dimension
	Percent         string // progress percentage measure
	Role            string // responsible-party role dimension
	RestrictionType string // restriction category dimension
}

// DefaultColumns returns the column mapping for the standard spreadsheets.
func DefaultColumns() Columns {
	return Columns{
		ProjectNorm:     "proyecto_norm",
		Stage:           "etapa",
		Percent:         "avance",
		Role:            "cargo",
		RestrictionType: "tipo_restriccion",
	}
}

// WithChartBuilder injects the visualization port. Without it every Result
// carries a nil chart.
func WithChartBuilder(cb ChartBuilder) Option {
	return func(c *config) {
		c.Chart = cb
	}
}

// WithColumns overrides the default column mapping.
func WithColumns(cols Columns) Option {
	return func(c *config) {
		c.Columns = cols
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Columns: DefaultColumns(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
