package dataset

// ============================================================================
// DATASET SCHEMAS — The six construction-project collections
// ============================================================================
// Column classification is fixed per collection: known numeric columns are
// measures, everything else is a dimension. Unexpected columns pass through
// as extra dimensions; missing expected columns only disable the features
// that read them (e.g. no progress chart without etapa/avance).
// ============================================================================

// Name identifies one of the six collections.
type Name string

const (
	Progress        Name = "progress"
	Responsible     Name = "responsible"
	Restrictions    Name = "restrictions"
	Sustainability  Name = "sustainability"
	DesignProgress  Name = "design_progress"
	DesignInventory Name = "design_inventory"
)

// ProjectColumn is the original (as-entered) project column after header
// canonicalization. ProjectNormColumn is the derived matching column added
// at load time to every collection that carries ProjectColumn.
const (
	ProjectColumn     = "proyecto"
	ProjectNormColumn = "proyecto_norm"
)

// Schema describes one collection's column classification.
type Schema struct {
	Name     Name
	FileName string          // conventional CSV file name
	Measures map[string]bool // snake_case columns parsed as numbers
}

// Schemas returns the fixed schema set, in load order. The project index is
// built in this order, so normalized-name collisions resolve last-write-wins
// across it.
func Schemas() []Schema {
	return []Schema{
		{Progress, "avance.csv", cols("avance")},
		{Responsible, "responsables.csv", cols()},
		{Restrictions, "restricciones.csv", cols()},
		{Sustainability, "sostenibilidad.csv", cols("porcentaje_ahorro")},
		{DesignProgress, "avance_diseno.csv", cols("avance")},
		{DesignInventory, "inventario_diseno.csv", cols()},
	}
}

func cols(measures ...string) map[string]bool {
	m := make(map[string]bool, len(measures))
	for _, c := range measures {
		m[c] = true
	}
	return m
}
