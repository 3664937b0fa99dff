package engine

import (
	"fmt"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a filtered view
// ============================================================================
// One row per record. Column discovery uses the view's registered keys;
// internal derived dimensions are excluded from display.
// ============================================================================

// BuildTable produces a render-ready TableData from a filtered view.
// Dimensions listed in hide are omitted (the derived normalized-project
// column is bookkeeping, not content).
func BuildTable(title string, view RecordView, hide ...string) *TableData {
	hidden := make(map[string]bool, len(hide))
	for _, h := range hide {
		hidden[h] = true
	}

	dimKeys := make([]string, 0, len(view.DimensionKeys()))
	for _, key := range view.DimensionKeys() {
		if !hidden[key] {
			dimKeys = append(dimKeys, key)
		}
	}
	mesKeys := view.MeasureKeys()

	columns := make([]Column, 0, len(dimKeys)+len(mesKeys))
	for _, key := range dimKeys {
		columns = append(columns, Column{
			Key:   key,
			Label: LabelForDimension(key),
			Type:  "text",
			Align: "left",
		})
	}
	for _, key := range mesKeys {
		columns = append(columns, Column{
			Key:   key,
			Label: LabelForDimension(key),
			Type:  "number",
			Align: "right",
		})
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := make([]string, 0, len(columns))
		for _, key := range dimKeys {
			row = append(row, view.Dimension(i, key))
		}
		for _, key := range mesKeys {
			row = append(row, fmt.Sprintf("%.2f", view.Measure(i, key)))
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("%s registros", FormatInt(view.Len())),
		},
	}
}
