package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// AGGREGATORS — Grouping and Aggregation via RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to loaded rows.
// Grouping produces SubViews (index lists into parent view) in encounter
// order, so identical data always yields identical groups.
// ============================================================================

// GroupMean groups rows by a dimension and computes the mean of a measure
// per group. Used for the work-progress chart (mean percent by stage).
func GroupMean(view RecordView, groupBy, measure string) []Group {
	groups := groupByDimension(view, groupBy)
	for i := range groups {
		groups[i].Value = MeanMeasure(groups[i].View, measure)
	}
	return groups
}

// GroupCount groups rows by a dimension and counts rows per group.
// Used for the restrictions chart (row count by restriction type).
func GroupCount(view RecordView, groupBy string) []Group {
	groups := groupByDimension(view, groupBy)
	for i := range groups {
		groups[i].Value = float64(groups[i].Count)
	}
	return groups
}

func groupByDimension(view RecordView, dimension string) []Group {
	if view.Len() == 0 {
		return nil
	}

	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		key := view.Dimension(i, dimension)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			Count: len(grouped[key]),
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// ============================================================================
// MEASURE AGGREGATES
// ============================================================================

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// MeanMeasure computes the mean of a named measure.
func MeanMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	return SumMeasure(view, measure) / float64(n)
}

// UniqueValues returns distinct values for a dimension in encounter order.
func UniqueValues(view RecordView, dimension string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, dimension)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatPercent formats a 0–100 value as "82.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// LabelForDimension returns a display label for a dimension key.
// "tipo_restriccion" → "Tipo restriccion".
func LabelForDimension(dimension string) string {
	if len(dimension) == 0 {
		return ""
	}
	label := strings.ReplaceAll(dimension, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
