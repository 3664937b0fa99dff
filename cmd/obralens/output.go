package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/obralens/obralens/engine"
)

// ============================================================================
// OUTPUT — render a Result as text, JSON, or spreadsheet-ready CSV
// ============================================================================

func render(result *engine.Result, format, outFile string) error {
	writer := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch format {
	case "csv":
		return writeCSV(writer, result)
	case "json":
		return writeJSON(writer, result, false)
	case "pretty":
		return writeJSON(writer, result, true)
	default:
		return writeText(writer, result)
	}
}

func writeText(w *os.File, result *engine.Result) error {
	fmt.Fprintln(w, result.Title)
	if result.Summary != "" && result.Summary != result.Title {
		fmt.Fprintln(w, result.Summary)
	}
	if result.Kind == engine.KindRestrictions && result.Preselected != "" {
		fmt.Fprintf(w, "Tipo preseleccionado: %s\n", result.Preselected)
	}

	if result.Table != nil {
		fmt.Fprintln(w)
		for _, col := range result.Table.Columns {
			fmt.Fprintf(w, "%s\t", col.Label)
		}
		fmt.Fprintln(w)
		for _, row := range result.Table.Rows {
			for _, cell := range row {
				fmt.Fprintf(w, "%s\t", cell)
			}
			fmt.Fprintln(w)
		}
		if result.Table.Summary != nil {
			fmt.Fprintln(w, result.Table.Summary.Label)
		}
	}
	return nil
}

func writeJSON(w *os.File, result *engine.Result, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// writeCSV emits chart data when present (ready for Sheets), falling back to
// the table, then to a single summary row.
func writeCSV(w *os.File, result *engine.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if result.Chart != nil && len(result.Chart.Series) > 0 {
		xLabel := result.Chart.XAxis
		if xLabel == "" {
			xLabel = "Etiqueta"
		}
		yLabel := result.Chart.YAxis
		if yLabel == "" {
			yLabel = "Valor"
		}
		cw.Write([]string{xLabel, yLabel})
		for _, p := range result.Chart.Series[0].Data {
			cw.Write([]string{p.Label, fmtNum(p.Value)})
		}
		return cw.Error()
	}

	if result.Table != nil {
		headers := make([]string, 0, len(result.Table.Columns))
		for _, col := range result.Table.Columns {
			headers = append(headers, col.Label)
		}
		cw.Write(headers)
		for _, row := range result.Table.Rows {
			cw.Write(row)
		}
		return cw.Error()
	}

	cw.Write([]string{"Resumen"})
	cw.Write([]string{result.Title})
	return cw.Error()
}

func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
