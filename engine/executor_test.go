package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// FIXTURES
// ============================================================================

func progressRow(project, stage string, percent float64) Record {
	return Record{
		Dimensions: map[string]string{
			"proyecto":      project,
			"proyecto_norm": strings.ToLower(project),
			"etapa":         stage,
		},
		Measures: map[string]float64{"avance": percent},
	}
}

func testProgress() RecordView {
	return NewSliceView([]Record{
		progressRow("Burdeos", "Cimentación", 80),
		progressRow("Burdeos", "Estructura", 60),
		progressRow("Burdeos", "Estructura", 70),
		progressRow("Altos del Mar", "Cimentación", 90),
	})
}

func restrictionRow(project, tipo string) Record {
	return Record{
		Dimensions: map[string]string{
			"proyecto":         project,
			"proyecto_norm":    strings.ToLower(project),
			"tipo_restriccion": tipo,
			"estado":           "Abierta",
		},
		Measures: map[string]float64{},
	}
}

func testRestrictions() RecordView {
	return NewSliceView([]Record{
		restrictionRow("Burdeos", "Materiales"),
		restrictionRow("Burdeos", "Materiales"),
		restrictionRow("Burdeos", "Clima"),
		restrictionRow("Altos del Mar", "Equipos"),
	})
}

func responsibleRow(project, name, role string) Record {
	return Record{
		Dimensions: map[string]string{
			"proyecto":      project,
			"proyecto_norm": strings.ToLower(project),
			"nombre":        name,
			"cargo":         role,
		},
		Measures: map[string]float64{},
	}
}

func testResponsible() RecordView {
	return NewSliceView([]Record{
		responsibleRow("Burdeos", "Ana Díaz", "Residente"),
		responsibleRow("Burdeos", "Luis Parra", "SISO"),
		responsibleRow("Altos del Mar", "Marta Gil", "Residente"),
	})
}

func testSources() Sources {
	return Sources{
		Progress:     testProgress(),
		Responsible:  testResponsible(),
		Restrictions: testRestrictions(),
	}
}

func burdeosSpec(intent Intent) QuerySpec {
	return QuerySpec{
		Intent:      intent,
		Project:     "Burdeos",
		ProjectNorm: "burdeos",
	}
}

// ============================================================================
// WORK PROGRESS
// ============================================================================

func TestExecuteWorkProgress(t *testing.T) {
	result := Execute(burdeosSpec(IntentWorkProgress), testSources(),
		WithChartBuilder(NewChartBuilder()))

	assert.Equal(t, "Avance de obra — Burdeos", result.Title)
	assert.Equal(t, KindGeneral, result.Kind)
	require.NotNil(t, result.Table)
	assert.Len(t, result.Table.Rows, 3)
	assert.Equal(t, 3, result.Rows.Len())

	require.NotNil(t, result.Chart)
	assert.Equal(t, "bar", result.Chart.ChartType)
	require.Len(t, result.Chart.Series, 1)
	points := result.Chart.Series[0].Data
	require.Len(t, points, 2)
	assert.Equal(t, "Cimentación", points[0].Label)
	assert.Equal(t, 80.0, points[0].Value)
	assert.Equal(t, "Estructura", points[1].Label)
	assert.Equal(t, 65.0, points[1].Value) // mean of 60 and 70
}

func TestExecuteWorkProgressAllProjects(t *testing.T) {
	spec := QuerySpec{Intent: IntentWorkProgress}
	result := Execute(spec, testSources())

	assert.Equal(t, "Avance de obra — todos los proyectos", result.Title)
	require.NotNil(t, result.Table)
	assert.Len(t, result.Table.Rows, 4)
}

func TestExecuteWorkProgressEmpty(t *testing.T) {
	spec := QuerySpec{
		Intent:      IntentWorkProgress,
		Project:     "ProyectoInexistente",
		ProjectNorm: "proyectoinexistente",
	}
	result := Execute(spec, testSources(), WithChartBuilder(NewChartBuilder()))

	assert.True(t, strings.HasPrefix(result.Title, ErrorTitlePrefix))
	assert.Equal(t, KindGeneral, result.Kind)
	assert.Nil(t, result.Table)
	assert.Nil(t, result.Chart)
	assert.True(t, result.IsEmpty())
}

func TestExecuteWorkProgressNoChartBuilder(t *testing.T) {
	result := Execute(burdeosSpec(IntentWorkProgress), testSources())

	require.NotNil(t, result.Table)
	assert.Nil(t, result.Chart, "no injected builder means no chart, never an error")
}

func TestExecuteWorkProgressMissingPercentColumn(t *testing.T) {
	// A progress sheet without the percent column loses the chart but keeps
	// the table.
	src := testSources()
	src.Progress = NewSliceView([]Record{
		{Dimensions: map[string]string{
			"proyecto": "Burdeos", "proyecto_norm": "burdeos", "etapa": "Acabados",
		}},
	})

	result := Execute(burdeosSpec(IntentWorkProgress), src, WithChartBuilder(NewChartBuilder()))
	require.NotNil(t, result.Table)
	assert.Nil(t, result.Chart)
}

func TestExecuteNilDatasetBehavesAsEmpty(t *testing.T) {
	result := Execute(burdeosSpec(IntentWorkProgress), Sources{})
	assert.True(t, strings.HasPrefix(result.Title, ErrorTitlePrefix))
	assert.Nil(t, result.Table)
}

// ============================================================================
// RESPONSIBLE
// ============================================================================

func TestExecuteResponsibleWithRole(t *testing.T) {
	spec := burdeosSpec(IntentResponsible)
	spec.Role = "Residente"
	result := Execute(spec, testSources())

	assert.Equal(t, "Responsables (Residente) — Burdeos", result.Title)
	require.NotNil(t, result.Table)
	assert.Len(t, result.Table.Rows, 1)
	assert.Equal(t, 1, result.Rows.Len())
	assert.Equal(t, "Ana Díaz", result.Rows.Dimension(0, "nombre"))
}

func TestExecuteResponsibleNoRole(t *testing.T) {
	result := Execute(burdeosSpec(IntentResponsible), testSources())

	assert.Equal(t, "Responsables — Burdeos", result.Title)
	require.NotNil(t, result.Table)
	assert.Len(t, result.Table.Rows, 2)
}

func TestExecuteResponsibleEmptyNamesRole(t *testing.T) {
	spec := burdeosSpec(IntentResponsible)
	spec.Role = "Almacenista"
	result := Execute(spec, testSources())

	assert.True(t, strings.HasPrefix(result.Title, ErrorTitlePrefix))
	assert.Contains(t, result.Title, "Almacenista")
	assert.Nil(t, result.Table)
}

func TestExecuteResponsibleEmptyAnyRole(t *testing.T) {
	spec := QuerySpec{
		Intent:      IntentResponsible,
		Project:     "Fantasma",
		ProjectNorm: "fantasma",
	}
	result := Execute(spec, testSources())

	assert.True(t, strings.HasPrefix(result.Title, ErrorTitlePrefix))
	assert.Contains(t, result.Title, "cualquier cargo")
}

// ============================================================================
// RESTRICTIONS
// ============================================================================

func TestExecuteRestrictionsPreselection(t *testing.T) {
	spec := burdeosSpec(IntentRestrictions)
	spec.RestrictionType = "Materiales"
	result := Execute(spec, testSources(), WithChartBuilder(NewChartBuilder()))

	assert.Equal(t, KindRestrictions, result.Kind)
	assert.Equal(t, "Materiales", result.Preselected)

	// The table keeps every Burdeos restriction, not just Materiales.
	require.NotNil(t, result.Table)
	assert.Len(t, result.Table.Rows, 3)

	// The chart groups the whole project-filtered set.
	require.NotNil(t, result.Chart)
	assert.Equal(t, "pie", result.Chart.ChartType)
	points := result.Chart.Series[0].Data
	require.Len(t, points, 2)
	assert.Equal(t, "Materiales", points[0].Label)
	assert.Equal(t, 2.0, points[0].Value)
	assert.Equal(t, "Clima", points[1].Label)
	assert.Equal(t, 1.0, points[1].Value)
}

func TestExecuteRestrictionsCandidateAbsentFromRows(t *testing.T) {
	// "Equipos" exists only for Altos del Mar, so the Burdeos preselection
	// falls back to the sentinel.
	spec := burdeosSpec(IntentRestrictions)
	spec.RestrictionType = "Equipos"
	result := Execute(spec, testSources())

	assert.Equal(t, AllRestrictionTypes, result.Preselected)
}

func TestExecuteRestrictionsNoCandidate(t *testing.T) {
	result := Execute(burdeosSpec(IntentRestrictions), testSources())
	assert.Equal(t, AllRestrictionTypes, result.Preselected)
}

func TestExecuteRestrictionsEmptyIsGeneralKind(t *testing.T) {
	spec := QuerySpec{
		Intent:      IntentRestrictions,
		Project:     "Fantasma",
		ProjectNorm: "fantasma",
	}
	result := Execute(spec, testSources())

	assert.True(t, strings.HasPrefix(result.Title, ErrorTitlePrefix))
	assert.Equal(t, KindGeneral, result.Kind)
	assert.Empty(t, result.Preselected)
}

// ============================================================================
// LISTINGS AND FALLBACK
// ============================================================================

func TestExecuteListings(t *testing.T) {
	src := Sources{
		Sustainability: NewSliceView([]Record{{
			Dimensions: map[string]string{
				"proyecto": "Burdeos", "proyecto_norm": "burdeos",
				"certificacion": "EDGE", "estado": "En curso",
			},
		}}),
		DesignProgress: NewSliceView([]Record{{
			Dimensions: map[string]string{
				"proyecto": "Burdeos", "proyecto_norm": "burdeos",
				"entregable": "Planos estructurales", "estado": "Aprobado",
			},
		}}),
	}

	result := Execute(burdeosSpec(IntentSustainability), src)
	assert.Equal(t, "Sostenibilidad — Burdeos", result.Title)
	require.NotNil(t, result.Table)
	assert.Nil(t, result.Chart)

	result = Execute(burdeosSpec(IntentDesignProgress), src)
	assert.Equal(t, "Avance de diseño — Burdeos", result.Title)
	require.NotNil(t, result.Table)

	result = Execute(burdeosSpec(IntentDesignInventory), src)
	assert.True(t, strings.HasPrefix(result.Title, ErrorTitlePrefix))
}

func TestExecuteUnrecognized(t *testing.T) {
	result := Execute(QuerySpec{Intent: IntentUnrecognized}, testSources())

	assert.Equal(t, HelpMessage, result.Title)
	assert.Equal(t, KindGeneral, result.Kind)
	assert.Nil(t, result.Table)
	assert.Nil(t, result.Chart)
}

func TestExecuteIdempotent(t *testing.T) {
	spec := burdeosSpec(IntentWorkProgress)
	src := testSources()

	first := Execute(spec, src, WithChartBuilder(NewChartBuilder()))
	second := Execute(spec, src, WithChartBuilder(NewChartBuilder()))

	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Table, second.Table)
	assert.Equal(t, first.Chart, second.Chart)
}

func TestExecuteTableHidesDerivedColumn(t *testing.T) {
	result := Execute(burdeosSpec(IntentWorkProgress), testSources())

	require.NotNil(t, result.Table)
	for _, col := range result.Table.Columns {
		assert.NotEqual(t, "proyecto_norm", col.Key)
	}
}
