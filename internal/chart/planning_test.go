package chart

import (
	"bytes"
	"strings"
	"testing"

	"pcp360/internal/api"
)

func testBoard() *api.PlanningBoard {
	return &api.PlanningBoard{
		Material:         "4011835-AA",
		HorizonteSemanas: 4,
		Series: api.PlanningSeries{
			Labels:            []string{"S1", "S2", "S3", "S4"},
			Demanda:           []float64{120, 140, 100, 160},
			EstoqueNatural:    []float64{300, 160, 60, -100},
			EstoquePosIA:      []float64{300, 260, 220, 180},
			ProducaoExistente: []float64{0, 0, 0, 0},
			ProducaoIA:        []float64{0, 100, 60, 120},
		},
	}
}

func TestWritePlanningBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlanningBoard(&buf, testBoard()); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := buf.String()
	for _, want := range []string{
		"Planejamento 4011835-AA",
		"Horizonte de 4 semanas",
		seriesDemand,
		seriesStockNatural,
		seriesStockIA,
		seriesProdExisting,
		seriesProdSuggested,
		"S1",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered HTML missing %q", want)
		}
	}
}

func TestWritePlanningBoard_Invalid(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlanningBoard(&buf, nil); err == nil {
		t.Fatal("expected error for nil board")
	}
	board := testBoard()
	board.Series = api.PlanningSeries{}
	if err := WritePlanningBoard(&buf, board); err == nil {
		t.Fatal("expected error for empty series")
	}
}
