// Package chart renders planning-board projections as standalone HTML
// documents, for sharing a board outside the terminal.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pcp360/internal/api"
)

// Series display names, in legend order.
const (
	seriesDemand        = "Demanda"
	seriesStockNatural  = "Estoque natural"
	seriesStockIA       = "Estoque pós-IA"
	seriesProdExisting  = "Produção existente"
	seriesProdSuggested = "Produção sugerida IA"
)

// WritePlanningBoard renders board's weekly series as a line chart and
// writes the complete HTML document to w.
func WritePlanningBoard(w io.Writer, board *api.PlanningBoard) error {
	if board == nil {
		return fmt.Errorf("chart: nil planning board")
	}
	s := board.Series
	if len(s.Labels) == 0 {
		return fmt.Errorf("chart: board for %s has no weekly series", board.Material)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Planejamento %s", board.Material),
			Subtitle: fmt.Sprintf("Horizonte de %d semanas", board.HorizonteSemanas),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "500px"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(s.Labels)
	line.AddSeries(seriesDemand, toLineData(s.Demanda))
	line.AddSeries(seriesStockNatural, toLineData(s.EstoqueNatural))
	line.AddSeries(seriesStockIA, toLineData(s.EstoquePosIA))
	line.AddSeries(seriesProdExisting, toLineData(s.ProducaoExistente))
	line.AddSeries(seriesProdSuggested, toLineData(s.ProducaoIA))
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}

func toLineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
