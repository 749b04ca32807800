package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"pcp360/internal/api"
	"pcp360/internal/panel"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Carregando…"
	}

	header := m.renderHeader()
	tabs := m.renderTabs()

	bodyH := m.height - 4
	if bodyH < 3 {
		bodyH = 3
	}

	var body string
	switch m.mode {
	case modeOverview:
		body = m.renderOverviewView()
	case modeInsights:
		body = m.renderInsightsView()
	case modeCapacity:
		body = m.renderCapacityView()
	case modeBoard:
		body = m.renderBoardView()
	case modePegging:
		body = m.renderPeggingView()
	}
	body = panelStyle().Width(m.width).Height(bodyH).Render(body)

	footer := metaStyle().Render(m.help.View(m.keysForMode()))
	return lipgloss.JoinVertical(lipgloss.Left, header, tabs, body, footer)
}

func (m Model) renderHeader() string {
	left := titleStyle().Render("PCP 360")
	right := metaStyle().Render(m.client.BaseURL)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

var tabTitles = []string{"1 visão geral", "2 insights", "3 capacidade", "4 planejamento", "5 pegging"}

func (m Model) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if viewMode(i) == m.mode {
			parts[i] = lipgloss.NewStyle().Bold(true).Foreground(pcpAccent).Render(t)
		} else {
			parts[i] = metaStyle().Render(t)
		}
	}
	return strings.Join(parts, metaStyle().Render(" · "))
}

// phaseNotice renders the non-success phases every panel shares. ok=false
// means the panel is in Success/Empty and the caller renders the payload.
func (m Model) phaseNotice(ph panel.Phase, msg string) (string, bool) {
	switch ph {
	case panel.Idle:
		return metaStyle().Render("Ainda não carregado."), true
	case panel.Loading:
		return m.spin.View() + " " + metaStyle().Render("carregando…"), true
	case panel.Error:
		return dangerStyle().Render("ERRO: " + msg), true
	}
	return "", false
}

// --- Overview ----------------------------------------------------------------

func (m Model) renderOverviewView() string {
	title := titleStyle().Render("Visão geral")
	hint := metaStyle().Render("r atualizar · 1-5 painéis · q sair")
	st := m.overview.State()
	if notice, ok := m.phaseNotice(st.Phase, st.Message); ok {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "", notice)
	}
	if st.Phase == panel.Empty {
		// KPIs still render; only the critical lists are absent.
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint,
			metaStyle().Render("Sem itens críticos no momento."), m.detail.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, m.detail.View())
}

func renderOverviewDetail(s *api.DashboardSummary, width int) string {
	if s == nil {
		return ""
	}
	k := s.KPIs
	lines := []string{
		metaStyle().Render("gerado " + s.GeneratedAt),
		"",
		titleStyle().Render("Materiais"),
		fmt.Sprintf("total %d · risco %d (%.1f%%) · excesso %d (%.1f%%)",
			k.TotalMateriais, k.MateriaisRisco, k.PercMateriaisRisco,
			k.MateriaisExcesso, k.PercMateriaisExcesso),
		"",
		titleStyle().Render("Ordens de produção"),
		fmt.Sprintf("total %d · atrasadas %d (%.1f%%)", k.TotalOPs, k.OPsAtrasadas, k.PercOPsAtrasadas),
	}

	if c := s.Capacidade; c != nil {
		lines = append(lines, "",
			titleStyle().Render("Capacidade"),
			fmt.Sprintf("recursos %d · <90%% %d · 90-100%% %d · >100%% %d · média %s%%",
				c.TotalRecursos, c.RecursosAbaixo90, c.Recursos90a100, c.RecursosAcima100,
				fmtFloat(c.UtilizacaoMedia)),
		)
	}

	if len(s.Criticos) > 0 {
		lines = append(lines, "", titleStyle().Render("Materiais críticos"))
		for _, it := range topCriticalItems(s.Criticos, 10) {
			lines = append(lines, fmt.Sprintf("  %-18s cobertura %s dias · score %s",
				truncateRunes(it.Material, 18), fmtFloat(it.CoberturaDias), fmtFloat(it.CriticidadeScore)))
		}
	}

	if len(s.OrdensCriticas) > 0 {
		lines = append(lines, "", titleStyle().Render("Ordens críticas"))
		for _, o := range s.OrdensCriticas {
			lines = append(lines, fmt.Sprintf("  %-12s %-10s fim %s", o.Ordem, o.Status, o.DataFim))
		}
	}

	if len(s.RecursosCriticos) > 0 {
		lines = append(lines, "", titleStyle().Render("Recursos sobrecarregados"))
		for _, r := range s.RecursosCriticos {
			bar := sparkLine(20, r.UtilizacaoPct, 150)
			lines = append(lines, fmt.Sprintf("  %-14s %s %.0f%%", truncateRunes(r.Recurso, 14), bar, r.UtilizacaoPct))
		}
	}

	for i := range lines {
		lines[i] = truncateRunes(lines[i], maxInt(10, width))
	}
	return strings.Join(lines, "\n")
}

func topCriticalItems(items []api.CriticalItem, n int) []api.CriticalItem {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// --- Insights ----------------------------------------------------------------

func (m Model) renderInsightsView() string {
	title := titleStyle().Render("Insights")
	hint := metaStyle().Render("r atualizar · ↑/↓ navegar")
	st := m.insights.State()
	if notice, ok := m.phaseNotice(st.Phase, st.Message); ok {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "", notice)
	}
	if st.Phase == panel.Empty {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "",
			metaStyle().Render("Nenhum insight no momento."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, m.insightsTable.View())
}

func (m *Model) refreshInsights(st panel.State[*api.InsightsResponse]) {
	if st.Phase != panel.Success || st.Payload == nil {
		m.insightsTable.SetRows(nil)
		return
	}
	cols := m.insightsTable.Columns()
	rows := make([]table.Row, 0, len(st.Payload.Insights))
	for _, in := range st.Payload.Insights {
		rows = append(rows, rowForColumns(cols, map[string]string{
			"sev":      in.Severidade,
			"tipo":     in.Tipo,
			"título":   in.Titulo,
			"sugestão": in.Sugestao,
		}))
	}
	m.insightsTable.SetRows(rows)
}

// --- Capacity ----------------------------------------------------------------

func (m Model) renderCapacityView() string {
	title := titleStyle().Render("Capacidade")
	st := m.capacity.State()
	sub := ""
	if st.Phase == panel.Success && st.Payload != nil {
		p := st.Payload
		sub = fmt.Sprintf("recursos %d · média %s%% · <90%% %d · 90-100%% %d · >100%% %d",
			p.TotalRecursos, fmtFloat(p.UtilizacaoMedia),
			p.RecursosAbaixo90, p.Recursos90a100, p.RecursosAcima100)
	}
	hint := metaStyle().Render("r atualizar · ↑/↓ navegar")
	if sub != "" {
		hint = metaStyle().Render(sub)
	}
	if notice, ok := m.phaseNotice(st.Phase, st.Message); ok {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "", notice)
	}
	if st.Phase == panel.Empty {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "",
			metaStyle().Render("Nenhum recurso analisado."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, m.capacityTable.View())
}

func (m *Model) refreshCapacity(st panel.State[*api.CapacityIA]) {
	if st.Phase != panel.Success || st.Payload == nil {
		m.capacityTable.SetRows(nil)
		return
	}
	cols := m.capacityTable.Columns()
	rows := make([]table.Row, 0, len(st.Payload.Insights))
	for _, r := range st.Payload.Insights {
		planta := r.Planta
		if planta == "" {
			planta = "-"
		}
		rows = append(rows, rowForColumns(cols, map[string]string{
			"recurso":      r.Recurso,
			"planta":       planta,
			"util":         fmt.Sprintf("%.1f%%", r.UtilizacaoPct),
			"categoria":    r.Categoria,
			"recomendação": r.RecomendacaoCurta,
		}))
	}
	m.capacityTable.SetRows(rows)
}

// --- Planning board ----------------------------------------------------------

func (m Model) renderBoardView() string {
	title := titleStyle().Render("Planejamento")
	hint := m.materialLine()
	st := m.board.State()
	if notice, ok := m.phaseNotice(st.Phase, st.Message); ok {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "", notice)
	}
	if st.Phase == panel.Empty {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "",
			metaStyle().Render("Sem séries para este material."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, m.detail.View())
}

func renderBoardDetail(b *api.PlanningBoard, width int) string {
	if b == nil {
		return ""
	}
	lines := []string{
		titleStyle().Render(b.Material),
		metaStyle().Render(fmt.Sprintf("cobertura %s dias · criticidade %s · rupturas %d · horizonte %d semanas",
			fmtFloat(b.CoberturaAtualDias), fmtFloat(b.CriticidadeIA), b.RupturasPrevistas, b.HorizonteSemanas)),
		"",
		titleStyle().Render("Séries semanais"),
	}

	s := b.Series
	max := seriesMax(s)
	barW := minInt(32, maxInt(10, width-42))
	for _, line := range []struct {
		name   string
		values []float64
	}{
		{"demanda", s.Demanda},
		{"estoque natural", s.EstoqueNatural},
		{"estoque pós-IA", s.EstoquePosIA},
		{"produção exist.", s.ProducaoExistente},
		{"produção IA", s.ProducaoIA},
	} {
		lines = append(lines, fmt.Sprintf("  %-16s %s %s", line.name,
			sparkLine(barW, sumFloats(line.values), max), fmtTotal(line.values)))
	}

	if len(b.Recomendacoes) > 0 {
		lines = append(lines, "", titleStyle().Render("Recomendações"))
		for _, r := range b.Recomendacoes {
			sev := severityStyle(r.Severidade).Render("[" + r.Severidade + "]")
			lines = append(lines, fmt.Sprintf("  %s %s", sev, r.Titulo))
			if r.Descricao != "" {
				lines = append(lines, metaStyle().Render("     "+r.Descricao))
			}
		}
	}

	if len(b.PeggingOrdens) > 0 {
		lines = append(lines, "", titleStyle().Render("Ordens vinculadas"))
		for _, o := range b.PeggingOrdens {
			lines = append(lines, fmt.Sprintf("  %-12s %-10s fim %s · atraso %dd", o.Ordem, o.Status, o.DataFim, o.DiasAtraso))
		}
	}

	for i := range lines {
		lines[i] = truncateRunes(lines[i], maxInt(10, width))
	}
	return strings.Join(lines, "\n")
}

// seriesMax returns the largest total across all weekly series, for scaling
// the bars against each other.
func seriesMax(s api.PlanningSeries) float64 {
	max := 1.0
	for _, vs := range [][]float64{s.Demanda, s.EstoqueNatural, s.EstoquePosIA, s.ProducaoExistente, s.ProducaoIA} {
		if t := sumFloats(vs); t > max {
			max = t
		}
	}
	return max
}

func sumFloats(vs []float64) float64 {
	t := 0.0
	for _, v := range vs {
		if v > 0 {
			t += v
		}
	}
	return t
}

func fmtTotal(vs []float64) string {
	return fmt.Sprintf("%.0f", sumFloats(vs))
}

// --- Pegging -----------------------------------------------------------------

func (m Model) renderPeggingView() string {
	title := titleStyle().Render("Pegging")
	st := m.pegging.State()
	if st.Demo {
		title += " " + demoStyle().Render("[DEMO]")
	}
	hint := m.materialLine()
	if notice, ok := m.phaseNotice(st.Phase, st.Message); ok {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "", notice)
	}
	if st.Phase == panel.Empty {
		return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, "",
			metaStyle().Render("Nenhuma ordem vinculada a este material."))
	}
	sub := ""
	if p := st.Payload; p != nil {
		desc := p.Descricao
		if desc == "" {
			desc = p.Material
		}
		sub = metaStyle().Render(fmt.Sprintf("%s · cobertura %s dias · %d ordens · %d atrasadas · maior atraso %dd",
			truncateRunes(desc, 40), fmtFloat(p.CoberturaAtualDias),
			p.TotalOrdensVinculadas, p.OrdensAtrasadas, p.MaiorAtrasoDias))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, rule(m.width), hint, sub, m.peggingTable.View())
}

func (m *Model) refreshPegging(st panel.State[*api.PeggingLite]) {
	if (st.Phase != panel.Success && st.Phase != panel.Empty) || st.Payload == nil {
		m.peggingTable.SetRows(nil)
		return
	}
	cols := m.peggingTable.Columns()
	rows := make([]table.Row, 0, len(st.Payload.Ordens))
	for _, o := range st.Payload.Ordens {
		rows = append(rows, rowForColumns(cols, map[string]string{
			"ordem":  o.Ordem,
			"fim":    o.DataFim,
			"status": o.Status,
			"atraso": fmt.Sprintf("%dd", o.DiasAtraso),
			"qtd":    fmt.Sprintf("%.0f", o.Quantidade),
			"score":  fmtFloat(o.CriticidadeScore),
		}))
	}
	m.peggingTable.SetRows(rows)
}

func (m Model) materialLine() string {
	label := metaStyle().Render("material ")
	if m.editing {
		return label + m.material.View()
	}
	return label + titleStyle().Render(m.material.Value()) +
		metaStyle().Render("   e editar · enter buscar · r atualizar")
}

// --- Refresh plumbing ----------------------------------------------------------

// refreshAll rebuilds rows and detail content after a resize, since columns
// depend on the width.
func (m *Model) refreshAll() {
	m.refreshInsights(m.insights.State())
	m.refreshCapacity(m.capacity.State())
	m.refreshPegging(m.pegging.State())
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	switch m.mode {
	case modeOverview:
		m.detail.SetContent(renderOverviewDetail(m.overview.State().Payload, m.detail.Width))
	case modeBoard:
		m.detail.SetContent(renderBoardDetail(m.board.State().Payload, m.detail.Width))
	}
}

// --- Columns -------------------------------------------------------------------

func insightsColumns(total int) []table.Column {
	// sev | tipo | título | sugestão — drop sugestão on narrow terminals.
	if total < 10 {
		total = 10
	}
	const padPerCol = 2
	sevW, tipoW := 6, 8
	sugW := 0
	n := 3
	if total >= 110 {
		sugW = 44
		n = 4
	}
	usable := total - padPerCol*n
	titleW := usable - sevW - tipoW - sugW
	if titleW < 20 {
		sugW = 0
		usable = total - padPerCol*3
		titleW = usable - sevW - tipoW
	}
	cols := []table.Column{
		{Title: "sev", Width: sevW},
		{Title: "tipo", Width: tipoW},
		{Title: "título", Width: maxInt(16, titleW)},
	}
	if sugW > 0 {
		cols = append(cols, table.Column{Title: "sugestão", Width: sugW})
	}
	return cols
}

func capacityColumns(total int) []table.Column {
	// recurso | planta | util | categoria | recomendação
	if total < 10 {
		total = 10
	}
	const padPerCol = 2
	recursoW, plantaW, utilW, catW := 14, 8, 8, 12
	n := 5
	usable := total - padPerCol*n
	recW := usable - recursoW - plantaW - utilW - catW
	if recW < 16 {
		n = 4
		usable = total - padPerCol*n
		recW = 0
		recursoW = maxInt(14, usable-plantaW-utilW-catW)
	}
	cols := []table.Column{
		{Title: "recurso", Width: recursoW},
		{Title: "planta", Width: plantaW},
		{Title: "util", Width: utilW},
		{Title: "categoria", Width: catW},
	}
	if recW > 0 {
		cols = append(cols, table.Column{Title: "recomendação", Width: recW})
	}
	return cols
}

func peggingColumns(total int) []table.Column {
	// ordem | fim | status | atraso | qtd | score
	if total < 10 {
		total = 10
	}
	ordemW, fimW, statusW, atrasoW, qtdW, scoreW := 12, 12, 12, 8, 10, 8
	if total < 70 {
		qtdW, scoreW = 0, 0
	}
	cols := []table.Column{
		{Title: "ordem", Width: ordemW},
		{Title: "fim", Width: fimW},
		{Title: "status", Width: statusW},
		{Title: "atraso", Width: atrasoW},
	}
	if qtdW > 0 {
		cols = append(cols, table.Column{Title: "qtd", Width: qtdW})
	}
	if scoreW > 0 {
		cols = append(cols, table.Column{Title: "score", Width: scoreW})
	}
	return cols
}

// --- Styling / helpers -----------------------------------------------------------

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder()).
		Padding(0, 1).
		AlignVertical(lipgloss.Top).
		Align(lipgloss.Left)
}

func minimalTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().Foreground(pcpMuted).Faint(true).Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	s.Selected = lipgloss.NewStyle().Bold(true).Underline(true)
	return s
}

func rowForColumns(cols []table.Column, values map[string]string) table.Row {
	r := make(table.Row, len(cols))
	for i, c := range cols {
		if v, ok := values[c.Title]; ok {
			r[i] = v
		} else {
			r[i] = ""
		}
	}
	return r
}

// safeSetColumns clears rows before changing the schema; bubbles/table
// panics when existing rows have more cells than the new columns.
func safeSetColumns(t *table.Model, cols []table.Column) {
	n := len(cols)
	rows := t.Rows()

	t.SetRows(nil)
	t.SetColumns(cols)

	if n <= 0 || len(rows) == 0 {
		return
	}
	fixed := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		if len(r) > n {
			fixed = append(fixed, r[:n])
			continue
		}
		if len(r) < n {
			p := make(table.Row, n)
			copy(p, r)
			fixed = append(fixed, p)
			continue
		}
		fixed = append(fixed, r)
	}
	t.SetRows(fixed)
}

func rule(width int) string {
	if width <= 0 {
		width = 10
	}
	return metaStyle().Render(strings.Repeat("-", width))
}

func sparkLine(width int, value, max float64) string {
	if max <= 0 {
		max = 1
	}
	if value < 0 {
		value = 0
	}
	if width < 3 {
		width = 3
	}
	filled := int(float64(width) * value / max)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("=", filled) + strings.Repeat(".", width-filled)
}

func fmtFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *f)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
