package api

// Response shapes of the SmartPlanning backend. Field names keep the
// backend's Portuguese JSON tags; the client treats every metric as an
// opaque value computed server-side.

// Health is the GET /health payload.
type Health struct {
	Status string `json:"status"`
}

// KPISummary groups the material and order KPIs on the overview panel.
type KPISummary struct {
	TotalMateriais       int     `json:"total_materiais"`
	MateriaisRisco       int     `json:"materiais_risco"`
	PercMateriaisRisco   float64 `json:"perc_materiais_risco"`
	MateriaisExcesso     int     `json:"materiais_excesso"`
	PercMateriaisExcesso float64 `json:"perc_materiais_excesso"`

	TotalOPs         int     `json:"total_ops"`
	OPsAtrasadas     int     `json:"ops_atrasadas"`
	PercOPsAtrasadas float64 `json:"perc_ops_atrasadas"`
}

// CriticalItem is one material on the overview's criticality list.
type CriticalItem struct {
	Material         string   `json:"material"`
	CoberturaDias    *float64 `json:"cobertura_dias"`
	CriticidadeScore *float64 `json:"criticidade_score,omitempty"`
}

// CriticalOrder is one late production order on the overview.
type CriticalOrder struct {
	Ordem            string   `json:"ordem"`
	Material         string   `json:"material,omitempty"`
	DataFim          string   `json:"data_fim"`
	Status           string   `json:"status"`
	CriticidadeScore *float64 `json:"criticidade_score,omitempty"`
}

// CapacitySummary is the capacity block embedded in the overview.
type CapacitySummary struct {
	TotalRecursos    int      `json:"total_recursos"`
	RecursosAbaixo90 int      `json:"recursos_abaixo_90"`
	Recursos90a100   int      `json:"recursos_90_100"`
	RecursosAcima100 int      `json:"recursos_acima_100"`
	UtilizacaoMedia  *float64 `json:"utilizacao_media"`
}

// CriticalResource is one overloaded work center on the overview.
type CriticalResource struct {
	Recurso          string   `json:"recurso"`
	Planta           string   `json:"planta,omitempty"`
	UtilizacaoPct    float64  `json:"utilizacao_pct"`
	CriticidadeScore *float64 `json:"criticidade_score,omitempty"`
}

// DashboardSummary is the GET /dashboard/summary payload.
type DashboardSummary struct {
	GeneratedAt      string             `json:"generated_at"`
	KPIs             KPISummary         `json:"kpis"`
	Criticos         []CriticalItem     `json:"criticos"`
	OrdensCriticas   []CriticalOrder    `json:"ordens_criticas"`
	Capacidade       *CapacitySummary   `json:"capacidade"`
	RecursosCriticos []CriticalResource `json:"recursos_criticos"`
}

// Insight is one business-language alert on the insights panel.
// Tipo is "material", "ordem", "recurso" or "sistema"; Severidade is
// "alto", "medio", "baixo" or "info".
type Insight struct {
	Tipo       string `json:"tipo"`
	Severidade string `json:"severidade"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	Sugestao   string `json:"sugestao"`
}

// InsightsResponse is the GET /dashboard/insights payload.
type InsightsResponse struct {
	GeneratedAt string    `json:"generated_at"`
	Insights    []Insight `json:"insights"`
}

// ResourceInsight is a per-work-center capacity classification.
type ResourceInsight struct {
	Recurso           string   `json:"recurso"`
	Planta            string   `json:"planta,omitempty"`
	UtilizacaoPct     float64  `json:"utilizacao_pct"`
	CriticidadeScore  *float64 `json:"criticidade_score,omitempty"`
	Categoria         string   `json:"categoria"`
	RecomendacaoCurta string   `json:"recomendacao_curta"`
}

// CapacityIA is the GET /dashboard/capacity/ia payload.
type CapacityIA struct {
	GeneratedAt string `json:"generated_at"`

	TotalRecursos   int      `json:"total_recursos"`
	UtilizacaoMedia *float64 `json:"utilizacao_media"`

	RecursosAbaixo90 int `json:"recursos_abaixo_90"`
	Recursos90a100   int `json:"recursos_90_100"`
	RecursosAcima100 int `json:"recursos_acima_100"`

	Insights            []ResourceInsight `json:"insights"`
	RecomendacoesGerais []string          `json:"recomendacoes_gerais"`
}

// PlanningSeries carries the weekly projection lines of the planning board.
// All slices share the same length as Labels.
type PlanningSeries struct {
	Labels            []string  `json:"labels"`
	Demanda           []float64 `json:"demanda"`
	EstoqueNatural    []float64 `json:"estoque_natural"`
	EstoquePosIA      []float64 `json:"estoque_pos_ia"`
	ProducaoExistente []float64 `json:"producao_existente"`
	ProducaoIA        []float64 `json:"producao_ia"`
}

// Recommendation is one planner-facing suggestion on the planning board.
type Recommendation struct {
	Titulo        string `json:"titulo"`
	Categoria     string `json:"categoria"`
	Severidade    string `json:"severidade"`
	Descricao     string `json:"descricao"`
	Justificativa string `json:"justificativa,omitempty"`
}

// PeggingOrder is one production order linked to a material. Material is
// present on /pegging/ia-lite orders and absent on the board's
// pegging_ordens.
type PeggingOrder struct {
	Ordem            string   `json:"ordem"`
	Material         string   `json:"material,omitempty"`
	DataFim          string   `json:"data_fim"`
	Status           string   `json:"status"`
	DiasAtraso       int      `json:"dias_atraso"`
	Quantidade       float64  `json:"quantidade,omitempty"`
	CriticidadeScore *float64 `json:"criticidade_score,omitempty"`
}

// PlanningBoard is the GET /planning/board/{material} payload.
type PlanningBoard struct {
	Material           string           `json:"material"`
	CoberturaAtualDias *float64         `json:"cobertura_atual_dias"`
	CriticidadeIA      *float64         `json:"criticidade_ia"`
	RupturasPrevistas  int              `json:"rupturas_previstas"`
	HorizonteSemanas   int              `json:"horizonte_semanas"`
	Series             PlanningSeries   `json:"series"`
	Recomendacoes      []Recommendation `json:"recomendacoes"`
	PeggingOrdens      []PeggingOrder   `json:"pegging_ordens"`
}

// PeggingLite is the GET /pegging/ia-lite payload. SemOrdens marks the
// variant where the material has no linked orders at all.
type PeggingLite struct {
	Material              string         `json:"material"`
	Descricao             string         `json:"descricao,omitempty"`
	CoberturaAtualDias    *float64       `json:"cobertura_atual_dias"`
	TotalOrdensVinculadas int            `json:"total_ordens_vinculadas"`
	OrdensAtrasadas       int            `json:"ordens_atrasadas"`
	MaiorAtrasoDias       int            `json:"maior_atraso_dias"`
	Ordens                []PeggingOrder `json:"ordens"`
	SemOrdens             bool           `json:"sem_ordens,omitempty"`
}
