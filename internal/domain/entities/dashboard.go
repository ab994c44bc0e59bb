package entities

// RiskFactor é o score 0-100 de uma dimensão, recalculado a cada requisição
type RiskFactor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RiskClassification é o selo de risco global exibido no topo do dashboard
type RiskClassification struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// DistributionSlice é a fatia percentual de um nível Likert dentro de uma dimensão
type DistributionSlice struct {
	Label      string  `json:"label"`
	Sigla      string  `json:"sigla"`
	Cor        string  `json:"cor"`
	Percentage float64 `json:"percentage"`
}

// SectorRisk compõe o comparativo ilustrativo de risco por setor
type SectorRisk struct {
	Setor string  `json:"setor"`
	Irp   float64 `json:"irp"`
}

// TrendPoint é um ponto de série temporal exibida nos gráficos de tendência
type TrendPoint struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}

// ROIScenario descreve um cenário ilustrativo de retorno sobre investimento
type ROIScenario struct {
	Nome         string  `json:"nome"`
	Investimento float64 `json:"investimento"`
	Retorno      float64 `json:"retorno"`
	PrazoMeses   int     `json:"prazoMeses"`
}

// LeaveEvent é um evento ilustrativo de afastamento
type LeaveEvent struct {
	Tipo    string `json:"tipo"`
	Mes     string `json:"mes"`
	DiasOff int    `json:"diasOff"`
}

// CrossSlice é uma linha do cruzamento IRP × atributo de segmentação
type CrossSlice struct {
	Grupo string  `json:"grupo"`
	Irp   float64 `json:"irp"`
}

// CrossAnalysis agrupa os cruzamentos ilustrativos exibidos na aba de análise
type CrossAnalysis struct {
	PorGenero     []CrossSlice `json:"porGenero"`
	PorNivelCargo []CrossSlice `json:"porNivelCargo"`
	PorArea       []CrossSlice `json:"porArea"`
}

// DashboardPayload é a resposta consolidada do dashboard de riscos
// psicossociais. Todo o conteúdo é derivado e recalculado por requisição;
// nada aqui é persistido ou cacheado.
type DashboardPayload struct {
	RiskFactors        []RiskFactor       `json:"riskFactors"`
	GeralScore         float64            `json:"geralScore"`
	IrpGlobal          float64            `json:"irpGlobal"`
	RiskClassification RiskClassification `json:"riskClassification"`

	ParticipationRate float64 `json:"participationRate"`
	ResponseCount     int     `json:"responseCount"`
	TotalEmployees    int     `json:"totalEmployees"`

	TopRisks       []RiskFactor `json:"topRisks"`
	TopProtections []RiskFactor `json:"topProtections"`

	MaturityLevel         MaturityLevel                  `json:"maturityLevel"`
	CompanyAverageFactors []RiskFactor                   `json:"companyAverageFactors"`
	Distributions         map[string][]DistributionSlice `json:"distributions"`

	WorkLifeBalanceScore float64 `json:"workLifeBalanceScore"`

	// Campos derivados ou ilustrativos para compatibilidade de payload
	SectorRiskDistribution []SectorRisk  `json:"sectorRiskDistribution"`
	ClimateTrend           []TrendPoint  `json:"climateTrend"`
	LeadershipScore        float64       `json:"leadershipScore"`
	SafetyScore            float64       `json:"safetyScore"`
	EstimatedSavings       float64       `json:"estimatedSavings"`
	RoiScenarios           []ROIScenario `json:"roiScenarios"`
	LeadersInDevelopment   int           `json:"leadersInDevelopment"`
	AbsenteeismRate        float64       `json:"absenteeismRate"`
	PresenteeismRate       float64       `json:"presenteeismRate"`
	InssLeaveTrend         []TrendPoint  `json:"inssLeaveTrend"`
	LeaveEvents            []LeaveEvent  `json:"leaveEvents"`
	CrossAnalysis          CrossAnalysis `json:"crossAnalysis"`
}
