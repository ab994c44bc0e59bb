package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
)

// ErrEmpresaNaoEncontrada indica que o ID de empresa não resolve para um registro
var ErrEmpresaNaoEncontrada = errors.New("empresa não encontrada")

// ICompanyRepository define o que o dashboard precisa do repositório de empresas
type ICompanyRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Company, error)
	CountCollaborators(ctx context.Context, empresaID string) (int64, error)
}

// IResponseRepository define o que o dashboard precisa do repositório de respostas
type IResponseRepository interface {
	FindFiltered(ctx context.Context, empresaID string, filter entities.ResponseFilter) ([]entities.SurveyResponse, error)
	FindAllByCompany(ctx context.Context, empresaID string) ([]entities.SurveyResponse, error)
}

// AnalyticsUseCase monta o dashboard de riscos psicossociais de uma empresa
type AnalyticsUseCase struct {
	companyRepo  ICompanyRepository
	responseRepo IResponseRepository
}

// NewAnalyticsUseCase cria uma nova instância de AnalyticsUseCase
func NewAnalyticsUseCase(companyRepo ICompanyRepository, responseRepo IResponseRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		companyRepo:  companyRepo,
		responseRepo: responseRepo,
	}
}

// GetDashboard resolve a empresa, busca os dois conjuntos de respostas
// (filtrado e completo) e delega o cálculo puro a BuildDashboard. As duas
// buscas são os únicos pontos bloqueantes; daqui em diante nada suspende.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context, empresaID string, filter entities.ResponseFilter) (*entities.DashboardPayload, error) {
	company, err := uc.companyRepo.FindByID(ctx, empresaID)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver empresa: %w", err)
	}
	if company == nil {
		return nil, ErrEmpresaNaoEncontrada
	}

	filtered, err := uc.responseRepo.FindFiltered(ctx, empresaID, filter)
	if err != nil {
		return nil, err
	}

	all, err := uc.responseRepo.FindAllByCompany(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	totalEmployees := company.NumColaboradores
	if totalEmployees == 0 {
		count, err := uc.companyRepo.CountCollaborators(ctx, empresaID)
		if err != nil {
			return nil, err
		}
		totalEmployees = int(count)
	}

	return BuildDashboard(filtered, all, totalEmployees), nil
}

// BuildDashboard é o motor de agregação: função pura dos dois conjuntos de
// respostas e das tabelas estáticas da taxonomia. Conjuntos vazios degradam
// para os valores de fallback definidos, nunca para erro.
func BuildDashboard(filtered, all []entities.SurveyResponse, totalEmployees int) *entities.DashboardPayload {
	riskFactors := computeRiskFactors(filtered)
	companyFactors := computeRiskFactors(all)

	geralScore := averageScore(riskFactors)
	irpGlobal := geralScore/100*4 + 1

	topRisks, topProtections := rankFactors(riskFactors)

	participation := 0.0
	if totalEmployees > 0 {
		participation = float64(len(filtered)) / float64(totalEmployees) * 100
	}

	payload := &entities.DashboardPayload{
		RiskFactors:        riskFactors,
		GeralScore:         geralScore,
		IrpGlobal:          irpGlobal,
		RiskClassification: classifyRisk(irpGlobal),

		ParticipationRate: participation,
		ResponseCount:     len(filtered),
		TotalEmployees:    totalEmployees,

		TopRisks:       topRisks,
		TopProtections: topProtections,

		MaturityLevel:         classifyMaturity(riskFactors),
		CompanyAverageFactors: companyFactors,
		Distributions:         computeDistributions(filtered),

		WorkLifeBalanceScore: computeWellbeingScore(filtered),
	}

	applyDerivedFields(payload, irpGlobal, totalEmployees)
	return payload
}

// safeAverage torna explícito o fallback de divisão por zero do scoring
func safeAverage(sum float64, count int) float64 {
	if count > 0 {
		return sum / float64(count)
	}
	return 0
}

// dimensionAverage calcula a média parcial 1..5 de uma resposta dentro de uma
// dimensão. Respostas parciais contribuem com peso integral: quem respondeu 1
// das 3 perguntas pesa o mesmo que quem respondeu as 3.
func dimensionAverage(answers map[string]string, questionIDs [3]string) (float64, bool) {
	sum, count := 0, 0
	for _, qid := range questionIDs {
		label, ok := answers[qid]
		if !ok {
			continue
		}
		score, valid := entities.LikertScore(label)
		if !valid {
			continue
		}
		sum += score
		count++
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// computeRiskFactors produz exatamente um RiskFactor por dimensão da taxonomia,
// mesmo quando nenhuma resposta tocou a dimensão (score 0 nesse caso).
// A média é por resposta-dimensão primeiro e só então entre respostas; não é
// uma média achatada de todas as respostas individuais.
func computeRiskFactors(responses []entities.SurveyResponse) []entities.RiskFactor {
	factors := make([]entities.RiskFactor, 0, len(entities.Dimensions))
	for _, dim := range entities.Dimensions {
		sum := 0.0
		count := 0
		for i := range responses {
			answers := responses[i].AnswerMap()
			if avg, ok := dimensionAverage(answers, dim.QuestionIDs); ok {
				sum += avg
				count++
			}
		}

		score := 0.0
		if count > 0 {
			avg := safeAverage(sum, count)
			score = math.Round((avg - 1) / 4 * 100)
		}

		factors = append(factors, entities.RiskFactor{
			ID:    dim.ID,
			Name:  dim.Nome,
			Score: score,
		})
	}
	return factors
}

// averageScore é a média simples dos scores das dimensões, sem peso por volume
// de respostas
func averageScore(factors []entities.RiskFactor) float64 {
	sum := 0.0
	for _, f := range factors {
		sum += f.Score
	}
	return safeAverage(sum, len(factors))
}

// classifyRisk converte o IRP global no selo de risco do dashboard
func classifyRisk(irpGlobal float64) entities.RiskClassification {
	switch {
	case irpGlobal >= 3.5:
		return entities.RiskClassification{Text: "Baixo", Color: "bg-green-500"}
	case irpGlobal >= 2.5:
		return entities.RiskClassification{Text: "Moderado", Color: "bg-yellow-500"}
	default:
		return entities.RiskClassification{Text: "Alto", Color: "bg-red-500"}
	}
}

// rankFactors devolve as 3 dimensões de menor score (riscos) e as 3 de maior
// (proteções), esta última em ordem decrescente
func rankFactors(factors []entities.RiskFactor) ([]entities.RiskFactor, []entities.RiskFactor) {
	sorted := make([]entities.RiskFactor, len(factors))
	copy(sorted, factors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})

	n := 3
	if len(sorted) < n {
		n = len(sorted)
	}

	topRisks := make([]entities.RiskFactor, n)
	copy(topRisks, sorted[:n])

	topProtections := make([]entities.RiskFactor, 0, n)
	for i := len(sorted) - 1; i >= len(sorted)-n; i-- {
		topProtections = append(topProtections, sorted[i])
	}

	return topRisks, topProtections
}

// classifyMaturity classifica a empresa em M1..M5 pela distribuição das
// dimensões entre os baldes de risco. A escada é avaliada em ordem, primeiro
// acerto vence; as sobreposições entre baldes são intencionais e preservadas.
func classifyMaturity(factors []entities.RiskFactor) entities.MaturityLevel {
	total := len(factors)
	if total == 0 {
		return entities.MaturityTable["N/A"]
	}

	var high, moderate, low int
	for _, f := range factors {
		scale := f.Score/100*4 + 1
		switch {
		case scale <= 2.4:
			high++
		case scale >= 3.5:
			low++
		default:
			moderate++
		}
	}

	pHigh := float64(high) / float64(total) * 100
	pModerate := float64(moderate) / float64(total) * 100
	pLow := float64(low) / float64(total) * 100

	switch {
	case pHigh > 60:
		return entities.MaturityTable["M1"]
	case pLow > 80:
		return entities.MaturityTable["M5"]
	case pHigh+pModerate >= 40 && pHigh+pModerate <= 60:
		return entities.MaturityTable["M2"]
	case pModerate >= 30 && pModerate <= 40:
		return entities.MaturityTable["M3"]
	case pModerate >= 10 && pModerate < 30:
		return entities.MaturityTable["M4"]
	case pHigh+pModerate > 30:
		return entities.MaturityTable["M2"]
	default:
		return entities.MaturityTable["M4"]
	}
}

// computeDistributions monta, por dimensão, o percentual de cada nível Likert
// entre todas as respostas às 3 perguntas da dimensão. Dimensão sem respostas
// usa denominador 1 (fallback defensivo, percentuais ficam em zero).
func computeDistributions(responses []entities.SurveyResponse) map[string][]entities.DistributionSlice {
	out := make(map[string][]entities.DistributionSlice, len(entities.Dimensions))
	for _, dim := range entities.Dimensions {
		counts := make(map[string]int, len(entities.LikertLevels))
		total := 0
		for i := range responses {
			answers := responses[i].AnswerMap()
			for _, qid := range dim.QuestionIDs {
				label, ok := answers[qid]
				if !ok {
					continue
				}
				if _, valid := entities.LikertScore(label); !valid {
					continue
				}
				counts[label]++
				total++
			}
		}

		denom := total
		if denom == 0 {
			denom = 1
		}

		slices := make([]entities.DistributionSlice, 0, len(entities.LikertLevels))
		for _, level := range entities.LikertLevels {
			slices = append(slices, entities.DistributionSlice{
				Label:      level.Label,
				Sigla:      level.Sigla,
				Cor:        level.Cor,
				Percentage: float64(counts[level.Label]) / float64(denom) * 100,
			})
		}
		out[dim.ID] = slices
	}
	return out
}

// computeWellbeingScore calcula o workLifeBalanceScore sobre o subconjunto
// fixo q1/q5/q39, na escala bruta 1..5, com o mesmo critério de média parcial
// das dimensões
func computeWellbeingScore(responses []entities.SurveyResponse) float64 {
	sum := 0.0
	count := 0
	for i := range responses {
		answers := responses[i].AnswerMap()
		if avg, ok := dimensionAverage(answers, entities.WellbeingQuestionIDs); ok {
			sum += avg
			count++
		}
	}
	return safeAverage(sum, count)
}

// applyDerivedFields preenche os campos derivados e ilustrativos do payload.
// São regras de transformação fixas para compatibilidade de formato, não
// lógica analítica.
func applyDerivedFields(payload *entities.DashboardPayload, irpGlobal float64, totalEmployees int) {
	payload.PresenteeismRate = (5 - irpGlobal) * 5
	payload.AbsenteeismRate = (5 - irpGlobal) * 3
	payload.EstimatedSavings = (5 - irpGlobal) * 1500 * float64(totalEmployees)
	payload.LeadersInDevelopment = int(math.Ceil(float64(totalEmployees) * 0.1))

	for _, f := range payload.RiskFactors {
		switch f.ID {
		case "lideranca":
			payload.LeadershipScore = f.Score
		case "seguranca":
			payload.SafetyScore = f.Score
		}
	}

	payload.SectorRiskDistribution = []entities.SectorRisk{
		{Setor: "Indústria", Irp: 2.8},
		{Setor: "Serviços", Irp: 3.2},
		{Setor: "Saúde", Irp: 2.5},
		{Setor: "Tecnologia", Irp: 3.6},
	}

	payload.ClimateTrend = []entities.TrendPoint{
		{Mes: "Jan", Valor: 3.1},
		{Mes: "Fev", Valor: 3.0},
		{Mes: "Mar", Valor: 3.2},
		{Mes: "Abr", Valor: 3.3},
		{Mes: "Mai", Valor: 3.2},
		{Mes: "Jun", Valor: 3.4},
	}

	payload.RoiScenarios = []entities.ROIScenario{
		{Nome: "Conservador", Investimento: 50000, Retorno: 110000, PrazoMeses: 18},
		{Nome: "Moderado", Investimento: 80000, Retorno: 224000, PrazoMeses: 12},
		{Nome: "Agressivo", Investimento: 120000, Retorno: 420000, PrazoMeses: 9},
	}

	payload.InssLeaveTrend = []entities.TrendPoint{
		{Mes: "Jan", Valor: 4},
		{Mes: "Fev", Valor: 3},
		{Mes: "Mar", Valor: 5},
		{Mes: "Abr", Valor: 2},
		{Mes: "Mai", Valor: 3},
		{Mes: "Jun", Valor: 2},
	}

	payload.LeaveEvents = []entities.LeaveEvent{
		{Tipo: "Transtorno de ansiedade", Mes: "Mar", DiasOff: 15},
		{Tipo: "Episódio depressivo", Mes: "Abr", DiasOff: 30},
		{Tipo: "Burnout", Mes: "Jun", DiasOff: 21},
	}

	payload.CrossAnalysis = entities.CrossAnalysis{
		PorGenero: []entities.CrossSlice{
			{Grupo: "Feminino", Irp: 2.9},
			{Grupo: "Masculino", Irp: 3.1},
		},
		PorNivelCargo: []entities.CrossSlice{
			{Grupo: "Operacional", Irp: 2.8},
			{Grupo: "Coordenação", Irp: 3.0},
			{Grupo: "Gerência", Irp: 3.3},
		},
		PorArea: []entities.CrossSlice{
			{Grupo: "Produção", Irp: 2.7},
			{Grupo: "Administrativo", Irp: 3.2},
			{Grupo: "Comercial", Irp: 3.0},
		},
	}
}
