package usecases

import (
	"context"
	"testing"

	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResponse(answers map[string]string) entities.SurveyResponse {
	resp := entities.SurveyResponse{}
	for qid, label := range answers {
		score, _ := entities.LikertScore(label)
		resp.Answers = append(resp.Answers, entities.ResponseAnswer{
			QuestionID: qid,
			Value:      label,
			Score:      score,
		})
	}
	return resp
}

// uniformResponse responde todas as 30 perguntas das dimensões com o mesmo rótulo
func uniformResponse(label string) entities.SurveyResponse {
	answers := make(map[string]string)
	for _, dim := range entities.Dimensions {
		for _, qid := range dim.QuestionIDs {
			answers[qid] = label
		}
	}
	return makeResponse(answers)
}

func factorByID(t *testing.T, factors []entities.RiskFactor, id string) entities.RiskFactor {
	t.Helper()
	for _, f := range factors {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("dimensão %s não encontrada", id)
	return entities.RiskFactor{}
}

func TestComputeRiskFactorsAlwaysCoversAllDimensions(t *testing.T) {
	cases := [][]entities.SurveyResponse{
		nil,
		{makeResponse(nil)},
		{makeResponse(map[string]string{"q2": entities.LikertNeutro})},
	}
	for _, responses := range cases {
		factors := computeRiskFactors(responses)
		require.Len(t, factors, len(entities.Dimensions))
		seen := make(map[string]bool)
		for _, f := range factors {
			assert.False(t, seen[f.ID], "dimensão %s duplicada", f.ID)
			seen[f.ID] = true
		}
	}
}

func TestComputeRiskFactorsUntouchedDimensionScoresZero(t *testing.T) {
	responses := []entities.SurveyResponse{
		makeResponse(map[string]string{"q2": entities.LikertConcordoTotal}),
	}
	factors := computeRiskFactors(responses)
	assert.Equal(t, 0.0, factorByID(t, factors, "apoio_social").Score)
}

func TestComputeRiskFactorsExtremes(t *testing.T) {
	high := computeRiskFactors([]entities.SurveyResponse{
		makeResponse(map[string]string{
			"q2": entities.LikertConcordoTotal,
			"q3": entities.LikertConcordoTotal,
			"q4": entities.LikertConcordoTotal,
		}),
	})
	assert.Equal(t, 100.0, factorByID(t, high, "demandas_trabalho").Score)

	low := computeRiskFactors([]entities.SurveyResponse{
		makeResponse(map[string]string{
			"q2": entities.LikertDiscordoTotal,
			"q3": entities.LikertDiscordoTotal,
			"q4": entities.LikertDiscordoTotal,
		}),
	})
	assert.Equal(t, 0.0, factorByID(t, low, "demandas_trabalho").Score)
}

func TestComputeRiskFactorsPartialResponsesWeighFully(t *testing.T) {
	// Uma resposta cobre só 1 das 3 perguntas; outra cobre as 3.
	// A média é por resposta-dimensão: (5+1)/2 = 3 → score 50.
	// Uma média achatada das respostas individuais daria 25.
	responses := []entities.SurveyResponse{
		makeResponse(map[string]string{"q2": entities.LikertConcordoTotal}),
		makeResponse(map[string]string{
			"q2": entities.LikertDiscordoTotal,
			"q3": entities.LikertDiscordoTotal,
			"q4": entities.LikertDiscordoTotal,
		}),
	}
	factors := computeRiskFactors(responses)
	assert.Equal(t, 50.0, factorByID(t, factors, "demandas_trabalho").Score)
}

func TestAverageScoreIsUnweightedMean(t *testing.T) {
	factors := []entities.RiskFactor{
		{Score: 0}, {Score: 100}, {Score: 50}, {Score: 50}, {Score: 50},
		{Score: 50}, {Score: 50}, {Score: 50}, {Score: 50}, {Score: 50},
	}
	assert.Equal(t, 50.0, averageScore(factors))
	assert.Equal(t, 0.0, averageScore(nil))
}

func TestIrpGlobalIsAffineInGeralScore(t *testing.T) {
	empty := BuildDashboard(nil, nil, 0)
	assert.Equal(t, 0.0, empty.GeralScore)
	assert.Equal(t, 1.0, empty.IrpGlobal)

	top := BuildDashboard(
		[]entities.SurveyResponse{uniformResponse(entities.LikertConcordoTotal)},
		nil, 0,
	)
	assert.Equal(t, 100.0, top.GeralScore)
	assert.Equal(t, 5.0, top.IrpGlobal)
}

func TestClassifyRiskBoundaries(t *testing.T) {
	assert.Equal(t, "Baixo", classifyRisk(3.5).Text)
	assert.Equal(t, "bg-green-500", classifyRisk(3.5).Color)
	assert.Equal(t, "Moderado", classifyRisk(3.49).Text)
	assert.Equal(t, "Moderado", classifyRisk(2.5).Text)
	assert.Equal(t, "bg-yellow-500", classifyRisk(2.5).Color)
	assert.Equal(t, "Alto", classifyRisk(2.49).Text)
	assert.Equal(t, "bg-red-500", classifyRisk(2.49).Color)
}

func TestRankFactorsDisjointAndOrdered(t *testing.T) {
	factors := []entities.RiskFactor{
		{ID: "a", Score: 90}, {ID: "b", Score: 10}, {ID: "c", Score: 70},
		{ID: "d", Score: 30}, {ID: "e", Score: 50}, {ID: "f", Score: 80},
	}
	risks, protections := rankFactors(factors)

	require.Len(t, risks, 3)
	require.Len(t, protections, 3)
	assert.Equal(t, []string{"b", "d", "e"}, []string{risks[0].ID, risks[1].ID, risks[2].ID})
	assert.Equal(t, []string{"a", "f", "c"}, []string{protections[0].ID, protections[1].ID, protections[2].ID})

	inRisks := make(map[string]bool)
	for _, f := range risks {
		inRisks[f.ID] = true
	}
	for _, f := range protections {
		assert.False(t, inRisks[f.ID], "dimensão %s aparece nas duas listas", f.ID)
	}
}

func TestClassifyMaturityLadder(t *testing.T) {
	// score ≤35 cai no balde alto (escala ≤2.4); score 50 é moderado;
	// score ≥62.5 é baixo (escala ≥3.5)
	build := func(high, moderate, low int) []entities.RiskFactor {
		var factors []entities.RiskFactor
		for i := 0; i < high; i++ {
			factors = append(factors, entities.RiskFactor{Score: 0})
		}
		for i := 0; i < moderate; i++ {
			factors = append(factors, entities.RiskFactor{Score: 50})
		}
		for i := 0; i < low; i++ {
			factors = append(factors, entities.RiskFactor{Score: 100})
		}
		return factors
	}

	tests := []struct {
		name                string
		high, moderate, low int
		want                string
	}{
		{"70% alto vira M1", 7, 0, 3, "M1"},
		{"90% baixo vira M5", 0, 1, 9, "M5"},
		{"50% alto+moderado vira M2", 5, 0, 5, "M2"},
		{"30% moderado vira M3", 0, 3, 7, "M3"},
		{"10% moderado vira M4", 1, 1, 8, "M4"},
		{"tudo baixo vira M5", 0, 0, 10, "M5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyMaturity(build(tt.high, tt.moderate, tt.low))
			assert.Equal(t, tt.want, got.Level)
		})
	}
}

func TestClassifyMaturityNoDimensions(t *testing.T) {
	got := classifyMaturity(nil)
	assert.Equal(t, "N/A", got.Level)
	assert.Equal(t, "Dados Insuficientes", got.Name)
}

func TestComputeDistributionsSumTo100(t *testing.T) {
	responses := []entities.SurveyResponse{
		makeResponse(map[string]string{
			"q2": entities.LikertConcordoTotal,
			"q3": entities.LikertNeutro,
		}),
		makeResponse(map[string]string{
			"q2": entities.LikertDiscordoParcial,
		}),
	}
	dist := computeDistributions(responses)
	require.Len(t, dist, len(entities.Dimensions))

	sum := 0.0
	for _, slice := range dist["demandas_trabalho"] {
		sum += slice.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)

	// Dimensão sem respostas fica com denominador defensivo 1 e percentuais zero
	for _, slice := range dist["apoio_social"] {
		assert.Equal(t, 0.0, slice.Percentage)
	}
}

func TestComputeWellbeingScore(t *testing.T) {
	responses := []entities.SurveyResponse{
		makeResponse(map[string]string{
			"q1":  entities.LikertConcordoTotal,
			"q5":  entities.LikertDiscordoTotal,
			"q39": entities.LikertNeutro,
		}),
		// resposta parcial pesa integralmente
		makeResponse(map[string]string{"q1": entities.LikertConcordoTotal}),
	}
	// (3 + 5) / 2 = 4, na escala bruta 1..5
	assert.Equal(t, 4.0, computeWellbeingScore(responses))
	assert.Equal(t, 0.0, computeWellbeingScore(nil))
}

func TestBuildDashboardEndToEnd(t *testing.T) {
	var filtered []entities.SurveyResponse
	for i := 0; i < 5; i++ {
		filtered = append(filtered, uniformResponse(entities.LikertNeutro))
	}

	payload := BuildDashboard(filtered, filtered, 10)

	require.Len(t, payload.RiskFactors, 10)
	for _, f := range payload.RiskFactors {
		assert.Equal(t, 50.0, f.Score)
	}
	assert.Equal(t, 50.0, payload.GeralScore)
	assert.Equal(t, 3.0, payload.IrpGlobal)
	assert.Equal(t, "Moderado", payload.RiskClassification.Text)
	assert.Equal(t, 50.0, payload.ParticipationRate)
	assert.Equal(t, 5, payload.ResponseCount)
	assert.Equal(t, 10, payload.TotalEmployees)

	// linha de base usa o conjunto completo
	require.Len(t, payload.CompanyAverageFactors, 10)
	assert.Equal(t, 50.0, payload.CompanyAverageFactors[0].Score)

	// campos derivados do IRP
	assert.InDelta(t, 10.0, payload.PresenteeismRate, 1e-9)
	assert.InDelta(t, 6.0, payload.AbsenteeismRate, 1e-9)
	assert.Equal(t, 1, payload.LeadersInDevelopment)
	assert.Equal(t, 50.0, payload.LeadershipScore)
	assert.Equal(t, 50.0, payload.SafetyScore)
}

func TestBuildDashboardZeroEmployees(t *testing.T) {
	payload := BuildDashboard(nil, nil, 0)
	assert.Equal(t, 0.0, payload.ParticipationRate)
	assert.Equal(t, "Alto", payload.RiskClassification.Text)
}

type fakeCompanyRepo struct {
	company       *entities.Company
	collaborators int64
}

func (f *fakeCompanyRepo) FindByID(ctx context.Context, id string) (*entities.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyRepo) CountCollaborators(ctx context.Context, empresaID string) (int64, error) {
	return f.collaborators, nil
}

type fakeResponseRepo struct {
	filtered []entities.SurveyResponse
	all      []entities.SurveyResponse
}

func (f *fakeResponseRepo) FindFiltered(ctx context.Context, empresaID string, filter entities.ResponseFilter) ([]entities.SurveyResponse, error) {
	return f.filtered, nil
}

func (f *fakeResponseRepo) FindAllByCompany(ctx context.Context, empresaID string) ([]entities.SurveyResponse, error) {
	return f.all, nil
}

func TestGetDashboardCompanyNotFound(t *testing.T) {
	uc := NewAnalyticsUseCase(&fakeCompanyRepo{}, &fakeResponseRepo{})
	_, err := uc.GetDashboard(context.Background(), "inexistente", entities.ResponseFilter{})
	assert.ErrorIs(t, err, ErrEmpresaNaoEncontrada)
}

func TestGetDashboardHeadcountFallback(t *testing.T) {
	companyRepo := &fakeCompanyRepo{
		company:       &entities.Company{ID: "emp-1", NumColaboradores: 0},
		collaborators: 20,
	}
	responseRepo := &fakeResponseRepo{
		filtered: []entities.SurveyResponse{uniformResponse(entities.LikertNeutro)},
	}
	uc := NewAnalyticsUseCase(companyRepo, responseRepo)

	payload, err := uc.GetDashboard(context.Background(), "emp-1", entities.ResponseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 20, payload.TotalEmployees)
	assert.Equal(t, 5.0, payload.ParticipationRate)
}

func TestGetDashboardDeclaredHeadcountWins(t *testing.T) {
	companyRepo := &fakeCompanyRepo{
		company:       &entities.Company{ID: "emp-1", NumColaboradores: 50},
		collaborators: 20,
	}
	uc := NewAnalyticsUseCase(companyRepo, &fakeResponseRepo{})

	payload, err := uc.GetDashboard(context.Background(), "emp-1", entities.ResponseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 50, payload.TotalEmployees)
}
