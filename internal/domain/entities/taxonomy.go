package entities

// Rótulos canônicos da escala Likert, na ordem crescente de concordância
const (
	LikertDiscordoTotal   = "Discordo totalmente"
	LikertDiscordoParcial = "Discordo parcialmente"
	LikertNeutro          = "Neutro / Indiferente"
	LikertConcordoParcial = "Concordo parcialmente"
	LikertConcordoTotal   = "Concordo totalmente"
)

// LikertLevel descreve um nível da escala com os metadados usados nos gráficos
type LikertLevel struct {
	Label string `json:"label"`
	Sigla string `json:"sigla"`
	Cor   string `json:"cor"`
	Score int    `json:"score"`
}

// LikertLevels lista os 5 níveis na ordem canônica (score 1..5).
// A tabela é fixa: alterá-la muda o significado de todo o histórico de scores.
var LikertLevels = []LikertLevel{
	{Label: LikertDiscordoTotal, Sigla: "DT", Cor: "#ef4444", Score: 1},
	{Label: LikertDiscordoParcial, Sigla: "DP", Cor: "#f97316", Score: 2},
	{Label: LikertNeutro, Sigla: "N", Cor: "#eab308", Score: 3},
	{Label: LikertConcordoParcial, Sigla: "CP", Cor: "#84cc16", Score: 4},
	{Label: LikertConcordoTotal, Sigla: "CT", Cor: "#22c55e", Score: 5},
}

var likertScores = map[string]int{
	LikertDiscordoTotal:   1,
	LikertDiscordoParcial: 2,
	LikertNeutro:          3,
	LikertConcordoParcial: 4,
	LikertConcordoTotal:   5,
}

// LikertScore retorna o valor 1..5 de um rótulo. O segundo retorno indica se o
// rótulo é válido; rótulos desconhecidos ou perguntas não respondidas nunca
// entram no cálculo.
func LikertScore(label string) (int, bool) {
	score, ok := likertScores[label]
	return score, ok
}

// Dimension é uma das 10 categorias de risco psicossocial, cada uma apurada a
// partir de exatamente 3 perguntas fixas do questionário.
type Dimension struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	QuestionIDs [3]string `json:"question_ids"`
}

// Dimensions é a taxonomia fixa de dimensões. O vínculo dimensão→perguntas é
// definido em tempo de build e não pode mudar sem migrar a interpretação do
// histórico.
var Dimensions = []Dimension{
	{ID: "demandas_trabalho", Nome: "Demandas de Trabalho", QuestionIDs: [3]string{"q2", "q3", "q4"}},
	{ID: "controle_autonomia", Nome: "Controle e Autonomia", QuestionIDs: [3]string{"q6", "q7", "q8"}},
	{ID: "apoio_social", Nome: "Apoio Social", QuestionIDs: [3]string{"q9", "q10", "q11"}},
	{ID: "relacionamentos", Nome: "Relacionamentos Interpessoais", QuestionIDs: [3]string{"q12", "q13", "q14"}},
	{ID: "clareza_papel", Nome: "Clareza de Papel", QuestionIDs: [3]string{"q15", "q16", "q17"}},
	{ID: "gestao_mudanca", Nome: "Gestão de Mudanças", QuestionIDs: [3]string{"q18", "q19", "q20"}},
	{ID: "reconhecimento", Nome: "Reconhecimento e Recompensas", QuestionIDs: [3]string{"q21", "q22", "q23"}},
	{ID: "lideranca", Nome: "Qualidade da Liderança", QuestionIDs: [3]string{"q24", "q25", "q26"}},
	{ID: "seguranca", Nome: "Segurança Psicológica", QuestionIDs: [3]string{"q27", "q28", "q29"}},
	{ID: "carga_jornada", Nome: "Carga e Jornada", QuestionIDs: [3]string{"q30", "q31", "q32"}},
}

// WellbeingQuestionIDs é o subconjunto fixo usado no workLifeBalanceScore.
// As perguntas não pertencem a nenhuma das 10 dimensões; a regra é preservada
// como está.
var WellbeingQuestionIDs = [3]string{"q1", "q5", "q39"}

// MaturityLevel classifica a postura da empresa na gestão de riscos
// psicossociais, de M1 (Reativo) a M5 (Estratégico).
type MaturityLevel struct {
	Level       string `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MaturityTable descreve os cinco estágios mais o fallback para dados
// insuficientes.
var MaturityTable = map[string]MaturityLevel{
	"M1": {Level: "M1", Name: "Reativo", Description: "A empresa age apenas após incidentes; a maioria das dimensões está em risco alto."},
	"M2": {Level: "M2", Name: "Emergente", Description: "Esforços pontuais de mitigação; parcela relevante das dimensões ainda em atenção."},
	"M3": {Level: "M3", Name: "Estruturado", Description: "Processos de gestão definidos; dimensões moderadas predominam e há rotina de acompanhamento."},
	"M4": {Level: "M4", Name: "Proativo", Description: "Riscos monitorados continuamente; a maior parte das dimensões está sob controle."},
	"M5": {Level: "M5", Name: "Estratégico", Description: "Gestão psicossocial integrada à estratégia; quase todas as dimensões em risco baixo."},
	"N/A": {Level: "N/A", Name: "Dados Insuficientes", Description: "Não há dimensões apuradas para classificar a maturidade."},
}
