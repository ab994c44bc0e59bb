package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyResponse representa o envio completo do questionário por um colaborador.
// A segmentação do colaborador é congelada no momento do envio para que os
// filtros do dashboard não mudem de significado quando o cadastro for editado.
type SurveyResponse struct {
	ID         string `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	EmpresaID  string `json:"empresa_id" gorm:"column:empresa_id;type:uuid;index"`
	UserID     string `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	CampanhaID string `json:"campanha_id" gorm:"column:campanha_id;type:uuid;index"`

	// Snapshot de segmentação
	Unidade    string `json:"unidade,omitempty" gorm:"column:unidade"`
	Genero     string `json:"genero,omitempty" gorm:"column:genero"`
	NivelCargo string `json:"nivelCargo,omitempty" gorm:"column:nivel_cargo"`
	Area       string `json:"area,omitempty" gorm:"column:area"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`

	// Relações
	Answers []ResponseAnswer `json:"answers,omitempty" gorm:"foreignKey:SurveyResponseID"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

func (r *SurveyResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// AnswerMap monta o mapa pergunta→rótulo a partir das linhas de resposta.
// Perguntas não respondidas simplesmente não aparecem no mapa; o chamador
// decide via ok-idiom, nunca por valor zero implícito.
func (r *SurveyResponse) AnswerMap() map[string]string {
	m := make(map[string]string, len(r.Answers))
	for _, a := range r.Answers {
		m[a.QuestionID] = a.Value
	}
	return m
}

// ResponseAnswer representa a resposta individual a uma pergunta do questionário
type ResponseAnswer struct {
	ID               string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	SurveyResponseID string    `json:"survey_response_id" gorm:"column:survey_response_id;type:uuid;index"`
	QuestionID       string    `json:"question_id" gorm:"column:question_id"`
	Value            string    `json:"value" gorm:"column:value"`
	Score            int       `json:"score" gorm:"column:score"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ResponseAnswer) TableName() string {
	return "response_answers"
}

func (a *ResponseAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ResponseFilter limita o conjunto de respostas considerado pelo dashboard.
// Campos vazios não filtram.
type ResponseFilter struct {
	Unidade    string
	Genero     string
	NivelCargo string
	Area       string
}
