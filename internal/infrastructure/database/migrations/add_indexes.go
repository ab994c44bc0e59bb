package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Índices da tabela de respostas
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_survey_responses_empresa_campanha ON survey_responses (empresa_id, campanha_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_survey_responses_created_at ON survey_responses (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_survey_responses_user_campanha ON survey_responses (user_id, campanha_id)").Error; err != nil {
		return err
	}

	// Índices da tabela de respostas individuais
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_response_answers_response_question ON response_answers (survey_response_id, question_id)").Error; err != nil {
		return err
	}

	// Índices das tabelas de cadastro
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_usuarios_empresa_role ON usuarios (empresa_id, role)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_campanhas_empresa_ativa ON campanhas (empresa_id, ativa)").Error; err != nil {
		return err
	}

	return nil
}
