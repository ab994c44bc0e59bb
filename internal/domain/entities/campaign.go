package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign representa uma campanha de aplicação do questionário em uma empresa
type Campaign struct {
	ID         string     `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	EmpresaID  string     `json:"empresa_id" gorm:"column:empresa_id;type:uuid;index"`
	Nome       string     `json:"nome" gorm:"column:nome"`
	Descricao  string     `json:"descricao" gorm:"column:descricao;type:text"`
	DataInicio *time.Time `json:"data_inicio,omitempty" gorm:"column:data_inicio"`
	DataFim    *time.Time `json:"data_fim,omitempty" gorm:"column:data_fim"`
	Ativa      bool       `json:"ativa" gorm:"column:ativa;default:true"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Respostas []SurveyResponse `json:"respostas,omitempty" gorm:"foreignKey:CampanhaID"`
}

func (Campaign) TableName() string {
	return "campanhas"
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
