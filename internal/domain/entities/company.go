package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company representa uma empresa cliente da plataforma
type Company struct {
	ID               string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Nome             string    `json:"nome" gorm:"column:nome"`
	CNPJ             string    `json:"cnpj" gorm:"column:cnpj;uniqueIndex"`
	Setor            string    `json:"setor" gorm:"column:setor"`
	NumColaboradores int       `json:"numColaboradores" gorm:"column:num_colaboradores"`
	Ativa            bool      `json:"ativa" gorm:"column:ativa;default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Campanhas []Campaign `json:"campanhas,omitempty" gorm:"foreignKey:EmpresaID"`
}

func (Company) TableName() string {
	return "empresas"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
