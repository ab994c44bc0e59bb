package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Papéis de usuário reconhecidos pela plataforma
const (
	RoleAdmin       = "admin"
	RoleEmpresa     = "empresa"
	RoleColaborador = "colaborador"
)

// User representa um usuário do sistema (staff, gestor de empresa ou colaborador)
type User struct {
	ID        string `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Nome      string `json:"nome" gorm:"column:nome"`
	Email     string `json:"email" gorm:"column:email;uniqueIndex"`
	SenhaHash string `json:"-" gorm:"column:senha_hash"`
	Role      string `json:"role" gorm:"column:role;index"`

	// Associação com empresa (vazio para staff)
	EmpresaID string `json:"empresa_id,omitempty" gorm:"column:empresa_id;type:uuid;index"`

	// Atributos de segmentação do colaborador
	Unidade    string `json:"unidade,omitempty" gorm:"column:unidade"`
	Genero     string `json:"genero,omitempty" gorm:"column:genero"`
	NivelCargo string `json:"nivelCargo,omitempty" gorm:"column:nivel_cargo"`
	Area       string `json:"area,omitempty" gorm:"column:area"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "usuarios"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
