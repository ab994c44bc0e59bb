package migrations

import (
	"github.com/salusmind/psicossocial-api/internal/domain/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Company{},
		&entities.User{},
		&entities.Campaign{},
		&entities.SurveyResponse{},
		&entities.ResponseAnswer{},
	)
}
