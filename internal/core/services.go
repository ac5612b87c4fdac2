package core

import (
	"github.com/rs/zerolog"
)

type Services struct {
	Validation *ValidationService
}

func NewServices(db DB, defaultVersion string, logger zerolog.Logger) *Services {
	return &Services{
		Validation: NewValidationService(db, defaultVersion, logger),
	}
}
