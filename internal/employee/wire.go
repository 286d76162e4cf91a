package employee

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"radagast/internal/repository"
)

func NewModule(db *sql.DB, validate *validator.Validate, logger *zap.Logger) *Controller {
	return NewController(
		func() repository.Manager { return repository.NewManager(db) },
		validate,
		logger,
	)
}
