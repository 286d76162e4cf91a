package identity

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"radagast/internal/auth"
	"radagast/internal/config"
)

func NewModule(store auth.PrincipalStore, cfg config.JWTConfig, validate *validator.Validate, logger *zap.Logger) *Controller {
	return NewController(auth.NewManager(store, cfg), validate, logger)
}
