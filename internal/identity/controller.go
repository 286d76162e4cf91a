// Package identity exposes registration and login over one authentication
// core. The server wires two instances of the controller, one per identity
// pool, so the staff and customer surfaces share all of their logic.
package identity

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"radagast/internal/auth"
	"radagast/internal/commons"
	"radagast/internal/domain"
)

type Controller struct {
	auth     *auth.Manager
	validate *validator.Validate
	logger   *zap.Logger
}

func NewController(manager *auth.Manager, validate *validator.Validate, logger *zap.Logger) *Controller {
	return &Controller{
		auth:     manager,
		validate: validate,
		logger:   logger,
	}
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	var req RegistrationDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	principal := domain.Principal{
		Username:  req.UserName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.PhoneNumber,
		Roles:     req.Roles,
	}
	if err := c.auth.Register(r.Context(), principal, req.Password); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	c.logger.Info("principal registered", zap.String("username", req.UserName))
	w.WriteHeader(http.StatusCreated)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	principal, err := c.auth.Authenticate(r.Context(), req.UserName, req.Password)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	token, err := c.auth.CreateToken(principal)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	commons.WriteJSON(w, c.logger, http.StatusOK, TokenDTO{Token: token})
}
