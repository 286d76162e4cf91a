package order

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"radagast/internal/commons"
	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
	"radagast/internal/repository"
)

type Controller struct {
	repos    func() repository.Manager
	validate *validator.Validate
	logger   *zap.Logger
}

func NewController(repos func() repository.Manager, validate *validator.Validate, logger *zap.Logger) *Controller {
	return &Controller{
		repos:    repos,
		validate: validate,
		logger:   logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repos().Order().GetAll(r.Context(), false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	dtos := lo.Map(orders, func(o domain.Order, _ int) OrderDTO {
		return newOrderDTO(o)
	})
	commons.WriteJSON(w, c.logger, http.StatusOK, dtos)
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id, err := commons.URLUUID(r, "id")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	order, err := c.repos().Order().GetByID(r.Context(), id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	commons.WriteJSON(w, c.logger, http.StatusOK, newOrderDTO(*order))
}

// Create persists the order and any embedded products in one commit.
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderForCreationDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	order := req.toEntity()
	m.Order().Create(&order)

	products := make([]domain.Product, len(req.Products))
	for i, p := range req.Products {
		products[i] = p.ToEntity()
		m.Product().CreateForOrder(order.ID, &products[i])
	}

	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%s", order.ID))
	commons.WriteJSON(w, c.logger, http.StatusCreated, newOrderDTO(order))
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id, err := commons.URLUUID(r, "id")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req OrderForUpdateDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	order, err := m.Order().GetByID(r.Context(), id, true)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	order.IDUser = req.IDUser
	order.Date = req.Date
	order.Time = req.Time
	order.NameDistrict = req.NameDistrict
	order.Status = req.Status
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the order; its products go with it via the schema's
// cascade.
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := commons.URLUUID(r, "id")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	order, err := m.Order().GetByID(r.Context(), id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m.Order().Delete(*order)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Collection(w http.ResponseWriter, r *http.Request) {
	ids, err := commons.ParseIDList(chi.URLParam(r, "ids"))
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	orders, err := c.repos().Order().GetByIDs(r.Context(), ids, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if len(orders) != len(ids) {
		commons.WriteError(w, c.logger, apperrors.NewNotFoundError("some ids are not valid in the collection"))
		return
	}

	dtos := lo.Map(orders, func(o domain.Order, _ int) OrderDTO {
		return newOrderDTO(o)
	})
	commons.WriteJSON(w, c.logger, http.StatusOK, dtos)
}
