package company

import (
	"fmt"
	"net/http"
	"strings"

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

// NewController takes a factory rather than a manager because each request
// needs its own unit of work.
func NewController(repos func() repository.Manager, validate *validator.Validate, logger *zap.Logger) *Controller {
	return &Controller{
		repos:    repos,
		validate: validate,
		logger:   logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.repos().Company().GetAll(r.Context(), false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	dtos := lo.Map(companies, func(company domain.Company, _ int) CompanyDTO {
		return newCompanyDTO(company)
	})
	commons.WriteJSON(w, c.logger, http.StatusOK, dtos)
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id, err := commons.URLUUID(r, "id")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	company, err := c.repos().Company().GetByID(r.Context(), id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	commons.WriteJSON(w, c.logger, http.StatusOK, newCompanyDTO(*company))
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req CompanyForCreationDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	company := req.toEntity()
	m.Company().Create(&company)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/companies/%s", company.ID))
	commons.WriteJSON(w, c.logger, http.StatusCreated, newCompanyDTO(company))
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id, err := commons.URLUUID(r, "id")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req CompanyForUpdateDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	company, err := m.Company().GetByID(r.Context(), id, true)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	company.Name = req.Name
	company.Address = req.Address
	company.Country = req.Country
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := commons.URLUUID(r, "id")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	company, err := m.Company().GetByID(r.Context(), id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m.Company().Delete(*company)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Collection is a batch get. The batch is satisfied only when every
// requested id resolves; otherwise the whole request is not found.
func (c *Controller) Collection(w http.ResponseWriter, r *http.Request) {
	ids, err := commons.ParseIDList(chi.URLParam(r, "ids"))
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	companies, err := c.repos().Company().GetByIDs(r.Context(), ids, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if len(companies) != len(ids) {
		commons.WriteError(w, c.logger, apperrors.NewNotFoundError("some ids are not valid in the collection"))
		return
	}

	dtos := lo.Map(companies, func(company domain.Company, _ int) CompanyDTO {
		return newCompanyDTO(company)
	})
	commons.WriteJSON(w, c.logger, http.StatusOK, dtos)
}

// CreateCollection stages every company and commits once, so a bulk create
// is all-or-nothing.
func (c *Controller) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var reqs []CompanyForCreationDTO
	if err := commons.DecodeJSON(r, &reqs); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if len(reqs) == 0 {
		commons.WriteError(w, c.logger, apperrors.NewValidationError("company collection is empty", apperrors.ValidationDetail{
			Field:   "body",
			Message: "at least one company is required",
		}))
		return
	}
	for _, req := range reqs {
		if err := commons.ValidateStruct(c.validate, req); err != nil {
			commons.WriteError(w, c.logger, err)
			return
		}
	}

	m := c.repos()
	companies := make([]domain.Company, len(reqs))
	for i, req := range reqs {
		companies[i] = req.toEntity()
		m.Company().Create(&companies[i])
	}
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	ids := lo.Map(companies, func(company domain.Company, _ int) string {
		return company.ID.String()
	})
	dtos := lo.Map(companies, func(company domain.Company, _ int) CompanyDTO {
		return newCompanyDTO(company)
	})

	w.Header().Set("Location", fmt.Sprintf("/api/companies/collection/%s", strings.Join(ids, ",")))
	commons.WriteJSON(w, c.logger, http.StatusCreated, dtos)
}
