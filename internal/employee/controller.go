package employee

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"radagast/internal/commons"
	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
	"radagast/internal/query"
	"radagast/internal/repository"
	"radagast/internal/shape"
)

var sortKeys = map[string]query.SortKey[domain.Employee]{
	"name":     func(a, b domain.Employee) int { return strings.Compare(a.Name, b.Name) },
	"age":      func(a, b domain.Employee) int { return a.Age - b.Age },
	"position": func(a, b domain.Employee) int { return strings.Compare(a.Position, b.Position) },
}

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

// List runs the full pipeline: age range filter, name search, multi-key
// sort, pagination (metadata in the X-Pagination header) and field shaping.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	params := query.ParseEmployeeParams(r.URL.Query())
	if !params.ValidAgeRange() {
		commons.WriteError(w, c.logger, apperrors.NewValidationError("max age can't be less than min age", apperrors.ValidationDetail{
			Field:   "maxAge",
			Message: "maxAge must be greater than minAge",
		}))
		return
	}

	companyID, err := commons.URLUUID(r, "companyId")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	if _, err := m.Company().GetByID(r.Context(), companyID, false); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	employees, err := m.Employee().GetForCompany(r.Context(), companyID, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	employees = query.FilterRange(employees,
		func(e domain.Employee) float64 { return float64(e.Age) },
		float64(params.MinAge), float64(params.MaxAge))
	employees = query.Search(employees,
		func(e domain.Employee) string { return e.Name },
		params.SearchTerm)
	employees = query.Sort(employees, params.OrderBy, sortKeys, "name")

	page := query.Paginate(employees, params.PageNumber, params.PageSize)
	metadata, _ := json.Marshal(page.Metadata)
	w.Header().Set("X-Pagination", string(metadata))

	dtos := lo.Map(page.Items, func(e domain.Employee, _ int) EmployeeDTO {
		return newEmployeeDTO(e)
	})
	commons.WriteJSON(w, c.logger, http.StatusOK, shape.Shape(dtos, params.Fields))
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	if _, err := m.Company().GetByID(r.Context(), companyID, false); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	employee, err := m.Employee().GetByID(r.Context(), companyID, id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	commons.WriteJSON(w, c.logger, http.StatusOK, newEmployeeDTO(*employee))
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := commons.URLUUID(r, "companyId")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req EmployeeForCreationDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	if _, err := m.Company().GetByID(r.Context(), companyID, false); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	employee := req.toEntity()
	m.Employee().CreateForCompany(companyID, &employee)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/companies/%s/employees/%s", companyID, employee.ID))
	commons.WriteJSON(w, c.logger, http.StatusCreated, newEmployeeDTO(employee))
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req EmployeeForUpdateDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	employee, err := m.Employee().GetByID(r.Context(), companyID, id, true)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	employee.Name = req.Name
	employee.Age = req.Age
	employee.Position = req.Position
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Patch(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req EmployeeForPatchDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	employee, err := m.Employee().GetByID(r.Context(), companyID, id, true)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Age != nil {
		employee.Age = *req.Age
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	employee, err := m.Employee().GetByID(r.Context(), companyID, id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m.Employee().Delete(*employee)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) pathIDs(r *http.Request) (companyID, id uuid.UUID, err error) {
	companyID, err = commons.URLUUID(r, "companyId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err = commons.URLUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return companyID, id, nil
}
