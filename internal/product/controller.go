package product

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

var sortKeys = map[string]query.SortKey[domain.Product]{
	"name": func(a, b domain.Product) int { return strings.Compare(a.Name, b.Name) },
	"price": func(a, b domain.Product) int {
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		default:
			return 0
		}
	},
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

// List serves an order's products through the pipeline: price range filter,
// name search, sort, pagination and shaping. Pagination metadata travels in
// the X-Pagination header, not the body.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	params := query.ParseProductParams(r.URL.Query())
	if !params.ValidPriceRange() {
		commons.WriteError(w, c.logger, apperrors.NewValidationError("max price can't be less than min price", apperrors.ValidationDetail{
			Field:   "maxPrice",
			Message: "maxPrice must be greater than minPrice",
		}))
		return
	}

	orderID, err := commons.URLUUID(r, "orderId")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	if _, err := m.Order().GetByID(r.Context(), orderID, false); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	products, err := m.Product().GetForOrder(r.Context(), orderID, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	products = query.FilterRange(products,
		func(p domain.Product) float64 { return p.Price },
		float64(params.MinPrice), float64(params.MaxPrice))
	products = query.Search(products,
		func(p domain.Product) string { return p.Name },
		params.SearchTerm)
	products = query.Sort(products, params.OrderBy, sortKeys, "name")

	page := query.Paginate(products, params.PageNumber, params.PageSize)
	metadata, _ := json.Marshal(page.Metadata)
	w.Header().Set("X-Pagination", string(metadata))

	dtos := lo.Map(page.Items, func(p domain.Product, _ int) ProductDTO {
		return NewProductDTO(p)
	})
	commons.WriteJSON(w, c.logger, http.StatusOK, shape.Shape(dtos, params.Fields))
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	orderID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	if _, err := m.Order().GetByID(r.Context(), orderID, false); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	product, err := m.Product().GetByID(r.Context(), orderID, id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	commons.WriteJSON(w, c.logger, http.StatusOK, NewProductDTO(*product))
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	orderID, err := commons.URLUUID(r, "orderId")
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req ProductForCreationDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	if _, err := m.Order().GetByID(r.Context(), orderID, false); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	product := req.ToEntity()
	m.Product().CreateForOrder(orderID, &product)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%s/products/%s", orderID, product.ID))
	commons.WriteJSON(w, c.logger, http.StatusCreated, NewProductDTO(product))
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	orderID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req ProductForUpdateDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	product, err := m.Product().GetByID(r.Context(), orderID, id, true)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Patch(w http.ResponseWriter, r *http.Request) {
	orderID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	var req ProductForPatchDTO
	if err := commons.DecodeJSON(r, &req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	if err := commons.ValidateStruct(c.validate, req); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	product, err := m.Product().GetByID(r.Context(), orderID, id, true)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, id, err := c.pathIDs(r)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m := c.repos()
	product, err := m.Product().GetByID(r.Context(), orderID, id, false)
	if err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}

	m.Product().Delete(*product)
	if err := m.Commit(r.Context()); err != nil {
		commons.WriteError(w, c.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) pathIDs(r *http.Request) (orderID, id uuid.UUID, err error) {
	orderID, err = commons.URLUUID(r, "orderId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err = commons.URLUUID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return orderID, id, nil
}
