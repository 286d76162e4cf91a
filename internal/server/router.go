package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"radagast/internal/auth"
	"radagast/internal/company"
	"radagast/internal/config"
	"radagast/internal/employee"
	"radagast/internal/identity"
	"radagast/internal/order"
	"radagast/internal/product"
)

type Controllers struct {
	Companies *company.Controller
	Employees *employee.Controller
	Orders    *order.Controller
	Products  *product.Controller
	Users     *identity.Controller
	Customers *identity.Controller
}

func NewRouter(c Controllers, jwtCfg config.JWTConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/", c.Users.Register)
			r.Post("/login", c.Users.Login)
			r.Route("/customer", func(r chi.Router) {
				r.Post("/", c.Customers.Register)
				r.Post("/login", c.Customers.Login)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireToken(jwtCfg))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", c.Companies.List)
				r.Post("/", c.Companies.Create)
				r.Get("/collection/{ids}", c.Companies.Collection)
				r.Post("/collection", c.Companies.CreateCollection)
				r.Get("/{id}", c.Companies.Get)
				r.Put("/{id}", c.Companies.Update)
				r.Delete("/{id}", c.Companies.Delete)

				r.Route("/{companyId}/employees", func(r chi.Router) {
					r.Get("/", c.Employees.List)
					r.Post("/", c.Employees.Create)
					r.Get("/{id}", c.Employees.Get)
					r.Put("/{id}", c.Employees.Update)
					r.Patch("/{id}", c.Employees.Patch)
					r.Delete("/{id}", c.Employees.Delete)
				})
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", c.Orders.List)
				r.Post("/", c.Orders.Create)
				r.Get("/collection/{ids}", c.Orders.Collection)
				r.Get("/{id}", c.Orders.Get)
				r.Put("/{id}", c.Orders.Update)
				r.Delete("/{id}", c.Orders.Delete)

				r.Route("/{orderId}/products", func(r chi.Router) {
					r.Get("/", c.Products.List)
					r.Post("/", c.Products.Create)
					r.Get("/{id}", c.Products.Get)
					r.Put("/{id}", c.Products.Update)
					r.Patch("/{id}", c.Products.Patch)
					r.Delete("/{id}", c.Products.Delete)
				})
			})
		})
	})

	return r
}
