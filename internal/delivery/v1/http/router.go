package http

import (
	"context"
	"net/http"

	_ "github.com/DRSN-tech/store-api/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, userUC usecase.UserUC, orderUC usecase.OrderUC, health HealthChecker) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(accessLog(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))
	r.router.Get("/healthz", healthHandler(health, r.logger))

	registerProductRoutes(r.router, NewProductHandler(prUC, r.logger))
	registerUserRoutes(r.router, NewUserHandler(userUC, r.logger))
	registerOrderRoutes(r.router, NewOrderHandler(orderUC, r.logger))
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

func registerUserRoutes(router chi.Router, userHandler *UserHandler) {
	router.Route("/users", func(ur chi.Router) {
		ur.Get("/", userHandler.listUsers)
		ur.Post("/", userHandler.createUser)
	})
}

func registerOrderRoutes(router chi.Router, orderHandler *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Get("/", orderHandler.listOrders)
		or.Post("/", orderHandler.createOrder)
	})
}

// healthHandler
//
//	@Summary	Проверка доступности
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	ErrorResponse
//	@Router		/healthz [get]
func healthHandler(health HealthChecker, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.Ping(r.Context()); err != nil {
			log.Errorf(err, "health check failed")
			WriteSuccess(w, http.StatusServiceUnavailable, NewErrorResponse(http.StatusServiceUnavailable, "database unavailable"))
			return
		}

		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
