package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/auth"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/inventory"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/reports"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/usecase"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	StockUC   *inventory.StockUseCase
	HistoryUC *reports.MovementsUseCase
	JWTSecret string
}

// Router registra las rutas de la API. El gating por rol ocurre aquí, nunca
// dentro de los casos de uso: Administrador gestiona usuarios, catálogo,
// entradas e histórico; Almacenista registra salidas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdministrador)
	almacenista := RequireRole(entity.RoleAlmacenista)

	// Usuarios y roles (solo Administrador)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", admin)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/activate", userHandler.Activate)
	users.Post("/:id/deactivate", userHandler.Deactivate)
	users.Delete("/:id", userHandler.Delete)
	protected.Get("/roles", admin, userHandler.ListRoles)

	// Catálogo de productos (listar: cualquier usuario autenticado;
	// mutaciones y entradas: Administrador)
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Post("/:id/entry", admin, inventoryHandler.RegisterEntry)
	products.Post("/:id/deactivate", admin, productHandler.Deactivate)
	products.Post("/:id/reactivate", admin, productHandler.Reactivate)
	products.Delete("/:id", admin, productHandler.Delete)

	// Salidas (solo Almacenista)
	exits := protected.Group("/exits", almacenista)
	exits.Get("/products", inventoryHandler.ListAvailable)
	exits.Post("/", inventoryHandler.RegisterExit)

	// Histórico (solo Administrador)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	protected.Get("/movements", admin, historyHandler.List)
}
