package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventario-lite/internal/application/auth"
	"github.com/invorya/inventario-lite/internal/application/inventory"
	"github.com/invorya/inventario-lite/internal/application/request"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	InventoryUC *inventory.InventoryUseCase
	RequestUC   *request.RequestUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, logout requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido; las mutaciones además exigen rol admin en el caso de uso)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.InventoryUC)
	items.Get("/", itemHandler.List)
	items.Get("/search", itemHandler.Search)
	items.Post("/", itemHandler.Create)
	items.Put("/:name", itemHandler.Update)
	items.Delete("/:name", itemHandler.Delete)

	// Solicitudes de inventario por correo (protegido, cualquier rol)
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Post("/", requestHandler.Send)
}
