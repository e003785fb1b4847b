package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/application/inventory"
	"github.com/invorya/inventario-lite/internal/domain"
)

// ItemHandler maneja las peticiones HTTP del inventario (protegido).
// El gating por rol vive en el caso de uso: aquí solo se arma la sesión
// y se mapean errores de dominio a códigos HTTP.
type ItemHandler struct {
	uc *inventory.InventoryUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *inventory.InventoryUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List devuelve el snapshot completo del inventario.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// Search busca un item por nombre completo (case-insensitive, no substring).
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param name es requerido"})
	}
	out, err := h.uc.FindExact(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	return c.JSON(out)
}

// Create crea un item (solo admin).
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		return itemError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// paramName devuelve el :name del path ya percent-decodificado. Fiber no
// unescapa params por defecto; sin esto "Gloves%20Blue" nunca haría match
// con el item "Gloves Blue".
func paramName(c *fiber.Ctx) string {
	raw := c.Params("name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

// Update sobreescribe quantity y location del item :name (solo admin).
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	name := paramName(c)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), SessionFromCtx(c), name, in)
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina el item :name (solo admin). Borrar algo inexistente responde 204 igual.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	name := paramName(c)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	if err := h.uc.Delete(c.Context(), SessionFromCtx(c), name); err != nil {
		return itemError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// itemError mapea los errores de dominio del inventario a respuestas HTTP.
func itemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin puede modificar el inventario"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un item con ese nombre"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
