package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/application/request"
	"github.com/invorya/inventario-lite/internal/domain"
)

// RequestHandler maneja las solicitudes de inventario por correo (protegido).
type RequestHandler struct {
	uc *request.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *request.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Send valida y envía la solicitud. Un fallo del transporte SMTP responde 502
// con mensaje redactado; la causa queda solo en el error envuelto del servidor.
func (h *RequestHandler) Send(c *fiber.Ctx) error {
	var in dto.SendRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Send(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo, item_name y quantity positiva son requeridos"})
		case errors.Is(err, domain.ErrMailTransport):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MAIL_TRANSPORT", Message: "no se pudo enviar la solicitud, intente más tarde"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}
