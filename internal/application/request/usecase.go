package request

import (
	"context"
	"strings"

	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
)

// RequestUseCase arma y envía la solicitud de inventario por correo.
// La solicitud es efímera: no toca los repositorios, solo el Mailer.
type RequestUseCase struct {
	mailer Mailer
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(mailer Mailer) *RequestUseCase {
	return &RequestUseCase{mailer: mailer}
}

// Send valida la solicitud, formatea asunto y cuerpo y llama al Mailer
// exactamente una vez. Cualquier usuario autenticado puede solicitar; un fallo
// del transporte se devuelve como ErrMailTransport (el mailer ya lo envuelve)
// y el caller decide qué mostrar, sin reintentos.
func (uc *RequestUseCase) Send(ctx context.Context, session entity.Session, in dto.SendRequestRequest) (*dto.SendRequestResponse, error) {
	if !session.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	req := entity.InventoryRequest{
		Type:        in.Type,
		ItemName:    strings.TrimSpace(in.ItemName),
		Quantity:    in.Quantity,
		Notes:       in.Notes,
		RequestedBy: session.Username,
	}
	if !req.ValidType() || req.ItemName == "" || req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	subject := req.Subject()
	if err := uc.mailer.Send(ctx, subject, req.Body()); err != nil {
		return nil, err
	}
	return &dto.SendRequestResponse{Sent: true, Subject: subject}, nil
}
