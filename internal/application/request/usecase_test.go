package request_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/application/request"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
)

type fakeMailer struct {
	calls    int
	subject  string
	body     string
	failWith error
}

func (f *fakeMailer) Send(ctx context.Context, subject, body string) error {
	f.calls++
	f.subject = subject
	f.body = body
	return f.failWith
}

var requester = entity.AuthenticatedSession("pranat", entity.RoleUser)

func TestSend_NotasVacias_CuerpoLlevaNA(t *testing.T) {
	mailer := &fakeMailer{}
	uc := request.NewRequestUseCase(mailer)

	out, err := uc.Send(context.Background(), requester, dto.SendRequestRequest{
		Type: entity.RequestRefill, ItemName: "Gloves", Quantity: 3, Notes: "",
	})
	require.NoError(t, err)

	assert.True(t, out.Sent)
	assert.Equal(t, 1, mailer.calls, "exactamente un envío por solicitud")
	assert.Equal(t, "Inventory Request: Request Refill", mailer.subject)
	assert.Contains(t, mailer.body, "N/A", "notas vacías se reportan como N/A")
	assert.Contains(t, mailer.body, "Requested by: pranat")
	assert.Contains(t, mailer.body, "Gloves")
}

func TestSend_ConNotas_CuerpoLasIncluye(t *testing.T) {
	mailer := &fakeMailer{}
	uc := request.NewRequestUseCase(mailer)

	_, err := uc.Send(context.Background(), requester, dto.SendRequestRequest{
		Type: entity.RequestNewItem, ItemName: "Lanyards", Quantity: 50, Notes: "urge para la feria",
	})
	require.NoError(t, err)

	assert.Equal(t, "Inventory Request: Request New Item", mailer.subject)
	assert.Contains(t, mailer.body, "urge para la feria")
	assert.NotContains(t, mailer.body, "N/A")
}

func TestSend_FalloDeTransporte_RetornaMailTransport(t *testing.T) {
	mailer := &fakeMailer{failWith: fmt.Errorf("%w: conexión rechazada", domain.ErrMailTransport)}
	uc := request.NewRequestUseCase(mailer)

	_, err := uc.Send(context.Background(), requester, dto.SendRequestRequest{
		Type: entity.RequestRefill, ItemName: "Gloves", Quantity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrMailTransport)
	assert.Equal(t, 1, mailer.calls, "sin reintentos tras un fallo")
}

func TestSend_EntradaInvalida_NoLlamaAlMailer(t *testing.T) {
	cases := []struct {
		name string
		in   dto.SendRequestRequest
	}{
		{"tipo desconocido", dto.SendRequestRequest{Type: "urgente", ItemName: "Gloves", Quantity: 1}},
		{"nombre vacío tras trim", dto.SendRequestRequest{Type: entity.RequestRefill, ItemName: "   ", Quantity: 1}},
		{"cantidad cero", dto.SendRequestRequest{Type: entity.RequestRefill, ItemName: "Gloves", Quantity: 0}},
		{"cantidad negativa", dto.SendRequestRequest{Type: entity.RequestRefill, ItemName: "Gloves", Quantity: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			uc := request.NewRequestUseCase(mailer)

			_, err := uc.Send(context.Background(), requester, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, mailer.calls)
		})
	}
}

func TestSend_SesionAnonima_RetornaUnauthorized(t *testing.T) {
	mailer := &fakeMailer{}
	uc := request.NewRequestUseCase(mailer)

	_, err := uc.Send(context.Background(), entity.NewSession(), dto.SendRequestRequest{
		Type: entity.RequestRefill, ItemName: "Gloves", Quantity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, mailer.calls)
}
