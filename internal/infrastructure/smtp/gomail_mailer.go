package smtp

import (
	"context"
	"fmt"

	"github.com/invorya/inventario-lite/internal/application/request"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

var _ request.Mailer = (*GomailMailer)(nil)

// GomailMailer implementa el puerto Mailer sobre SMTP con SSL (submission, 465).
// From, To y credenciales vienen de la configuración del operador; un mensaje
// saliente por llamada, sin cola ni reintentos.
type GomailMailer struct {
	cfg config.SMTPConfig
}

// NewGomailMailer construye el mailer con la configuración SMTP.
func NewGomailMailer(cfg config.SMTPConfig) *GomailMailer {
	return &GomailMailer{cfg: cfg}
}

// Send envía un correo de texto plano al destinatario fijo. Cualquier fallo
// del transporte (red, auth, destinatario) se reporta como ErrMailTransport
// con la causa envuelta; los detalles no llegan al usuario final.
func (m *GomailMailer) Send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", m.cfg.Recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Sender, m.cfg.Password)
	dialer.SSL = true

	// gomail no acepta context; respetar una cancelación ya vencida antes de marcar.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailTransport, err)
	}
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailTransport, err)
	}
	return nil
}
