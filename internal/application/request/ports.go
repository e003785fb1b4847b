package request

import "context"

// Mailer es el contrato mínimo de transporte de correo que necesita el caso
// de uso. Un Send por solicitud: sin cola, sin reintentos, sin confirmación
// de entrega. From y To los fija la configuración del operador.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}
