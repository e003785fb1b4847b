package entity

// Session es el estado de autenticación de quien invoca una operación.
// Se pasa explícito a los casos de uso (nunca estado ambiente); sobre HTTP
// se reconstruye por request desde los claims del JWT.
type Session struct {
	Authenticated bool
	Username      string
	Role          string
}

// NewSession devuelve una sesión anónima con los valores por defecto.
func NewSession() Session {
	return Session{Authenticated: false, Username: "", Role: RoleUser}
}

// AuthenticatedSession construye la sesión de un usuario ya verificado.
func AuthenticatedSession(username, role string) Session {
	return Session{Authenticated: true, Username: username, Role: NormalizeRole(role)}
}

// Reset vuelve la sesión a los valores por defecto. Es idempotente:
// resetear una sesión anónima la deja igual.
func (s *Session) Reset() {
	*s = NewSession()
}

// IsAdmin indica si la sesión puede mutar el inventario.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}
