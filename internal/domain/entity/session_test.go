package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/inventario-lite/internal/domain/entity"
)

func TestNewSession_Defaults(t *testing.T) {
	s := entity.NewSession()

	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Username)
	assert.Equal(t, entity.RoleUser, s.Role)
	assert.False(t, s.IsAdmin())
}

func TestReset_VuelveADefaultsYEsIdempotente(t *testing.T) {
	s := entity.AuthenticatedSession("david", entity.RoleAdmin)

	s.Reset()
	assert.Equal(t, entity.NewSession(), s)

	// Reset sobre una sesión ya anónima no cambia nada.
	s.Reset()
	assert.Equal(t, entity.NewSession(), s)
}

func TestAuthenticatedSession_NormalizaRol(t *testing.T) {
	s := entity.AuthenticatedSession("ana", "superuser")
	assert.Equal(t, entity.RoleUser, s.Role, "rol desconocido degrada a user")
	assert.False(t, s.IsAdmin())

	s = entity.AuthenticatedSession("david", entity.RoleAdmin)
	assert.True(t, s.IsAdmin())
}

func TestIsAdmin_RequiereAutenticacion(t *testing.T) {
	// Una sesión con rol admin pero sin autenticar no puede mutar.
	s := entity.Session{Authenticated: false, Username: "", Role: entity.RoleAdmin}
	assert.False(t, s.IsAdmin())
}
