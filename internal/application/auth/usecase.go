package auth

import (
	"context"

	"github.com/invorya/inventario-lite/internal/application/dto"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
	"github.com/invorya/inventario-lite/internal/domain/repository"
	"github.com/invorya/inventario-lite/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y logout.
// El alta de usuarios no pasa por aquí: los aprovisiona cmd/seed.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt, genera JWT y retorna
// token + sesión poblada. Credenciales malas devuelven ErrUnauthorized sin
// distinguir entre usuario inexistente y password incorrecta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	role := entity.NormalizeRole(user.Role)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	session := entity.AuthenticatedSession(user.Username, role)
	return &dto.LoginResponse{
		Token:   token,
		Session: ToSessionResponse(session),
	}, nil
}

// Logout resetea la sesión a sus valores por defecto. Idempotente: hacer
// logout de una sesión ya anónima la deja igual.
func (uc *AuthUseCase) Logout(session *entity.Session) entity.Session {
	session.Reset()
	return *session
}

// ToSessionResponse proyecta la sesión al shape visible por el cliente.
func ToSessionResponse(s entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Authenticated: s.Authenticated,
		Username:      s.Username,
		Role:          s.Role,
	}
}
