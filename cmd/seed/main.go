// Herramienta de aprovisionamiento: crea el esquema y da de alta usuarios con
// hash bcrypt. Los usuarios se gestionan solo desde aquí; la API nunca los escribe.
//
//	go run ./cmd/seed -username admin -password <secreto> -role admin
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventario-lite/internal/domain"
	"github.com/invorya/inventario-lite/internal/domain/entity"
	"github.com/invorya/inventario-lite/internal/infrastructure/postgres"
	"github.com/invorya/inventario-lite/pkg/config"
	"github.com/invorya/inventario-lite/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "username del usuario a crear")
	password := flag.String("password", "", "password en claro (se almacena solo el hash bcrypt)")
	role := flag.String("role", entity.RoleUser, "rol: admin o user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Name: cfg.App.Name + "-seed"})

	if *username == "" || *password == "" {
		log.Fatal().Msg("se requieren -username y -password")
	}
	if len(*password) < 8 {
		log.Fatal().Msg("password debe tener al menos 8 caracteres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     *username,
		PasswordHash: string(hash),
		Role:         entity.NormalizeRole(*role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userRepo := postgres.NewUserRepository(pool)
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Str("username", user.Username).Msg("el usuario ya existe")
		}
		log.Fatal().Err(err).Msg("crear usuario")
	}

	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
}
