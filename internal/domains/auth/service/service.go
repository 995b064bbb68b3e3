package service

import (
	"context"
	"fmt"

	"drive4less/config"
	"drive4less/infras/jwt"
	"drive4less/infras/otel"
	"drive4less/internal/domains/auth/model/dto"
	"drive4less/shared/constant"
	"drive4less/shared/failure"
	"drive4less/shared/password"

	"github.com/rs/zerolog/log"
)

// Auth guards the admin area. The dealership runs a single shared admin
// account, so login is a password check against the configured hash rather
// than a user lookup.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	passwordHash := s.cfg.Admin.PasswordHash
	if passwordHash == constant.Empty {
		log.Error().Msg("admin password hash is not configured")

		return res, failure.Unauthorized("admin login is not configured")
	}

	if err := password.Verify(req.Password, passwordHash); err != nil {
		log.Warn().Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized("Invalid password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
