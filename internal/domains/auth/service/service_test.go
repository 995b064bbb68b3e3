package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"drive4less/config"
	"drive4less/infras/jwt"
	jwtMocks "drive4less/infras/jwt/mocks"
	"drive4less/infras/otel/mocks"
	"drive4less/internal/domains/auth/model/dto"
	"drive4less/internal/domains/auth/service"
	"drive4less/shared/failure"
	"drive4less/shared/password"
)

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := password.Hash("admin123")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		hash      string
		setupMock func(mockJWT *jwtMocks.MockJWT)
		wantErr   string
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Password: "admin123"},
			hash: passwordHash,
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					GenerateTokenPair().
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
						ExpiresIn:    900,
					}, nil)
			},
		},
		{
			name:      "wrong password",
			req:       dto.LoginRequest{Password: "letmein"},
			hash:      passwordHash,
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantErr:   "Invalid password",
		},
		{
			name:      "missing password hash refuses login",
			req:       dto.LoginRequest{Password: "admin123"},
			hash:      "",
			setupMock: func(_ *jwtMocks.MockJWT) {},
			wantErr:   "admin login is not configured",
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Password: "admin123"},
			hash: passwordHash,
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					GenerateTokenPair().
					Return(nil, errors.New("signing error"))
			},
			wantErr: "failed to generate tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockJWT := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(mockJWT)

			cfg := &config.Config{}
			cfg.Admin.PasswordHash = tt.hash

			svc := service.New(cfg, mocks.NewOtel(), mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.AccessToken)
				assert.Equal(t, "refresh-token", res.RefreshToken)
				assert.Equal(t, int64(900), res.ExpiresIn)
			}
		})
	}
}

func TestAuthService_Login_WrongPasswordIsUnauthorized(t *testing.T) {
	passwordHash, err := password.Hash("admin123")
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Admin.PasswordHash = passwordHash

	svc := service.New(cfg, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Password: "wrong"})

	assert.Error(t, err)
	assert.Equal(t, 401, failure.GetCode(err))
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockJWT *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "successful refresh",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					RefreshTokens("refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					RefreshTokens("refresh-token").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockJWT := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(mockJWT)

			svc := service.New(&config.Config{}, mocks.NewOtel(), mockJWT)

			res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access-token", res.AccessToken)
			}
		})
	}
}
