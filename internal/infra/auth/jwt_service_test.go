package auth

import (
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
		Admin:     &config.AdminConfig{AccessTokenTTL: time.Hour},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken("ops@shop.pt", []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@shop.pt", claims.Subject)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, time.Hour, jwtService.GetAccessTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_very_long_for_testing"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherService.GenerateAccessToken("ops@shop.pt", []string{"admin"})
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.GenerateAccessToken("ops@shop.pt", []string{"admin"})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestNewJWTService_SecretRules(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr bool
	}{
		{name: "empty secret", env: constants.EnvDevelop, secret: "", wantErr: true},
		{name: "short secret in develop", env: constants.EnvDevelop, secret: "dev"},
		{name: "short secret in production", env: constants.EnvProduction, secret: "change-me", wantErr: true},
		{name: "long secret in production", env: constants.EnvProduction, secret: "0123456789abcdef0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.Env.Env = tt.env
			cfg.SecretKey.Access = tt.secret

			svc, err := NewJWTService(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}
