package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"admin": map[string]any{
			"bulkDeleteMode":    "best_effort",
			"vipSpendThreshold": 300,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ADMIN_BULKDELETEMODE", want: "admin.bulkDeleteMode"},
		{envKey: "ADMIN_VIPSPENDTHRESHOLD", want: "admin.vipSpendThreshold"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyAdminDefaults(t *testing.T) {
	t.Run("nil section", func(t *testing.T) {
		admin := applyAdminDefaults(nil)

		require.NotNil(t, admin)
		assert.Equal(t, defaultAccessTokenTTL, admin.AccessTokenTTL)
		assert.Equal(t, "best_effort", admin.BulkDeleteMode)
		assert.Equal(t, defaultMaxBulkDelete, admin.MaxBulkDelete)
		assert.Equal(t, 3, admin.VIPOrderThreshold)
		assert.InDelta(t, 300.0, admin.VIPSpendThreshold, 0.001)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		admin := applyAdminDefaults(&AdminConfig{
			AccessTokenTTL:    time.Hour,
			BulkDeleteMode:    "all_or_nothing",
			MaxBulkDelete:     10,
			VIPOrderThreshold: 5,
			VIPSpendThreshold: 1000,
		})

		assert.Equal(t, time.Hour, admin.AccessTokenTTL)
		assert.Equal(t, "all_or_nothing", admin.BulkDeleteMode)
		assert.Equal(t, 10, admin.MaxBulkDelete)
		assert.Equal(t, 5, admin.VIPOrderThreshold)
		assert.InDelta(t, 1000.0, admin.VIPSpendThreshold, 0.001)
	})
}

func TestLoadWithEnv_OverridesYAMLFromEnvironment(t *testing.T) {
	t.Setenv("ADMIN_BULKDELETEMODE", "all_or_nothing")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "backoffice", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Admin)
	assert.Equal(t, "all_or_nothing", cfg.Admin.BulkDeleteMode)
	assert.Equal(t, 12*time.Hour, cfg.Admin.AccessTokenTTL)
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// Index 2 has no port, so 3 is never reached.
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5435",
	}
	lookup := func(key string) (string, bool) {
		v, ok := vars[key]

		return v, ok
	}

	replicas := replicasFromEnv(lookup)

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
	assert.Empty(t, replicas[1].Password)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")

	assert.ErrorContains(t, err, "does-not-exist.yaml not found")
}
