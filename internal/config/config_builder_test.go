package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBaseConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: "secret",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/expenses"},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
	}
}

func TestBuild_MergesSources(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validBaseConfig(),
		&StructuredConfig{App: App{TokenIssuer: "from-second-source"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "from-second-source", cfg.App.TokenIssuer)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	first := validBaseConfig()
	first.Server.HTTPAddress = "localhost:9000"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo.Merge does not override fields already set by earlier sources.
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBaseConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBaseConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	assert.Error(t, err)
}
