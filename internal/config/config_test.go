package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/EndpointLog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNew_MemoryDefaults(t *testing.T) {
	t.Setenv("APP_CONFIG_PATH", writeConfig(t, `
app:
  name: endpointlog
  version: 1.0.0
storage:
  driver: memory
`))

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "endpointlog", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "views.revalidate", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("APP_CONFIG_PATH", writeConfig(t, `
app:
  name: endpointlog
  version: 1.0.0
postgres:
  url: postgres://yaml
`))
	t.Setenv("PG_URL", "postgres://env")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.PG.URL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNew_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "postgres without url",
			body:    "app: {name: a, version: b}\n",
			wantErr: config.ErrMissingPGURL,
		},
		{
			name:    "unknown driver",
			body:    "app: {name: a, version: b}\nstorage: {driver: sqlite}\n",
			wantErr: config.ErrUnknownStorageDriver,
		},
		{
			name:    "kafka without brokers",
			body:    "app: {name: a, version: b}\nstorage: {driver: memory}\nkafka: {enabled: true}\n",
			wantErr: config.ErrMissingKafkaBrokers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_CONFIG_PATH", writeConfig(t, tc.body))
			t.Setenv("PG_URL", "")

			_, err := config.New()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
