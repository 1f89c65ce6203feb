package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, 10*time.Second, cfg.RemoteAPI.Timeout)
	assert.Equal(t, "America/Sao_Paulo", cfg.Billing.Timezone)
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("STORE_BACKEND", "Redis")
	v.Set("REMOTE_API_URL", "https://api.example.com/")
	v.Set("REMOTE_API_TIMEOUT", "3")
	v.Set("REDIS_DB", 2)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, "https://api.example.com", cfg.RemoteAPI.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.RemoteAPI.Timeout)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestFromViper_BackendInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_BACKEND", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "estacionamento", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/estacionamento?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestBillingConfig_LocationInvalidaUsaLocal(t *testing.T) {
	assert.Equal(t, time.Local, BillingConfig{Timezone: "Marte/Olympus"}.Location())
	assert.Equal(t, "UTC", BillingConfig{Timezone: "UTC"}.Location().String())
}
