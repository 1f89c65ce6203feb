package remoteapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamento-api/internal/domain"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/remoteapi"
	"github.com/jhoicas/Estacionamento-api/pkg/config"
)

func newClient(t *testing.T, h http.HandlerFunc) *remoteapi.CashClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return remoteapi.NewCashClient(config.RemoteAPIConfig{BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func TestCashClient_CajaAbierta(t *testing.T) {
	var gotPath, gotAuth string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cx-9","status":"OPEN","openingAmount":"150.5","operator":"ana","openedAt":"2025-07-10T08:00:00Z"}`))
	})

	cash, err := client.OpenCash(context.Background(), "tok-123")
	require.NoError(t, err)
	require.NotNil(t, cash)
	assert.Equal(t, "/caixa/aberto", gotPath)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "cx-9", cash.ID)
	assert.Equal(t, entity.CashOpen, cash.Status)
	assert.True(t, decimal.RequireFromString("150.5").Equal(cash.OpeningAmount))
}

func TestCashClient_SinCaja(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("null"))
	})
	cash, err := client.OpenCash(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, cash)

	client = newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	cash, err = client.OpenCash(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, cash)
}

func TestCashClient_Errores(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := client.OpenCash(context.Background(), "vencido")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	client = newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})
	_, err = client.OpenCash(context.Background(), "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	client = newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{no-json"))
	})
	_, err = client.OpenCash(context.Background(), "tok")
	assert.Error(t, err)

	_, err = remoteapi.NewCashClient(config.RemoteAPIConfig{}).OpenCash(context.Background(), "tok")
	assert.Error(t, err)
}
