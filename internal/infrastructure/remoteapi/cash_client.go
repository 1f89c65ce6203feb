// Package remoteapi cliente de la API remota del estacionamiento (caja, vehículos).
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Estacionamento-api/internal/application/cashstatus"
	"github.com/jhoicas/Estacionamento-api/internal/domain"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/pkg/config"
)

var _ cashstatus.RemoteSource = (*CashClient)(nil)

// openCashPath recurso que devuelve la caja abierta (JSON) o null / 404 si no hay.
const openCashPath = "/caixa/aberto"

// maxBodyBytes límite de lectura de respuestas.
const maxBodyBytes = 1 << 20

// CashClient consulta la caja abierta reenviando el token Bearer del usuario.
type CashClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCashClient construye el cliente. Timeout 0 = 10 s.
func NewCashClient(cfg config.RemoteAPIConfig) *CashClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CashClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// OpenCash devuelve la caja abierta o nil si no hay ninguna.
// 401/403 del remoto se traducen a domain.ErrUnauthorized.
func (c *CashClient) OpenCash(ctx context.Context, token string) (*entity.CashRecord, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("remote API: REMOTE_API_URL no configurado")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+openCashPath, nil)
	if err != nil {
		return nil, fmt.Errorf("remote API: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("remote API: leer respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("remote API: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var cash entity.CashRecord
	if err := json.Unmarshal(trimmed, &cash); err != nil {
		return nil, fmt.Errorf("remote API: decodificar caja: %w", err)
	}
	return &cash, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
