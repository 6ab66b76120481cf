// Fichier: internal/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"printfront/pkg/config"
	"printfront/pkg/contextkeys"
	apperrors "printfront/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client parle au backend REST du système de gestion. Tous les horodatages
// traversent la frontière en ISO-8601 absolu ; le jeton de session de
// l'utilisateur est retransmis tel quel.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// backendEnvelope : enveloppe minimale des réponses d'erreur backend.
type backendEnvelope struct {
	Message string `json:"message"`
}

// do exécute un appel JSON. Aucune nouvelle tentative : chaque échec exige
// une nouvelle action utilisateur.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sérialisation de la requête: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("construction de la requête: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, _ := ctx.Value(contextkeys.UserTokenKey).(string); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend injoignable", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("lecture de la réponse: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope backendEnvelope
		_ = json.Unmarshal(raw, &envelope)
		c.logger.Warn("erreur backend",
			zap.String("endpoint", endpoint),
			zap.Int("code", resp.StatusCode),
			zap.String("message", envelope.Message),
		)
		return apperrors.NewBackendError(resp.StatusCode, envelope.Message)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("désérialisation de la réponse: %w", err)
		}
	}
	return nil
}
