package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"printfront/internal/dto"
	"printfront/internal/entities"

	"go.uber.org/zap"
)

// Données de référence des formulaires. Un échec de chargement est logué et
// se dégrade silencieusement en liste vide : pas de bannière bloquante pour
// une liste déroulante.

// ListProducts remonte une page du catalogue produits.
func (c *Client) ListProducts(ctx context.Context, page, limit int) []entities.Product {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var out dto.ProductListDTO
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &out); err != nil {
		c.logger.Warn("chargement des produits échoué, liste vide", zap.Error(err))
		return nil
	}
	return out.List
}

// ListUsers remonte les utilisateurs, optionnellement filtrés par rôle.
func (c *Client) ListUsers(ctx context.Context, role string) []entities.User {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}

	var out dto.UserListDTO
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &out); err != nil {
		c.logger.Warn("chargement des utilisateurs échoué, liste vide", zap.Error(err))
		return nil
	}
	return out.List
}

// ListSuppliers remonte les fournisseurs actifs.
func (c *Client) ListSuppliers(ctx context.Context) []entities.Supplier {
	query := url.Values{}
	query.Set("actif", "true")

	var out dto.SupplierListDTO
	if err := c.do(ctx, http.MethodGet, "/suppliers", query, nil, &out); err != nil {
		c.logger.Warn("chargement des fournisseurs échoué, liste vide", zap.Error(err))
		return nil
	}
	return out.List
}

// ListFinitions remonte le référentiel des finitions.
func (c *Client) ListFinitions(ctx context.Context) []entities.Finition {
	var out dto.FinitionListDTO
	if err := c.do(ctx, http.MethodGet, "/finitions", nil, nil, &out); err != nil {
		c.logger.Warn("chargement des finitions échoué, liste vide", zap.Error(err))
		return nil
	}
	return out.List
}
