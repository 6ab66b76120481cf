package gateway

import (
	"context"
	"net/http"
	"net/url"

	"printfront/internal/dto"
	"printfront/internal/entities"
	"printfront/pkg/types"
)

// historyEnvelope : enveloppe paginée renvoyée par le backend sur
// GET /orders/history.
type historyEnvelope struct {
	Orders      []entities.Order `json:"orders"`
	CurrentPage int              `json:"currentPage"`
	TotalPages  int              `json:"totalPages"`
	TotalOrders int              `json:"totalOrders"`
	HasPrevPage bool             `json:"hasPrevPage"`
	HasNextPage bool             `json:"hasNextPage"`
}

// ListHistory interroge l'historique archivé avec les filtres déjà encodés
// en paramètres de requête. Les commandes reviennent imbriquées (produits
// inclus) ; l'aplanissement en lignes est fait côté appelant.
func (c *Client) ListHistory(ctx context.Context, query url.Values) ([]entities.Order, types.Pagination, error) {
	var out historyEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/history", query, nil, &out); err != nil {
		return nil, types.Pagination{}, err
	}
	pagination := types.Pagination{
		CurrentPage: out.CurrentPage,
		TotalPages:  out.TotalPages,
		TotalOrders: out.TotalOrders,
		HasPrevPage: out.HasPrevPage,
		HasNextPage: out.HasNextPage,
	}
	return out.Orders, pagination, nil
}

// HistoryStats remonte les compteurs globaux de l'historique.
func (c *Client) HistoryStats(ctx context.Context) (*dto.HistoryStatsDTO, error) {
	var out dto.HistoryStatsDTO
	if err := c.do(ctx, http.MethodGet, "/orders/history/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
