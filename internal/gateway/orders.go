package gateway

import (
	"context"
	"fmt"
	"net/http"

	"printfront/internal/dto"
	"printfront/internal/entities"

	"github.com/aarondl/null/v8"
)

// CreateOrder envoie la création d'une affaire neuve : un seul appel
// embarque les champs commande et la liste produits complète.
func (c *Client) CreateOrder(ctx context.Context, payload *dto.CreateOrderDTO) (*entities.Order, error) {
	var out struct {
		Order entities.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// GetOrder recharge une affaire, produits inclus.
func (c *Client) GetOrder(ctx context.Context, orderID uint64) (*entities.Order, error) {
	var out struct {
		Order entities.Order `json:"order"`
	}
	path := fmt.Sprintf("/orders/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

// UpdateOrderProduct met à jour une seule ligne produit d'une affaire
// existante avec un jeu de champs partiel, finitions incluses.
func (c *Client) UpdateOrderProduct(ctx context.Context, orderID, orderProductID uint64, payload *dto.UpdateOrderProductDTO) error {
	path := fmt.Sprintf("/orders/%d/products/%d", orderID, orderProductID)
	return c.do(ctx, http.MethodPut, path, nil, payload, nil)
}

// UpdateOrderProductStatus ne touche que le statut de la ligne ; utilisé par
// l'édition inline de l'historique.
func (c *Client) UpdateOrderProductStatus(ctx context.Context, orderID, orderProductID uint64, statut string) error {
	payload := &dto.UpdateOrderProductDTO{Statut: null.StringFrom(statut)}
	return c.UpdateOrderProduct(ctx, orderID, orderProductID, payload)
}

// DeleteOrder supprime une affaire.
func (c *Client) DeleteOrder(ctx context.Context, orderID uint64) error {
	path := fmt.Sprintf("/orders/%d", orderID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
