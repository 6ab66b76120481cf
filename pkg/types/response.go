package types

// ResponsePagination enveloppe une liste paginée dans la réponse HTTP.
type ResponsePagination struct {
	Status      bool        `json:"status"`
	Body        interface{} `json:"body,omitempty"`
	Message     string      `json:"message"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalOrders int         `json:"totalOrders"`
	HasPrevPage bool        `json:"hasPrevPage"`
	HasNextPage bool        `json:"hasNextPage"`
}
