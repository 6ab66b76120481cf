package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "printfront/pkg/errors"
	"printfront/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// PaginatedResponse renvoie une liste avec les métadonnées de pagination
// telles que le backend les fournit.
func PaginatedResponse(ctx echo.Context, body interface{}, message string, pagination types.Pagination) error {
	return ctx.JSON(http.StatusOK, &types.ResponsePagination{
		Status:      true,
		Body:        body,
		Message:     message,
		CurrentPage: pagination.CurrentPage,
		TotalPages:  pagination.TotalPages,
		TotalOrders: pagination.TotalOrders,
		HasPrevPage: pagination.HasPrevPage,
		HasNextPage: pagination.HasNextPage,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		// Échec de validation du formulaire : message affiché tel quel,
		// aucun appel réseau n'a eu lieu.
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": valErr.Message,
			"row":     valErr.Row,
		})
	}

	var backendErr *apperrors.BackendError
	if errors.As(err, &backendErr) {
		logger.Error("Erreur backend", zap.Int("code", backendErr.StatusCode), zap.String("message", backendErr.Message))
		return c.JSON(apperrors.HTTPCode(backendErr), map[string]interface{}{
			"status":  false,
			"message": backendErr.Error(),
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Le champ '%s' n'a pas passé le contrôle '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"status": false, "message": "Erreur de validation: " + strings.Join(msgs, "; ")})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Erreur interne du serveur",
	})
}
