package errors

import (
	"fmt"
	"net/http"
)

var (
	// Session et jetons
	ErrInvalidSigningMethod = fmt.Errorf("méthode de signature du jeton invalide")
	ErrInvalidToken         = fmt.Errorf("jeton de session invalide")
	ErrTokenExpired         = fmt.Errorf("la session a expiré")
	ErrEmptyAuthHeader      = fmt.Errorf("en-tête d'autorisation absent")
	ErrInvalidAuthHeader    = fmt.Errorf("format de l'en-tête d'autorisation invalide")
	ErrForbidden            = fmt.Errorf("accès refusé")

	// Contexte
	ErrUserNotFoundInContext = fmt.Errorf("utilisateur absent du contexte de la requête")
	ErrUnknownRole           = fmt.Errorf("rôle utilisateur inconnu")

	// Générales
	ErrNotFound   = fmt.Errorf("enregistrement introuvable")
	ErrBadRequest = fmt.Errorf("requête invalide")

	// Passerelle backend
	ErrBackendUnavailable = fmt.Errorf("le serveur est injoignable")
)

// HttpError porte le code HTTP, le message utilisateur et le contexte de log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// ValidationError : échec de la validation ordonnée du formulaire de commande.
// Row vaut 0 pour une erreur niveau commande, sinon l'index 1-indexé du produit.
type ValidationError struct {
	Row     int
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(row int, format string, args ...interface{}) error {
	return &ValidationError{Row: row, Message: fmt.Sprintf(format, args...)}
}

// BackendError : échec renvoyé par le backend sur une mutation. Le message
// backend est affiché tel quel quand il existe, sinon le repli générique.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Une erreur est survenue, veuillez réessayer"
}

func NewBackendError(statusCode int, message string) *BackendError {
	return &BackendError{StatusCode: statusCode, Message: message}
}

// HTTPCode traduit une erreur quelconque en code HTTP pour la réponse.
func HTTPCode(err error) int {
	switch e := err.(type) {
	case *HttpError:
		return e.Code
	case *ValidationError:
		return http.StatusBadRequest
	case *BackendError:
		if e.StatusCode > 0 {
			return e.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
