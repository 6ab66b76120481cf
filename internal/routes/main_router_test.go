package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"printfront/internal/gateway"
	"printfront/internal/history"
	"printfront/internal/realtime"
	"printfront/pkg/config"
	"printfront/pkg/service"
	"printfront/pkg/utils"

	"github.com/go-playground/validator/v10"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

const testSecret = "secret-de-test"

// RouterTestSuite monte la surface HTTP complète devant un faux backend et
// exerce les routes avec de vrais jetons de session.
type RouterTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Backend *httptest.Server

	mu             sync.Mutex
	historyQueries []url.Values
}

func (s *RouterTestSuite) recordHistoryQuery(q url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyQueries = append(s.historyQueries, q)
}

func (s *RouterTestSuite) recordedHistoryQueries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.historyQueries...)
}

func (s *RouterTestSuite) resetHistoryQueries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyQueries = nil
}

func (s *RouterTestSuite) SetupSuite() {
	s.Backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/orders/history":
			s.recordHistoryQuery(r.URL.Query())
			w.Write([]byte(`{
				"orders": [{
					"id": 1, "numero_affaire": "AFF-001", "statut": "livre",
					"orderProducts": [{"id": 10, "order_id": 1, "quantity": 2}]
				}],
				"currentPage": 1, "totalPages": 1, "totalOrders": 1,
				"hasPrevPage": false, "hasNextPage": false
			}`))
		case r.Method == http.MethodGet && r.URL.Path == "/orders/history/stats":
			w.Write([]byte(`{"totalOrders": 1, "countsByStatus": {"livre": 1}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/orders":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"order": {"id": 99, "statut": "en_cours"}}`))
		case r.Method == http.MethodPut:
			w.Write([]byte(`{}`))
		default:
			w.Write([]byte(`{"list": []}`))
		}
	}))

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())

	nopLogger := zap.NewNop()
	loggers := &Loggers{Main: nopLogger, Auth: nopLogger, Order: nopLogger, History: nopLogger}

	gw := gateway.NewClient(config.BackendConfig{
		BaseURL:     s.Backend.URL,
		HTTPTimeout: 2 * time.Second,
	}, nopLogger)
	historyService := history.NewService(gw, nopLogger)
	hub := realtime.NewHub(nopLogger)
	go hub.Run()
	jwtSvc := service.NewJWTService(testSecret)

	InitRouter(e, gw, historyService, hub, jwtSvc, loggers)
	s.Echo = e
}

func (s *RouterTestSuite) TearDownSuite() {
	s.Backend.Close()
}

func (s *RouterTestSuite) tokenFor(role string) string {
	claims := &service.SessionClaims{
		UserID: 1,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) request(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestHistoryRequiresToken() {
	rec := s.request(http.MethodGet, "/api/history/orders", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestHistoryRejectsForgedToken() {
	claims := &service.SessionClaims{UserID: 1, Role: "admin"}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("autre-secret"))
	s.Require().NoError(err)

	rec := s.request(http.MethodGet, "/api/history/orders", forged, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestHistoryFlattensRows() {
	rec := s.request(http.MethodGet, "/api/history/orders?statut=livre", s.tokenFor("admin"), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Status      bool                     `json:"status"`
		Body        []map[string]interface{} `json:"body"`
		TotalOrders int                      `json:"totalOrders"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Status)
	s.Require().Len(body.Body, 1)
	s.Equal("AFF-001", body.Body[0]["numero_affaire"])
	s.Equal("livre", body.Body[0]["statut"])
	s.Equal(1, body.TotalOrders)
}

func (s *RouterTestSuite) TestHistoryStats() {
	rec := s.request(http.MethodGet, "/api/history/stats", s.tokenFor("commercial"), nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestVisibilityPerRole() {
	rec := s.request(http.MethodGet, "/api/visibility", s.tokenFor("atelier"), nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Body struct {
			Role         string          `json:"role"`
			Capabilities map[string]bool `json:"capabilities"`
		} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("atelier", body.Body.Role)
	s.True(body.Body.Capabilities["filterMachineImpression"])
	s.False(body.Body.Capabilities["inlineEditStatus"])
}

func (s *RouterTestSuite) TestCreateOrderHappyPath() {
	productID := uint64(5)
	clientID := uint64(3)
	payload := map[string]interface{}{
		"client_id":              clientID,
		"date_livraison_estimee": "2026-09-15T10:00",
		"products": []map[string]interface{}{{
			"product_id":       productID,
			"quantity":         3,
			"atelier_concerne": "petit format",
			"bat":              "avec",
			"express":          "non",
			"pack_fin_annee":   "non",
		}},
	}
	rec := s.request(http.MethodPost, "/api/orders", s.tokenFor("admin"), payload)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) TestCreateOrderWithoutClientFails() {
	payload := map[string]interface{}{
		"products": []map[string]interface{}{{"product_id": 5, "quantity": 1}},
	}
	rec := s.request(http.MethodPost, "/api/orders", s.tokenFor("admin"), payload)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestInlineStatusEditReservedToAdmin() {
	payload := map[string]string{"statut": "annule", "statut_precedent": "livre"}

	rec := s.request(http.MethodPatch, "/api/history/orders/1/products/10/status", s.tokenFor("commercial"), payload)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.request(http.MethodPatch, "/api/history/orders/1/products/10/status", s.tokenFor("admin"), payload)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *RouterTestSuite) TestInlineStatusRejectsUnknownValue() {
	payload := map[string]string{"statut": "inexistant"}
	rec := s.request(http.MethodPatch, "/api/history/orders/1/products/10/status", s.tokenFor("admin"), payload)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestHistoryExportIsSpreadsheet() {
	rec := s.request(http.MethodGet, "/api/history/export", s.tokenFor("admin"), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	s.Contains(rec.Header().Get("Content-Disposition"), ".xlsx")
}

func (s *RouterTestSuite) TestExportDoesNotAlterRefreshQuery() {
	token := s.tokenFor("admin")

	rec := s.request(http.MethodGet, "/api/history/orders?limit=25&statut=livre", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/history/export", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.resetHistoryQueries()
	rec = s.request(http.MethodGet, "/api/history/refresh", token, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	queries := s.recordedHistoryQueries()
	s.Require().Len(queries, 1)
	s.Equal("25", queries[0].Get("limit"))
	s.Equal("livre", queries[0].Get("statut"))
}

func (s *RouterTestSuite) TestReferenceListsAlwaysRespond() {
	rec := s.request(http.MethodGet, "/api/references/products", s.tokenFor("infograph"), nil)
	s.Equal(http.StatusOK, rec.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
