package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirhossein-jamali/gold-assistant/internal/domain/entity"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/usecase/assistant"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/llm"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	db     *database.TestDBManager
}

// newTestServer wires the real stack over a temp sqlite file and the canned provider
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	testDB := database.NewTestDBManager(t, log)

	rate, err := entity.NewGoldRate(entity.DefaultRatePerGram)
	require.NoError(t, err)

	client, err := llm.NewCompletionClient(context.Background(), config.LLMConfig{Provider: config.ProviderCanned}, log)
	require.NoError(t, err)

	purchases := purchase.NewPurchaseService(repository.NewPurchaseRepository(testDB.DB(), log), rate, tp, log)
	assistantService := assistant.NewAssistantService(client, config.ProviderCanned, log)

	router := NewRouter(log, tp, config.CORSConfig{AllowOrigins: []string{"*"}}, Handlers{
		Assistant: handler.NewAssistantHandler(assistantService, log),
		Purchase:  handler.NewPurchaseHandler(purchases, log),
		Health:    handler.NewHealthHandler(testDB.Manager, log),
	})

	return &testServer{router: router, db: testDB}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestPurchaseGoldEndToEnd(t *testing.T) {
	t.Run("Exact response and one new row", func(t *testing.T) {
		s := newTestServer(t)

		w := s.do(http.MethodPost, "/purchase-gold", `{"user_id":1,"amount":10}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":1,"amount":10,"status":"success"}`, w.Body.String())
		assert.Equal(t, int64(1), s.db.CountPurchases(t))
	})

	t.Run("N calls for one user give N rows", func(t *testing.T) {
		s := newTestServer(t)

		for i := 0; i < 5; i++ {
			w := s.do(http.MethodPost, "/purchase-gold", `{"user_id":7,"amount":250.5}`)
			require.Equal(t, http.StatusOK, w.Code)
		}
		assert.Equal(t, int64(5), s.db.CountPurchases(t))

		w := s.do(http.MethodGet, "/purchases/7", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Purchases []map[string]any `json:"purchases"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list.Purchases, 5)
	})

	t.Run("Missing fields are rejected without a write", func(t *testing.T) {
		s := newTestServer(t)

		for _, body := range []string{`{}`, `{"user_id":1}`, `{"amount":10}`} {
			w := s.do(http.MethodPost, "/purchase-gold", body)
			assert.GreaterOrEqual(t, w.Code, 400)
			assert.Less(t, w.Code, 500)
		}
		assert.Equal(t, int64(0), s.db.CountPurchases(t))
	})
}

func TestGoldAssistantEndToEnd(t *testing.T) {
	s := newTestServer(t)

	t.Run("Answer is non-empty", func(t *testing.T) {
		w := s.do(http.MethodPost, "/gold-assistant", `{"question":"Should I invest in gold?"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Answer string `json:"answer"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Answer)
	})

	t.Run("Empty question is still answered", func(t *testing.T) {
		w := s.do(http.MethodPost, "/gold-assistant", `{"question":""}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing question is a client error", func(t *testing.T) {
		w := s.do(http.MethodPost, "/gold-assistant", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSupportingRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("Root", func(t *testing.T) {
		w := s.do(http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/docs")
	})

	t.Run("Health", func(t *testing.T) {
		w := s.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("Swagger UI and OpenAPI document", func(t *testing.T) {
		ui := s.do(http.MethodGet, "/docs", "")
		assert.Equal(t, http.StatusOK, ui.Code)
		assert.Contains(t, ui.Body.String(), "/openapi.yaml")

		doc := s.do(http.MethodGet, "/openapi.yaml", "")
		assert.Equal(t, http.StatusOK, doc.Code)
		assert.Contains(t, doc.Body.String(), "/purchase-gold")
	})

	t.Run("Unknown route", func(t *testing.T) {
		w := s.do(http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"code":4040,"message":"Route not found"}`, w.Body.String())
	})

	t.Run("Wrong method", func(t *testing.T) {
		w := s.do(http.MethodGet, "/purchase-gold", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("Request ID is echoed", func(t *testing.T) {
		w := s.do(http.MethodGet, "/", "")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
