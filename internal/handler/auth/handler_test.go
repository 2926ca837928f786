package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/salon-api/internal/handler"
	"github.com/jwalitptl/salon-api/internal/repository/docstore"
	"github.com/jwalitptl/salon-api/internal/service/auth"
	"github.com/jwalitptl/salon-api/internal/store/memory"
	"github.com/jwalitptl/salon-api/pkg/clock"
	apperrors "github.com/jwalitptl/salon-api/pkg/errors"
	"github.com/jwalitptl/salon-api/pkg/metrics"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handler.RegisterValidations())

	docs := memory.New()
	repo := docstore.NewAccountRepository(docstore.NewBaseRepository(docs, clock.System()))
	svc := auth.NewService(repo, metrics.NewMetrics("test", prometheus.NewRegistry()))

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestRegisterThenLogin(t *testing.T) {
	engine := newTestEngine(t)

	w, resp := doJSON(t, engine, "/api/v1/auth/register", map[string]string{
		"phone":    "0900000000",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)

	w, resp = doJSON(t, engine, "/api/v1/auth/login", map[string]string{
		"phone":    "0900000000",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Route string `json:"route"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	assert.Equal(t, "customer", login.Route)
}

func TestLoginFailures(t *testing.T) {
	engine := newTestEngine(t)

	w, _ := doJSON(t, engine, "/api/v1/auth/register", map[string]string{
		"phone":    "0900000000",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name       string
		phone      string
		password   string
		wantStatus int
		wantCode   apperrors.ErrorCode
	}{
		{"empty credentials", "", "", http.StatusBadRequest, apperrors.ErrMissingCredentials},
		{"empty password", "0900000000", "", http.StatusBadRequest, apperrors.ErrMissingCredentials},
		{"unknown phone", "0911111111", "secret", http.StatusUnauthorized, apperrors.ErrUnknownPhone},
		{"wrong password", "0900000000", "nope", http.StatusUnauthorized, apperrors.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doJSON(t, engine, "/api/v1/auth/login", map[string]string{
				"phone":    tt.phone,
				"password": tt.password,
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, int(tt.wantCode), resp.Error.Code)
		})
	}
}

func TestRegisterRejectsMalformedPhone(t *testing.T) {
	engine := newTestEngine(t)

	for _, phone := range []string{"12ab567890", "123", "+123456789012345"} {
		w, resp := doJSON(t, engine, "/api/v1/auth/register", map[string]string{
			"phone":    phone,
			"password": "secret",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code, "phone %q", phone)
		require.NotNil(t, resp.Error)
		assert.Equal(t, int(apperrors.ErrInvalidInput), resp.Error.Code)
	}
}

func TestRegisterRejectsEmptyPassword(t *testing.T) {
	engine := newTestEngine(t)

	w, resp := doJSON(t, engine, "/api/v1/auth/register", map[string]string{
		"phone":    "0900000000",
		"password": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, int(apperrors.ErrInvalidInput), resp.Error.Code)
}
