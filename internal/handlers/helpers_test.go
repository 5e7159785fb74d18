package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todolist-api/internal/config"
	"github.com/yukikurage/todolist-api/internal/repository"
	"github.com/yukikurage/todolist-api/internal/testutil"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:  config.EnvTest,
		FrontendURL:  "http://localhost:3000",
		JWTSecret:    "test-secret",
		JWTExpiresIn: 24 * time.Hour,
		BCryptCost:   bcrypt.MinCost,
	}
}

// newTestRouter builds the full router over a fresh in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	r := NewRouter(testConfig(), testutil.DiscardLogger(), repository.NewUserRepository(db), repository.NewTaskRepository(db))
	return r, db
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

type response struct {
	Code int
	Body envelope
}

func (r response) errorMessage() string {
	if r.Body.Error == nil {
		return ""
	}
	return *r.Body.Error
}

func (r response) decode(t *testing.T, dst any) {
	t.Helper()
	require.True(t, r.Body.Success, "expected success, got error %q", r.errorMessage())
	require.NoError(t, json.Unmarshal(r.Body.Data, dst))
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(encoded)
		}
		reader = bytes.NewReader([]byte(raw))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if env.Success {
		require.Nil(t, env.Error)
	} else {
		require.Equal(t, "null", string(env.Data))
	}
	return response{Code: w.Code, Body: env}
}
