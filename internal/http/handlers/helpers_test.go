package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "github.com/NuryND000/backend-gr-coin-v3/internal/config"
	api "github.com/NuryND000/backend-gr-coin-v3/internal/http"
	"github.com/NuryND000/backend-gr-coin-v3/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

// newTestRouter wires the real router against a sqlmock database. The
// repositories fall back to the shared intconfig.DB handle, so swapping it
// is all the injection the handlers need.
func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = nil
		_ = db.Close()
	})

	return api.NewRouter(intconfig.Env{JWTSecret: testSecret}), mock
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, testSecret)
	if err != nil {
		t.Fatalf("gagal membuat token uji: %v", err)
	}
	return token
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("gagal hash password uji: %v", err)
	}
	return hash
}

var userRows = []string{"id", "username", "alamat", "wilayah", "tlp", "ewallet", "password", "role"}

func sqlmockTime() time.Time {
	return time.Date(2025, 6, 1, 10, 30, 0, 0, time.Local)
}
