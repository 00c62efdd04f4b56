package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
	"github.com/vendora/vendora-server/src/repositories/mock"
	"github.com/vendora/vendora-server/src/services"
)

func newOnboardingStack(repo *mock.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewOnboardingHandler(services.NewOnboardingService(repo))

	router := gin.New()
	router.POST("/onboarding/register", handler.HandleRegister)
	router.GET("/onboarding/check-email", handler.HandleCheckEmail)
	return router
}

// TestHandleRegister_Success tests self-registration and that the
// password never appears in the response
func TestHandleRegister_Success(t *testing.T) {
	repo := mock.NewUserRepository()
	var created *models.User
	repo.CreateFunc = func(ctx context.Context, user *models.User) error {
		created = user
		return nil
	}
	router := newOnboardingStack(repo)

	w := postJSON(router, "/onboarding/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if created.Role != models.RoleUser {
		t.Errorf("expected role USER, got %s", created.Role)
	}
	if strings.Contains(w.Body.String(), "password123") ||
		strings.Contains(w.Body.String(), created.PasswordHash) {
		t.Error("response must not leak the password or its hash")
	}
}

// TestHandleRegister_DuplicateEmail tests the conflict status
func TestHandleRegister_DuplicateEmail(t *testing.T) {
	repo := mock.NewUserRepository()
	repo.CreateFunc = func(ctx context.Context, user *models.User) error {
		return repositories.ErrDuplicateEmail
	}
	router := newOnboardingStack(repo)

	w := postJSON(router, "/onboarding/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123"}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", w.Code, w.Body.String())
	}
}

// TestHandleRegister_Validation tests body validation failures
func TestHandleRegister_Validation(t *testing.T) {
	router := newOnboardingStack(mock.NewUserRepository())

	for _, body := range []string{
		`{}`,
		`{"name":"Alice","email":"not-an-email","password":"password123"}`,
		`{"name":"Alice","email":"alice@example.com","password":"short"}`,
		`{"email":"alice@example.com","password":"password123"}`,
	} {
		w := postJSON(router, "/onboarding/register", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected status 400, got %d", body, w.Code)
		}
	}
}

// TestHandleCheckEmail tests both availability outcomes and the missing
// parameter
func TestHandleCheckEmail(t *testing.T) {
	repo := mock.NewUserRepository()
	repo.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if email == "taken@example.com" {
			return &models.User{Email: email}, nil
		}
		return nil, repositories.ErrNotFound
	}
	router := newOnboardingStack(repo)

	cases := []struct {
		query    string
		code     int
		contains string
	}{
		{"?email=taken@example.com", http.StatusOK, `"isAvailable":false`},
		{"?email=free@example.com", http.StatusOK, `"isAvailable":true`},
		{"", http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/onboarding/check-email"+tc.query, nil)
		router.ServeHTTP(w, req)

		if w.Code != tc.code {
			t.Errorf("query %q: expected status %d, got %d", tc.query, tc.code, w.Code)
			continue
		}
		if tc.contains != "" && !strings.Contains(w.Body.String(), tc.contains) {
			t.Errorf("query %q: expected body to contain %s, got %s", tc.query, tc.contains, w.Body.String())
		}
	}
}
