package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhartwg/scoutbase/config"
)

type stubAuthRepository struct {
	byEmail    map[string]*User
	byUsername map[string]*User
	lookupErr  error
	created    *User
}

func (r *stubAuthRepository) CreateUser(user *User) error {
	user.ID = 1
	r.created = user
	return nil
}

func (r *stubAuthRepository) GetUserByID(id uint) (*User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAuthRepository) GetUserByEmail(email string) (*User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAuthRepository) GetUserByUsername(username string) (*User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func registerRequest(t *testing.T, repo AuthRepository, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "test-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 60
	controller := NewAuthController(repo, cfg)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	controller.Register(c)
	return w
}

func TestRegister(t *testing.T) {
	const validBody = `{"username": "scout1", "email": "scout@example.com", "password": "super-geheim"}`

	t.Run("creates the account when the address is free", func(t *testing.T) {
		repo := &stubAuthRepository{}
		w := registerRequest(t, repo, validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, repo.created)
		assert.Equal(t, "scout1", repo.created.Username)
		assert.NotEqual(t, "super-geheim", repo.created.PasswordHash)
		assert.Contains(t, w.Body.String(), "access_token")
	})

	t.Run("taken email is a conflict", func(t *testing.T) {
		repo := &stubAuthRepository{byEmail: map[string]*User{
			"scout@example.com": {Username: "other"},
		}}
		w := registerRequest(t, repo, validBody)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("taken username is a conflict", func(t *testing.T) {
		repo := &stubAuthRepository{byUsername: map[string]*User{
			"scout1": {Username: "scout1"},
		}}
		w := registerRequest(t, repo, validBody)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("a failing lookup is a server error, not a conflict", func(t *testing.T) {
		repo := &stubAuthRepository{lookupErr: errors.New("connection refused")}
		w := registerRequest(t, repo, validBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Nil(t, repo.created)
	})

	t.Run("validation failures report fields", func(t *testing.T) {
		w := registerRequest(t, &stubAuthRepository{}, `{"username": "s", "email": "not-an-email", "password": "x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "fields")
	})
}
