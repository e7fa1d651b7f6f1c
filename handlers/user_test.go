package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dochouse/config"
	"dochouse/middleware"
	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAccountService keeps users in memory and enforces email
// uniqueness like the real service.
type fakeAccountService struct {
	users map[string]models.User
}

func newFakeAccountService() *fakeAccountService {
	return &fakeAccountService{users: map[string]models.User{}}
}

func (f *fakeAccountService) ListUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeAccountService) CreateUser(user *models.User) (primitive.ObjectID, error) {
	if _, exists := f.users[user.Email]; exists {
		return primitive.NilObjectID, utils.NewError(utils.ErrConflict, "user already exists")
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = *user
	return user.ID, nil
}

func (f *fakeAccountService) SetRole(id, role string) error { return nil }
func (f *fakeAccountService) DeleteUser(id string) error    { return nil }

func (f *fakeAccountService) IsAdmin(email string) (bool, error) {
	return f.users[email].Role == "admin", nil
}

func userTestRouter(accounts *fakeAccountService) *gin.Engine {
	h := NewUserHandler(accounts)
	r := gin.New()
	r.POST("/jwt", IssueTokenHandler)
	r.POST("/users", h.CreateUserHandler)
	r.GET("/users/admin/:email", middleware.JWTAuthMiddleware(), h.CheckAdminHandler)
	return r
}

func TestTokenThenAdminCheckForUnknownUser(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := userTestRouter(newFakeAccountService())

	// Issue a token for an identity that has no user record.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"userEmail":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// The admin check answers false rather than failing.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAdmin":false}`, w.Body.String())
}

func TestAdminCheckEmailMismatch(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := userTestRouter(newFakeAccountService())

	token, err := utils.IssueToken(map[string]interface{}{"email": "a@x.com"}, utils.TokenTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/b@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateUserConflict(t *testing.T) {
	r := userTestRouter(newFakeAccountService())

	post := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"A","email":"a@x.com"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, post().Code)

	w := post()
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateUserRequiresEmail(t *testing.T) {
	r := userTestRouter(newFakeAccountService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
