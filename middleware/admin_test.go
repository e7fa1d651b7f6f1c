package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dochouse/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAccounts answers IsAdmin from a fixed set of admin emails.
type fakeAccounts struct {
	admins map[string]bool
}

func (f *fakeAccounts) ListUsers() ([]models.User, error) { return nil, nil }
func (f *fakeAccounts) CreateUser(user *models.User) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (f *fakeAccounts) SetRole(id, role string) error { return nil }
func (f *fakeAccounts) DeleteUser(id string) error    { return nil }
func (f *fakeAccounts) IsAdmin(email string) (bool, error) {
	return f.admins[email], nil
}

func adminTestRouter(accounts *fakeAccounts, email string) *gin.Engine {
	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) {
			if email != "" {
				c.Set("email", email)
			}
		},
		AdminOnlyMiddleware(accounts),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return r
}

func TestAdminAllowed(t *testing.T) {
	r := adminTestRouter(&fakeAccounts{admins: map[string]bool{"admin@x.com": true}}, "admin@x.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminForbiddenForRegularUser(t *testing.T) {
	r := adminTestRouter(&fakeAccounts{admins: map[string]bool{}}, "user@x.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
}

func TestAdminWithoutIdentity(t *testing.T) {
	r := adminTestRouter(&fakeAccounts{admins: map[string]bool{}}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
