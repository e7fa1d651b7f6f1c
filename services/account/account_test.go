package account

import (
	"fmt"
	"testing"

	userRepo "dochouse/database/repository/user"
	"dochouse/models"
	"dochouse/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserRepo enforces email uniqueness the way the Mongo unique
// index does.
type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, mongo.ErrNoDocuments)
}

func (f *fakeUserRepo) Create(user *models.User) (primitive.ObjectID, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, userRepo.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeUserRepo) UpdateRole(id primitive.ObjectID, role string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Delete(id primitive.ObjectID) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Count() (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) SignupsByYear() ([]models.YearlySignup, error) {
	return nil, nil
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultAccountService{Repo: repo}

	_, err := svc.CreateUser(&models.User{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.CreateUser(&models.User{Email: "a@x.com"})
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.ErrConflict, apiErr.Kind)

	// The collection still holds exactly one record for that email.
	count := 0
	for _, u := range repo.users {
		if u.Email == "a@x.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestIsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: "admin"},
		{ID: primitive.NewObjectID(), Email: "user@x.com"},
	}}
	svc := &DefaultAccountService{Repo: repo}

	isAdmin, err := svc.IsAdmin("admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin("user@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIsAdminUnknownEmail(t *testing.T) {
	svc := &DefaultAccountService{Repo: &fakeUserRepo{}}

	isAdmin, err := svc.IsAdmin("a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestSetRole(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeUserRepo{users: []models.User{{ID: id, Email: "user@x.com"}}}
	svc := &DefaultAccountService{Repo: repo}

	require.NoError(t, svc.SetRole(id.Hex(), "admin"))
	assert.Equal(t, "admin", repo.users[0].Role)
}

func TestSetRoleInvalidID(t *testing.T) {
	svc := &DefaultAccountService{Repo: &fakeUserRepo{}}

	err := svc.SetRole("nope", "admin")
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.ErrBadRequest, apiErr.Kind)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := &DefaultAccountService{Repo: &fakeUserRepo{}}

	err := svc.DeleteUser(primitive.NewObjectID().Hex())
	var apiErr *utils.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, utils.ErrNotFound, apiErr.Kind)
}
