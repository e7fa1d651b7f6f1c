// File: services/account/account.go
package account

import (
	"errors"

	userRepo "dochouse/database/repository/user"
	"dochouse/models"
	"dochouse/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountService manages user accounts and their roles.
type AccountService interface {
	ListUsers() ([]models.User, error)
	// CreateUser inserts the user; an already-registered email yields
	// a conflict error and no second record.
	CreateUser(user *models.User) (primitive.ObjectID, error)
	SetRole(id, role string) error
	DeleteUser(id string) error
	// IsAdmin reports whether the user with the given email holds the
	// admin role. Unknown emails are simply not admins.
	IsAdmin(email string) (bool, error)
}

// DefaultAccountService is the production AccountService.
type DefaultAccountService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultAccountService) ListUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultAccountService) CreateUser(user *models.User) (primitive.ObjectID, error) {
	id, err := s.Repo.Create(user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return primitive.NilObjectID, utils.NewError(utils.ErrConflict, "user already exists")
		}
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *DefaultAccountService) SetRole(id, role string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.NewError(utils.ErrBadRequest, "invalid user id")
	}
	if err := s.Repo.UpdateRole(oid, role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewError(utils.ErrNotFound, "user not found")
		}
		return err
	}
	return nil
}

func (s *DefaultAccountService) DeleteUser(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.NewError(utils.ErrBadRequest, "invalid user id")
	}
	if err := s.Repo.Delete(oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewError(utils.ErrNotFound, "user not found")
		}
		return err
	}
	return nil
}

func (s *DefaultAccountService) IsAdmin(email string) (bool, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}
