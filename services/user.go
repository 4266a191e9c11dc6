package services

import (
	"errors"
	"fmt"

	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password so login failures do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService manages staff accounts (admins and receptionists).
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) Create(user *models.User) (*models.User, error) {
	if user.Username == "" || user.Password == "" || user.Name == "" {
		return nil, fmt.Errorf("%w: name, username and password are required", models.ErrValidation)
	}
	if !user.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, user.Role)
	}

	taken, err := s.users.ExistsByUsername(user.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username already exists", models.ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(user *models.User) (*models.User, error) {
	existing, err := s.users.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	if !user.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, user.Role)
	}

	if user.Username != existing.Username {
		taken, err := s.users.ExistsByUsername(user.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username already exists for another user", models.ErrValidation)
		}
	}

	// An unchanged password comes back as the stored hash; only re-hash
	// when the caller actually set a new one.
	if user.Password == "" {
		user.Password = existing.Password
	} else if user.Password != existing.Password {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	user.CreatedAt = existing.CreatedAt
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	exists, err := s.users.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: user %d", models.ErrNotFound, id)
	}
	return s.users.DeleteByID(id)
}

func (s *UserService) Get(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.FindAll()
}
