package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserInactive  = errors.New("user is deactivated")
)

type AccountRepository interface {
	FindByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Save(user *entity.User) error
}

// AccountService provisions users for the operator tool. Unlike the API
// services it reports plain errors, since its caller is a terminal.
type AccountService struct {
	UserRepo AccountRepository
	Validate *validator.Validate
}

func NewAccountService(userRepo AccountRepository, validate *validator.Validate) *AccountService {
	return &AccountService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

func (s *AccountService) CreateUser(req *contract.CreateUserRequest) (*entity.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	existing, err := s.UserRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := &entity.User{
		Username:   req.Username,
		Email:      req.Email,
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Active:     true,
		DateJoined: utils.NowUTC(),
	}
	if req.Admin {
		user.Permissions = user.Permissions.Add(entity.PermissionAdministrator)
	}

	if err = s.UserRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// SetAdmin grants or revokes every administrative permission.
func (s *AccountService) SetAdmin(id int64, admin bool) (*entity.User, error) {
	return s.update(id, func(user *entity.User) {
		if admin {
			user.Permissions = user.Permissions.Add(entity.PermissionAdministrator)
			return
		}
		user.Permissions = user.Permissions.
			Remove(entity.PermissionAdministrator).
			Remove(entity.PermissionManageCategories)
	})
}

// SetActive toggles whether the user may authenticate. Deactivated users
// keep their posts and profile.
func (s *AccountService) SetActive(id int64, active bool) (*entity.User, error) {
	return s.update(id, func(user *entity.User) {
		user.Active = active
	})
}

// IssueToken mints a bearer token for an active user.
func (s *AccountService) IssueToken(id int64, secret []byte, ttl time.Duration) (string, error) {
	user, err := s.fetch(id)
	if err != nil {
		return "", err
	}

	if !user.Active {
		return "", ErrUserInactive
	}
	return utils.IssueToken(secret, user.ID, ttl)
}

func (s *AccountService) update(id int64, apply func(user *entity.User)) (*entity.User, error) {
	user, err := s.fetch(id)
	if err != nil {
		return nil, err
	}

	apply(user)
	if err = s.UserRepo.Save(user); err != nil {
		return nil, fmt.Errorf("failed to save user %d: %w", id, err)
	}
	return user, nil
}

func (s *AccountService) fetch(id int64) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}

	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
