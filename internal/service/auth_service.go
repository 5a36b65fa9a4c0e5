package service

import (
	"errors"
	"fmt"

	"go-restaurant-orders/internal/model"
	"go-restaurant-orders/internal/repository"
	"go-restaurant-orders/pkg/jwt"
	"go-restaurant-orders/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService interface {
	Register(username, email, password, role string) (*model.UserResponse, error)
	Login(username, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(username, email, password, role string) (*model.UserResponse, error) {
	if role != model.RoleAdmin {
		role = model.RoleUser
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Role:     role,
	}

	// 1. Validasi Struct Dasar
	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Cek Duplikasi username / email
	if existing, _ := s.userRepo.FindByUsername(username); existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	if err := user.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Find user by username
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Verify password
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Generate JWT token
	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
