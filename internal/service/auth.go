package service

import (
	"errors"
	"fmt"

	"github.com/dicetrails/go-shop-api/internal/dto"
	"github.com/dicetrails/go-shop-api/internal/model"
	"github.com/dicetrails/go-shop-api/internal/store"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadySubscribed  = errors.New("already subscribed to the newsletter")
)

type AuthService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st}
}

func (s *AuthService) Signup(req dto.SignupRequest) (dto.UserResponse, error) {
	user, err := s.store.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return dto.UserResponse{}, ErrUserAlreadyExists
		}
		return dto.UserResponse{}, fmt.Errorf("create user: %w", err)
	}
	return toUserResponse(user), nil
}

// Login compares the stored password as an opaque string. A missing user and
// a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(req dto.LoginRequest) (dto.UserResponse, error) {
	user, err := s.store.UserByEmail(req.Email)
	if err != nil {
		return dto.UserResponse{}, ErrInvalidCredentials
	}
	if user.Password != req.Password {
		return dto.UserResponse{}, ErrInvalidCredentials
	}
	return toUserResponse(user), nil
}

func (s *AuthService) Subscribe(email string) error {
	subscribed, err := s.store.SubscribeNewsletter(email)
	if err != nil {
		return err
	}
	if !subscribed {
		return ErrAlreadySubscribed
	}
	return nil
}

func (s *AuthService) Users() []dto.UserResponse {
	var out []dto.UserResponse
	for _, u := range s.store.Users() {
		out = append(out, toUserResponse(u))
	}
	return out
}

// DeleteUser removes the account and everything that hangs off it.
func (s *AuthService) DeleteUser(email string) error {
	return s.store.DeleteUserCompletely(email)
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:               user.ID,
		Username:             user.Username,
		Email:                user.Email,
		IsAdmin:              user.IsAdmin,
		NewsletterSubscribed: user.NewsletterSubscribed,
		NewsletterDiscount:   user.UsedNewsletterDiscount,
	}
}
