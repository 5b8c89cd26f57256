package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "thintimer.com/thintimer/internal/errors"
	model "thintimer.com/thintimer/internal/models"
	repository "thintimer.com/thintimer/internal/repositories"
	"thintimer.com/thintimer/internal/sessions"
)

type AuthService struct {
	users      *repository.UserRepository
	store      sessions.Store
	bcryptCost int
}

func NewAuthService(users *repository.UserRepository, store sessions.Store, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		store:      store,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperrors.ErrCredentialsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, username, email, string(hash))
}

// Login checks the credentials and issues a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.store.Issue(ctx, user.ID)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.store.Revoke(ctx, token)
}

func (s *AuthService) UpdateUsername(ctx context.Context, userID, username string) error {
	if username == "" {
		return apperrors.ErrCredentialsRequired
	}
	return s.users.UpdateUsername(ctx, userID, username)
}

func (s *AuthService) UpdateEmail(ctx context.Context, userID, email string) error {
	if email == "" {
		return apperrors.ErrCredentialsRequired
	}
	return s.users.UpdateEmail(ctx, userID, email)
}

func (s *AuthService) ResetPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperrors.ErrCredentialsRequired
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return apperrors.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// DeleteAccount removes the user with all their tasks and entries, then
// revokes the session the request came in on.
func (s *AuthService) DeleteAccount(ctx context.Context, userID, token string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	return s.store.Revoke(ctx, token)
}
