package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
	"focusos/pkg/token"
)

type AuthService struct {
	userRepository ports.UserRepository
	issuer         *token.Issuer
}

func NewAuthService(userRepository ports.UserRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{userRepository: userRepository, issuer: issuer}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	_, err := s.userRepository.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	return s.userRepository.Insert(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issuer.Issue(user.ID)
}

var _ ports.AuthService = (*AuthService)(nil)
