package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtbook/courtbook/internal/logger"
	"github.com/courtbook/courtbook/internal/model"
	"github.com/courtbook/courtbook/internal/repository"
	"github.com/courtbook/courtbook/pkg/auth"
	"github.com/courtbook/courtbook/pkg/metrics"
)

// Identity is what the booking core consumes from a validated token:
// a stable user id plus display data.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// IdentityService owns registration, login and token validation. The
// rest of the application trusts the identity it yields and never
// re-validates credentials.
type IdentityService struct {
	users    repository.UserRepository
	events   repository.EventRepository
	tokenTTL time.Duration
}

func NewIdentityService(users repository.UserRepository, events repository.EventRepository, tokenTTL time.Duration) *IdentityService {
	return &IdentityService{users: users, events: events, tokenTTL: tokenTTL}
}

// Register creates an account and returns the user with a signed token.
func (s *IdentityService) Register(ctx context.Context, email, password, name, phone string) (*model.User, string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", ErrInvalidInput
	}
	if password == "" {
		return nil, "", ErrInvalidInput
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logger.Log.Error("lookup email", "err", err)
		return nil, "", ErrStoreUnavailable
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrStoreUnavailable
	}

	u := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			// Lost the registration race on the unique index.
			return nil, "", ErrEmailTaken
		}
		logger.Log.Error("create user", "err", err)
		return nil, "", ErrStoreUnavailable
	}

	token, err := auth.CreateAccessToken(u.ID.String(), u.Email, u.Name, s.tokenTTL)
	if err != nil {
		logger.Log.Error("sign token", "err", err)
		return nil, "", ErrStoreUnavailable
	}

	metrics.UserRegistrations.Inc()
	if err := s.events.Record(ctx, model.EventTypeUserRegistered, &u.ID, nil, map[string]any{"email": u.Email}); err != nil {
		logger.Log.Warn("record audit event", "type", string(model.EventTypeUserRegistered), "err", err)
	}

	return u, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		logger.Log.Error("lookup email", "err", err)
		return nil, "", ErrStoreUnavailable
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.CreateAccessToken(u.ID.String(), u.Email, u.Name, s.tokenTTL)
	if err != nil {
		logger.Log.Error("sign token", "err", err)
		return nil, "", ErrStoreUnavailable
	}
	return u, token, nil
}

// Authenticate validates a bearer token and yields the identity it
// carries, or ErrUnauthenticated.
func (s *IdentityService) Authenticate(token string) (*Identity, error) {
	claims, err := auth.ParseValidate(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	if _, err := uuid.Parse(claims.Sub); err != nil {
		return nil, ErrUnauthenticated
	}
	return &Identity{UserID: claims.Sub, Email: claims.Email, Name: claims.Name}, nil
}
