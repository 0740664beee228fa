// Wellspring - Personal Wellness Journal and Habit Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellspring

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/wellspring/internal/models"
	"github.com/tomtom215/wellspring/internal/storage"
)

// ErrInvalidCredentials is returned for every login failure, whether the
// email is unknown or the password is wrong. The API layer maps it to a
// generic 401 so responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service implements the identity operations over the storage layer.
type Service struct {
	store      storage.Store
	tokens     *JWTManager
	bcryptCost int

	// dummyHash is compared against on unknown-email logins so both
	// failure paths cost one bcrypt verification.
	dummyHash string
}

// NewService creates the identity service. The dummy hash is computed once
// here, at the service's own cost setting, rather than per request.
func NewService(store storage.Store, tokens *JWTManager, bcryptCost int) (*Service, error) {
	dummy, err := HashPassword("wellspring-timing-equalizer", bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Service{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}, nil
}

// Register creates an account and returns a signed token with the public
// user record. storage.ErrDuplicateEmail passes through for the API layer
// to map to a conflict response.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hash, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Login verifies credentials and returns a fresh token. Any mismatch,
// unknown email included, returns ErrInvalidCredentials. A successful
// login touches the user's UpdatedAt as a crude last-seen marker.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			CheckPassword(s.dummyHash, req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	touched, err := s.store.UpdateUser(ctx, user.ID, models.UserPatch{})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(touched.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *touched}, nil
}

// CurrentUser returns the public record for an authenticated user ID.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUserByID(ctx, userID)
}
