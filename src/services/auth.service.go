package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const INVALID_CREDENTIALS = "Invalid email or password"

type AuthService struct {
	users     repository.UserRepository
	sessions  lib.SessionStore
	providers map[types.Provider]lib.SocialProvider
}

func NewAuthService(users repository.UserRepository, sessions lib.SessionStore, providers ...lib.SocialProvider) *AuthService {
	s := &AuthService{
		users:     users,
		sessions:  sessions,
		providers: make(map[types.Provider]lib.SocialProvider),
	}
	for _, p := range providers {
		s.providers[p.Name()] = p
	}
	return s
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, body *types.SignupRequestBody) (*types.AuthView, error) {
	email := NormalizeEmail(body.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, types.NewHTTPError(http.StatusConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     email,
		Password:  string(hash),
		RoleID:    types.DEFAULT_USER_ROLE,
		Provider:  types.PROVIDER_LOCAL,
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.Printf("[AuthService] Signup: %s\n", err.Error())
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *AuthService) Signin(ctx context.Context, body *types.SigninRequestBody) (*types.AuthView, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(body.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.Unauthorized(INVALID_CREDENTIALS)
		}
		return nil, err
	}
	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return nil, types.Unauthorized(INVALID_CREDENTIALS)
	}
	return s.issue(ctx, user)
}

// SocialLogin verifies the provider token and signs in the matching user,
// creating a requester account on first login.
func (s *AuthService) SocialLogin(ctx context.Context, provider types.Provider, accessToken string) (*types.AuthView, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, types.BadRequest(fmt.Sprintf("Login with %s is not supported", provider))
	}
	profile, err := p.Profile(ctx, accessToken)
	if err != nil {
		log.Printf("[AuthService] SocialLogin %s: %s\n", provider, err.Error())
		return nil, types.Unauthorized("Invalid access token")
	}
	if profile.Email == "" {
		return nil, types.BadRequest(fmt.Sprintf("Your %s account has no email address", provider))
	}
	email := NormalizeEmail(profile.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &models.User{
			FirstName:  profile.FirstName,
			LastName:   profile.LastName,
			Email:      email,
			RoleID:     types.DEFAULT_USER_ROLE,
			Provider:   profile.Provider,
			ProviderID: profile.ProviderID,
			IsVerified: true,
		}
		err = s.users.Create(ctx, user)
	}
	if err != nil {
		log.Printf("[AuthService] SocialLogin %s: %s\n", provider, err.Error())
		return nil, err
	}
	return s.issue(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, userID)
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*types.AuthView, error) {
	token, err := lib.GenerateJWT(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}
	if s.sessions != nil {
		if err := s.sessions.Save(ctx, user.ID, token); err != nil {
			return nil, err
		}
	}
	return &types.AuthView{Token: token, User: user}, nil
}
