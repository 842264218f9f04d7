package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	config.JWT_SECRET = []byte("services-test-secret")
}

func TestSignupCreatesRequesterAndSession(t *testing.T) {
	users := new(mockUserRepo)
	sessions := new(mockSessions)
	users.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "jane@example.com" && u.RoleID == types.ROLE_REQUESTER &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 12
	})
	sessions.On("Save", uint(12)).Return(nil)

	view, err := NewAuthService(users, sessions).Signup(context.Background(), &types.SignupRequestBody{
		FirstName: "Jane", LastName: "Doe", Email: " Jane@Example.com ", Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, view.Token)
	_, userID, err := lib.ParseJWT(view.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), userID)
	sessions.AssertExpectations(t)
}

func TestSignupWithTakenEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", "jane@example.com").Return(&models.User{ID: 1}, nil)

	_, err := NewAuthService(users, nil).Signup(context.Background(), &types.SignupRequestBody{Email: "jane@example.com", Password: "secret1"})
	assert.Equal(t, http.StatusConflict, types.StatusOf(err))
}

func TestSigninWithWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	users := new(mockUserRepo)
	users.On("FindByEmail", "jane@example.com").Return(&models.User{ID: 1, Password: string(hash)}, nil)

	_, err := NewAuthService(users, nil).Signin(context.Background(), &types.SigninRequestBody{Email: "jane@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, types.StatusOf(err))
	assert.Equal(t, INVALID_CREDENTIALS, err.Error())
}

func TestSigninWithUnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := NewAuthService(users, nil).Signin(context.Background(), &types.SigninRequestBody{Email: "ghost@example.com", Password: "whatever"})
	assert.Equal(t, http.StatusUnauthorized, types.StatusOf(err))
}

func TestSigninStoresSession(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	users := new(mockUserRepo)
	sessions := new(mockSessions)
	users.On("FindByEmail", "jane@example.com").Return(&models.User{ID: 4, Email: "jane@example.com", Password: string(hash), RoleID: 6}, nil)
	sessions.On("Save", uint(4)).Return(nil)

	view, err := NewAuthService(users, sessions).Signin(context.Background(), &types.SigninRequestBody{Email: "jane@example.com", Password: "right-password"})
	require.NoError(t, err)
	claims, _, err := lib.ParseJWT(view.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(6), claims.RoleID)
}

func TestSocialLoginCreatesUserOnFirstLogin(t *testing.T) {
	users := new(mockUserRepo)
	provider := &mockProvider{name: types.PROVIDER_FACEBOOK}
	provider.On("Profile", "fb-token").Return(&lib.SocialProfile{
		Provider: types.PROVIDER_FACEBOOK, ProviderID: "1001", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	}, nil)
	users.On("FindByEmail", "jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Provider == types.PROVIDER_FACEBOOK && u.ProviderID == "1001" && u.IsVerified
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 30
	})

	view, err := NewAuthService(users, nil, provider).SocialLogin(context.Background(), types.PROVIDER_FACEBOOK, "fb-token")
	require.NoError(t, err)
	assert.Equal(t, uint(30), view.User.(*models.User).ID)
}

func TestSocialLoginWithRejectedToken(t *testing.T) {
	provider := &mockProvider{name: types.PROVIDER_GOOGLE}
	provider.On("Profile", "bad").Return(nil, errors.New("401"))

	_, err := NewAuthService(new(mockUserRepo), nil, provider).SocialLogin(context.Background(), types.PROVIDER_GOOGLE, "bad")
	assert.Equal(t, http.StatusUnauthorized, types.StatusOf(err))
}

func TestSocialLoginWithUnknownProvider(t *testing.T) {
	_, err := NewAuthService(new(mockUserRepo), nil).SocialLogin(context.Background(), types.PROVIDER_GOOGLE, "token")
	assert.Equal(t, http.StatusBadRequest, types.StatusOf(err))
}

func TestLogoutDeletesSession(t *testing.T) {
	sessions := new(mockSessions)
	sessions.On("Delete", uint(9)).Return(nil)

	require.NoError(t, NewAuthService(new(mockUserRepo), sessions).Logout(context.Background(), 9))
	sessions.AssertExpectations(t)
}
