package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"golang.org/x/oauth2"
)

func TestFacebookProviderProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fb-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1001","first_name":"Jane","last_name":"Doe","email":"jane@example.com"}`))
	}))
	defer srv.Close()

	p := &FacebookProvider{Config: &oauth2.Config{}, GraphURL: srv.URL}
	profile, err := p.Profile(context.Background(), "fb-token")
	require.NoError(t, err)
	assert.Equal(t, &SocialProfile{
		Provider:   types.PROVIDER_FACEBOOK,
		ProviderID: "1001",
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
	}, profile)
}

func TestFacebookProviderRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token."}}`))
	}))
	defer srv.Close()

	p := &FacebookProvider{Config: &oauth2.Config{}, GraphURL: srv.URL}
	_, err := p.Profile(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrSocialTokenRejected)
}

func TestGoogleProviderProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer g-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"g-1","given_name":"John","family_name":"Roe","email":"john@example.com"}`))
	}))
	defer srv.Close()

	p := &GoogleProvider{Config: &oauth2.Config{}, Endpoint: srv.URL + "/"}
	profile, err := p.Profile(context.Background(), "g-token")
	require.NoError(t, err)
	assert.Equal(t, "g-1", profile.ProviderID)
	assert.Equal(t, "John", profile.FirstName)
	assert.Equal(t, "Roe", profile.LastName)
	assert.Equal(t, "john@example.com", profile.Email)
	assert.Equal(t, types.PROVIDER_GOOGLE, profile.Provider)
}
