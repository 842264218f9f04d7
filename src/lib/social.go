package lib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrSocialTokenRejected = errors.New("access token rejected by provider")

type SocialProfile struct {
	Provider   types.Provider
	ProviderID string
	FirstName  string
	LastName   string
	Email      string
}

// SocialProvider verifies a provider access token and returns who it belongs to.
type SocialProvider interface {
	Name() types.Provider
	Profile(ctx context.Context, accessToken string) (*SocialProfile, error)
}

const FACEBOOK_GRAPH_URL = "https://graph.facebook.com/me?fields=id,first_name,last_name,email"

type FacebookProvider struct {
	Config   *oauth2.Config
	GraphURL string
}

func NewFacebookProvider() *FacebookProvider {
	return &FacebookProvider{
		Config: &oauth2.Config{
			ClientID:     config.FACEBOOK_ID,
			ClientSecret: config.FACEBOOK_SECRET,
			Endpoint:     facebook.Endpoint,
			Scopes:       []string{"email", "public_profile"},
		},
		GraphURL: FACEBOOK_GRAPH_URL,
	}
}

func (f *FacebookProvider) Name() types.Provider { return types.PROVIDER_FACEBOOK }

func (f *FacebookProvider) Profile(ctx context.Context, accessToken string) (*SocialProfile, error) {
	client := f.Config.Client(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.GraphURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		log.Printf("[facebook] Error fetching profile: %s\n", err.Error())
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		log.Printf("[facebook] Profile request failed (%d): %s\n", res.StatusCode, gjson.GetBytes(body, "error.message").String())
		return nil, ErrSocialTokenRejected
	}
	result := gjson.ParseBytes(body)
	if !result.Get("id").Exists() {
		return nil, ErrSocialTokenRejected
	}
	return &SocialProfile{
		Provider:   types.PROVIDER_FACEBOOK,
		ProviderID: result.Get("id").String(),
		FirstName:  result.Get("first_name").String(),
		LastName:   result.Get("last_name").String(),
		Email:      result.Get("email").String(),
	}, nil
}

type GoogleProvider struct {
	Config *oauth2.Config
	// Endpoint overrides the userinfo API base path.
	Endpoint string
}

func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{
		Config: &oauth2.Config{
			ClientID:     config.GOOGLE_ID,
			ClientSecret: config.GOOGLE_SECRET,
			Endpoint:     google.Endpoint,
			Scopes:       []string{googleoauth.UserinfoEmailScope, googleoauth.UserinfoProfileScope},
		},
	}
}

func (g *GoogleProvider) Name() types.Provider { return types.PROVIDER_GOOGLE }

func (g *GoogleProvider) Profile(ctx context.Context, accessToken string) (*SocialProfile, error) {
	ts := g.Config.TokenSource(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	opts := []option.ClientOption{option.WithTokenSource(ts)}
	if g.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.Endpoint))
	}
	svc, err := googleoauth.NewService(ctx, opts...)
	if err != nil {
		log.Printf("[google] Error creating userinfo service: %s\n", err.Error())
		return nil, err
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		log.Printf("[google] Error fetching profile: %s\n", err.Error())
		return nil, fmt.Errorf("%w: %s", ErrSocialTokenRejected, err.Error())
	}
	return &SocialProfile{
		Provider:   types.PROVIDER_GOOGLE,
		ProviderID: info.Id,
		FirstName:  info.GivenName,
		LastName:   info.FamilyName,
		Email:      info.Email,
	}, nil
}
