package gauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"ai-scheduler/pkg/gcalendar"
)

// DefaultScopes lets the app create events and read the account email.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/userinfo.email",
	"openid",
}

var ErrNoEmail = errors.New("google account has no email")

// Config configures the OAuth web flow.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// Endpoint and APIEndpoint override Google's servers (tests).
	Endpoint    oauth2.Endpoint
	APIEndpoint string
}

// Provider runs the Google OAuth code flow and builds per-user API clients.
type Provider struct {
	oauth       *oauth2.Config
	apiEndpoint string
}

// New creates a Provider.
func New(cfg Config) *Provider {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	endpoint := cfg.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = google.Endpoint
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		apiEndpoint: cfg.APIEndpoint,
	}
}

// AuthCodeURL returns the consent page URL. Offline access is requested so
// a refresh token comes back with the first exchange.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token.
func (p *Provider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return tok, nil
}

// TokenSource returns a refreshing token source for tok.
func (p *Provider) TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource {
	return p.oauth.TokenSource(ctx, tok)
}

// UserEmail fetches the email of the account behind tok.
func (p *Provider) UserEmail(ctx context.Context, tok *oauth2.Token) (string, error) {
	opts := []option.ClientOption{option.WithTokenSource(p.TokenSource(ctx, tok))}
	if p.apiEndpoint != "" {
		opts = append(opts, option.WithEndpoint(p.apiEndpoint))
	}

	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch user info: %w", err)
	}
	if info.Email == "" {
		return "", ErrNoEmail
	}
	return info.Email, nil
}

// Calendar returns a Calendar client acting as the user behind tok.
func (p *Provider) Calendar(ctx context.Context, tok *oauth2.Token) (gcalendar.EventCreator, error) {
	client, err := gcalendar.NewClientFromTokenSource(ctx, p.TokenSource(ctx, tok))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// MarshalToken encodes tok for storage.
func MarshalToken(tok *oauth2.Token) (string, error) {
	raw, err := json.Marshal(tok)
	if err != nil {
		return "", fmt.Errorf("marshal token: %w", err)
	}
	return string(raw), nil
}

// UnmarshalToken decodes a token produced by MarshalToken.
func UnmarshalToken(data string) (*oauth2.Token, error) {
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(data), &tok); err != nil {
		return nil, fmt.Errorf("unmarshal token: %w", err)
	}
	return &tok, nil
}
