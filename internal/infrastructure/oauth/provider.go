// Package oauth exchanges client-supplied provider access tokens for verified
// profiles. The token flow itself (consent screens, redirects) happens on the
// client; the API only ever sees an opaque token.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bazroba/pkg/errors"
)

// Profile is the normalized identity returned by every provider.
type Profile struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Picture   string
}

type Provider interface {
	Name() string
	Exchange(ctx context.Context, accessToken string) (*Profile, error)
}

type GoogleProvider struct {
	httpClient *http.Client
}

func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{httpClient: &http.Client{}}
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) Exchange(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v3/userinfo", nil)
	if err != nil {
		return nil, errors.Internal("Failed to build userinfo request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("Failed to reach Google", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unauthorized("Invalid Google token", fmt.Errorf("userinfo status %d", resp.StatusCode))
	}

	var body struct {
		Sub        string `json:"sub"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Internal("Failed to parse Google profile", err)
	}

	return &Profile{
		ID:        body.Sub,
		Email:     body.Email,
		FirstName: body.GivenName,
		LastName:  body.FamilyName,
		Picture:   body.Picture,
	}, nil
}

type FacebookProvider struct {
	httpClient *http.Client
}

func NewFacebookProvider() *FacebookProvider {
	return &FacebookProvider{httpClient: &http.Client{}}
}

func (p *FacebookProvider) Name() string { return "facebook" }

func (p *FacebookProvider) Exchange(ctx context.Context, accessToken string) (*Profile, error) {
	q := url.Values{}
	q.Set("fields", "id,email,first_name,last_name,picture")
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://graph.facebook.com/me?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Internal("Failed to build profile request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Internal("Failed to reach Facebook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unauthorized("Invalid Facebook token", fmt.Errorf("graph status %d", resp.StatusCode))
	}

	var body struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Picture   struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Internal("Failed to parse Facebook profile", err)
	}

	return &Profile{
		ID:        body.ID,
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Picture:   body.Picture.Data.URL,
	}, nil
}
