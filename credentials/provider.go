package credentials

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/compute/metadata"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	compute "google.golang.org/api/compute/v1"
)

// Provider produces an HTTP client that signs outbound Compute API requests.
type Provider interface {
	Client(ctx context.Context) (*http.Client, error)
}

// Default resolves Application Default Credentials on every call.
type Default struct {
	Scopes []string
}

func NewDefault() *Default {
	return &Default{Scopes: []string{compute.ComputeScope}}
}

func (d *Default) Client(ctx context.Context) (*http.Client, error) {
	client, err := google.DefaultClient(ctx, d.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("finding default credentials: %w", err)
	}
	return client, nil
}

// Static signs requests with a fixed token source.
type Static struct {
	TokenSource oauth2.TokenSource
	Base        http.RoundTripper
}

func (s *Static) Client(ctx context.Context) (*http.Client, error) {
	if s.TokenSource == nil {
		return nil, fmt.Errorf("no token source configured")
	}
	return &http.Client{
		Transport: &oauth2.Transport{Source: s.TokenSource, Base: s.Base},
	}, nil
}

type Identity struct {
	OnGCE          bool   `json:"on_gce"`
	ServiceAccount string `json:"service_account,omitempty"`
	ProjectID      string `json:"project_id,omitempty"`
}

// Describe reports which runtime identity default credentials will resolve to.
// Off GCP it returns a zero Identity without contacting the metadata server.
func Describe() Identity {
	if !metadata.OnGCE() {
		return Identity{}
	}
	id := Identity{OnGCE: true}
	if email, err := metadata.Email("default"); err == nil {
		id.ServiceAccount = email
	}
	if project, err := metadata.ProjectID(); err == nil {
		id.ProjectID = project
	}
	return id
}
