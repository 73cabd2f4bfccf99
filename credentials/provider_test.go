package credentials

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestStatic_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := &Static{TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "ya29.test"})}
	client, err := p.Client(context.Background())
	require.NoError(t, err)

	resp, err := client.Post(srv.URL, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer ya29.test", gotAuth)
}

func TestStatic_WithoutTokenSource(t *testing.T) {
	_, err := (&Static{}).Client(context.Background())
	assert.Error(t, err)
}

func TestDefault_MissingCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/nonexistent/key.json")

	_, err := NewDefault().Client(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finding default credentials")
}
