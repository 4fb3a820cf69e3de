package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ridesharex/pkg/hash"
	"ridesharex/pkg/jwt"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	require.NoError(t, jwt.Init("test-secret"))

	svc := NewService(&memStore{}, hash.Bcrypt{Cost: bcrypt.MinCost}, nil)

	r := chi.NewRouter()
	r.Use(jwt.OptionalAuth)
	r.Mount("/auth", NewHandler(svc).Routes())

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestSignupLoginFlow(t *testing.T) {
	ts := newTestServer(t)

	// Signup succeeds and returns the created record without the hash.
	resp, body := postJSON(t, ts.URL+"/auth/signup", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, body, "password")

	// Same username, different email: generic conflict.
	resp, body = postJSON(t, ts.URL+"/auth/signup", map[string]string{
		"username": "alice", "email": "alice2@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username or email already exists", body["error"])

	// Same email, different username: same generic conflict.
	resp, body = postJSON(t, ts.URL+"/auth/signup", map[string]string{
		"username": "alice2", "email": "alice@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username or email already exists", body["error"])

	// Correct credentials log in and get a token.
	resp, body = postJSON(t, ts.URL+"/auth/login", map[string]string{
		"username": "alice", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["username"])
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, body, "password_hash")

	// Wrong password fails with the generic message.
	resp, body = postJSON(t, ts.URL+"/auth/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid username or password", body["error"])

	// Unknown username fails with the exact same message.
	resp, body = postJSON(t, ts.URL+"/auth/login", map[string]string{
		"username": "nobody", "password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid username or password", body["error"])
}

func TestSignupRejectsInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/auth/signup", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Empty username and password never reach the service.
	resp2, body := postJSON(t, ts.URL+"/auth/signup", map[string]string{
		"username": "", "email": "alice@x.com", "password": "",
	})
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestMeRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	_, _ = postJSON(t, ts.URL+"/auth/signup", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "secret",
	})
	_, login := postJSON(t, ts.URL+"/auth/login", map[string]string{
		"username": "alice", "password": "secret",
	})
	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	// Without a token the profile is unreachable.
	resp, err := http.Get(ts.URL + "/auth/me")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// With the token it returns the caller's record.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "alice", me["username"])
}
