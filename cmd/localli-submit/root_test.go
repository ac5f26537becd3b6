package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	path string
	body map[string]any
}

func newTestServer(t *testing.T, status int) (*httptest.Server, *[]received) {
	t.Helper()
	var got []received
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		got = append(got, received{path: r.URL.Path, body: body})
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func execute(args ...string) (string, error) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLeadCommand(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK)

	out, err := execute("lead", "--base-url", srv.URL,
		"--business-name", "Joe's Plumbing", "--email", "joe@example.com", "--category", "Home Services")

	require.NoError(t, err)
	assert.Contains(t, out, "Submitted.")
	require.Len(t, *got, 1)
	assert.Equal(t, "/api/submit-lead", (*got)[0].path)
	assert.Equal(t, map[string]any{
		"business_name":    "Joe's Plumbing",
		"email":            "joe@example.com",
		"service_category": "Home Services",
	}, (*got)[0].body)
}

func TestEarlyUserCommand(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK)

	_, err := execute("early-user", "--base-url", srv.URL, "--email", "ada@example.com", "--first-name", "Ada")

	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "/api/submit-early-user", (*got)[0].path)
	assert.Equal(t, "Ada", (*got)[0].body["first_name"])
}

func TestLeadCommand_InvalidInputNotSent(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK)

	out, err := execute("lead", "--base-url", srv.URL, "--business-name", "J", "--email", "nope")

	require.Error(t, err)
	assert.Contains(t, out, "business_name:")
	assert.Contains(t, out, "email:")
	assert.Contains(t, out, "service_category:")
	assert.Empty(t, *got)
}

func TestEarlyUserCommand_ServerFailure(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError)

	_, err := execute("early-user", "--base-url", srv.URL, "--email", "ada@example.com")

	assert.Error(t, err)
}
