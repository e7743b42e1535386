package userclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateKnownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/user-1/validate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	valid, err := client.Validate(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, valid)
}

func TestValidateUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":false}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	valid, err := client.Validate(context.Background(), "ghost")
	require.NoError(t, err)
	require.False(t, valid)
}

func TestValidateNotFoundMeansInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	valid, err := client.Validate(context.Background(), "ghost")
	require.NoError(t, err)
	require.False(t, valid)
}

func TestValidateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Validate(context.Background(), "user-1")
	require.Error(t, err)
}
