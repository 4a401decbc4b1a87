package syncclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HasanAboShally/dayma/internal/cli/syncclient"
	"github.com/HasanAboShally/dayma/internal/core/domain"
)

func exportedDocument(t *testing.T) string {
	t.Helper()

	s := domain.DefaultState("en")
	s = domain.CompleteSetup(s)
	s = domain.ToggleBasicCompletion(s, "2026-02-20", "fajr")

	text, err := domain.Export(s)
	require.NoError(t, err)
	return text
}

func TestClient_Login(t *testing.T) {
	t.Run("Success: returns the issued token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "me@dayma.app", creds["email"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token": "jwt-123", "user": {"id": "u1"}}`))
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "")
		token, err := client.Login(context.Background(), "me@dayma.app", "secret")

		require.NoError(t, err)
		assert.Equal(t, "jwt-123", token)
	})

	t.Run("Fail: 401 maps to bad credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "invalid credentials"}`))
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "")
		_, err := client.Login(context.Background(), "me@dayma.app", "wrong")

		assert.ErrorIs(t, err, syncclient.ErrBadCredentials)
	})
}

func TestClient_Push(t *testing.T) {
	t.Run("Success: sends the bearer token and decodes the snapshot", func(t *testing.T) {
		doc := exportedDocument(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/sync/push", r.URL.Path)
			assert.Equal(t, "Bearer jwt-123", r.Header.Get("Authorization"))

			var req struct {
				DeviceID string          `json:"device_id"`
				Seq      int             `json:"seq"`
				Payload  json.RawMessage `json:"payload"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "phone-1", req.DeviceID)
			assert.Equal(t, 3, req.Seq)
			assert.JSONEq(t, doc, string(req.Payload))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id": "snap-1", "device_id": req.DeviceID, "seq": req.Seq, "payload": req.Payload,
			})
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "jwt-123")
		snap, err := client.Push(context.Background(), "phone-1", 3, []byte(doc))

		require.NoError(t, err)
		assert.Equal(t, 3, snap.Seq)
		require.NotNil(t, snap.State())
		assert.True(t, snap.State().Days["2026-02-20"].Basics["fajr"])
	})

	t.Run("Fail: 409 maps to sequence conflict", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error": "sequence conflict"}`))
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "jwt-123")
		_, err := client.Push(context.Background(), "phone-1", 1, []byte(exportedDocument(t)))

		assert.ErrorIs(t, err, syncclient.ErrSeqConflict)
	})

	t.Run("Fail: server error surfaces the API message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": "internal server error"}`))
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "jwt-123")
		_, err := client.Push(context.Background(), "phone-1", 1, []byte(exportedDocument(t)))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "internal server error")
	})
}

func TestClient_Pull(t *testing.T) {
	t.Run("Success: returns the newest snapshot", func(t *testing.T) {
		doc := exportedDocument(t)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/sync/pull", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id": "snap-9", "device_id": "tablet-1", "seq": 9, "payload": json.RawMessage(doc),
			})
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "jwt-123")
		snap, err := client.Pull(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 9, snap.Seq)
		assert.Equal(t, "tablet-1", snap.DeviceID)
	})

	t.Run("Edge Case: 404 means nothing pushed yet", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "snapshot not found"}`))
		}))
		defer srv.Close()

		client := syncclient.New(srv.URL, "jwt-123")
		_, err := client.Pull(context.Background())

		assert.ErrorIs(t, err, syncclient.ErrNoRemoteSnapshot)
	})
}
