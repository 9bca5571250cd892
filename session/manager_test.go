package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshdatta23/skillstacker"
)

func writeAuthResponse(w http.ResponseWriter, token string, user map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

func testUserJSON() map[string]interface{} {
	return map[string]interface{}{
		"customer_id": 7,
		"first_name":  "Ada",
		"last_name":   "Lovelace",
		"email":       "ada@example.com",
		"is_admin":    false,
		"activebool":  true,
	}
}

// newTestManager wires a manager, its store and a client against a test
// backend, mirroring how the CLI assembles them.
func newTestManager(t *testing.T, handler http.HandlerFunc) (*Manager, *Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	client := skillstacker.NewClient(
		skillstacker.WithBaseURL(server.URL),
		skillstacker.WithSession(store),
	)
	return NewManager(client, store, nil), store
}

func TestManager_InitWithoutStoredSession(t *testing.T) {
	mgr, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a stored token")
	})

	assert.Equal(t, StateUnknown, mgr.State())
	require.NoError(t, mgr.Init(context.Background()))
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Nil(t, mgr.CurrentUser())
}

func TestManager_InitRestoresValidSession(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(testUserJSON())
	})

	require.NoError(t, store.Save("tok-abc", nil))

	require.NoError(t, mgr.Init(context.Background()))
	assert.Equal(t, StateAuthenticated, mgr.State())

	user := mgr.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Ada Lovelace", user.FullName())
}

func TestManager_InitClearsRejectedToken(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	})

	require.NoError(t, store.Save("tok-stale", nil))

	require.NoError(t, mgr.Init(context.Background()))
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Nil(t, mgr.CurrentUser())
	assert.Empty(t, store.Token(), "rejected token must not survive init")
}

func TestManager_LoginLogoutLifecycle(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		writeAuthResponse(w, "tok-abc", testUserJSON())
	})

	user, err := mgr.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, mgr.State())
	assert.Equal(t, 7, user.CustomerID)
	assert.Equal(t, "tok-abc", store.Token())

	mgr.Logout()
	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Nil(t, mgr.CurrentUser())
	assert.Empty(t, store.Token())

	// Logout is idempotent.
	mgr.Logout()
	assert.Equal(t, StateAnonymous, mgr.State())
}

func TestManager_LoginFailureStaysAnonymous(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	})

	_, err := mgr.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)

	apiErr, ok := skillstacker.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Incorrect email or password", apiErr.Detail)

	assert.Equal(t, StateAnonymous, mgr.State())
	assert.Empty(t, store.Token())
}

func TestManager_RegisterEstablishesSession(t *testing.T) {
	mgr, store := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"], "email must reach the backend normalized")

		writeAuthResponse(w, "tok-new", testUserJSON())
	})

	user, err := mgr.Register(context.Background(), skillstacker.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     " Ada@Example.COM ",
		Password:  "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, mgr.State())
	assert.Equal(t, 7, user.CustomerID)
	assert.Equal(t, "tok-new", store.Token())
}

func TestManager_SanitizesDisplayFields(t *testing.T) {
	mgr, _ := newTestManager(t, func(w http.ResponseWriter, r *http.Request) {
		writeAuthResponse(w, "tok-abc", map[string]interface{}{
			"customer_id": 7,
			"first_name":  `<script>"Ada"</script>`,
			"last_name":   "O'Brien & Co",
			"email":       "ada@example.com",
		})
	})

	user, err := mgr.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "scriptAda/script", user.FirstName)
	assert.Equal(t, "OBrien  Co", user.LastName)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestSanitizeField(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "clean passes through", in: "Ada Lovelace", expected: "Ada Lovelace"},
		{name: "angle brackets stripped", in: "<b>Ada</b>", expected: "bAda/b"},
		{name: "quotes and ampersand stripped", in: `"A" & 'B'`, expected: "A  B"},
		{name: "empty", in: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeField(tt.in))
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unknown", StateUnknown.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "anonymous", StateAnonymous.String())
}
