package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, request{method: http.MethodPost, target: "/auth?action=register",
		body: `{"email":"Buyer@Example.com","password":"secret1","name":"Buyer"}`})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	token := body["sessionToken"].(string)
	user := body["user"].(map[string]any)
	assert.Equal(t, "buyer@example.com", user["email"])
	_, leaked := user["password_hash"]
	assert.False(t, leaked)

	w = s.do(t, request{method: http.MethodGet, target: "/auth?action=me", headers: map[string]string{"X-Session-Token": token}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Buyer", decode(t, w)["user"].(map[string]any)["name"])

	// login is the default action
	w = s.do(t, request{method: http.MethodPost, target: "/auth", body: `{"email":"buyer@example.com","password":"secret1"}`})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["sessionToken"])

	w = s.do(t, request{method: http.MethodPost, target: "/auth?action=logout", headers: map[string]string{"X-Session-Token": token}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decode(t, w)["message"])

	w = s.do(t, request{method: http.MethodGet, target: "/auth?action=me", headers: map[string]string{"X-Session-Token": token}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthErrors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, request{method: http.MethodPost, target: "/auth?action=register",
		body: `{"email":"a@b.c","password":"secret1","name":"A"}`})
	require.Equal(t, http.StatusOK, w.Code)

	cases := []struct {
		name    string
		target  string
		body    string
		headers map[string]string
		status  int
		message string
	}{
		{"duplicate email", "/auth?action=register", `{"email":"A@b.c","password":"secret1","name":"B"}`, nil, http.StatusBadRequest, "Email already registered"},
		{"short password", "/auth?action=register", `{"email":"x@b.c","password":"123","name":"X"}`, nil, http.StatusBadRequest, "Password must be at least 6 characters"},
		{"wrong password", "/auth?action=login", `{"email":"a@b.c","password":"nope!!"}`, nil, http.StatusUnauthorized, "Invalid email or password"},
		{"short non-ascii password", "/auth?action=register", `{"email":"y@b.c","password":"абв","name":"Y"}`, nil, http.StatusBadRequest, "Password must be at least 6 characters"},
		{"malformed body", "/auth?action=login", `{"email":`, nil, http.StatusBadRequest, "Invalid JSON body"},
		{"empty register", "/auth?action=register", ``, nil, http.StatusBadRequest, "Email, password and name are required"},
		{"empty login", "/auth?action=login", ``, nil, http.StatusBadRequest, "Email and password are required"},
		{"logout without token", "/auth?action=logout", ``, nil, http.StatusBadRequest, "Session token required"},
		{"me without token", "/auth?action=me", ``, nil, http.StatusUnauthorized, "Session token required"},
		{"invalid action", "/auth?action=delete", ``, nil, http.StatusBadRequest, "Invalid action"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, request{method: http.MethodPost, target: tc.target, body: tc.body, headers: tc.headers})
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.message, decode(t, w)["error"])
		})
	}
}
