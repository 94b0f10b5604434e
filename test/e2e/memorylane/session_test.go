package memorylane_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminSessionLifecycle(t *testing.T) {
	client := setupMemorylane(t)
	ctx := t.Context()

	_, err := client.Status(ctx)
	apiError(t, err, http.StatusUnauthorized)

	login, err := client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	require.Equal(t, "admin", login.User.Role)
	require.Equal(t, "Admin User", login.User.Name)

	status, err := client.Status(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(status.User.UserID, "basic_"))

	admin, err := client.Admin(ctx)
	require.NoError(t, err)
	require.Equal(t, "Welcome admin!", admin.Message)

	require.NoError(t, client.Logout(ctx))

	_, err = client.Admin(ctx)
	apiError(t, err, http.StatusUnauthorized)
}

func TestUserCannotReachAdmin(t *testing.T) {
	client := setupMemorylane(t)
	ctx := t.Context()

	_, err := client.Login(ctx, userEmail, userPassword)
	require.NoError(t, err)

	_, err = client.Admin(ctx)
	apiErr := apiError(t, err, http.StatusForbidden)
	require.Equal(t, "Access denied", apiErr.Message)
}

func TestFallbackDisabledRejectsDemoAccounts(t *testing.T) {
	client := setupMemorylane(t, withEnv(map[string]string{"AUTH_FALLBACK_ENABLED": "false"}))

	_, err := client.Login(t.Context(), adminEmail, adminPassword)
	apiErr := apiError(t, err, http.StatusUnauthorized)
	require.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestCrossOriginPreflight(t *testing.T) {
	client := setupMemorylane(t, withEnv(map[string]string{"FRONTEND_ORIGIN": "https://memories.example"}))

	req, err := http.NewRequestWithContext(t.Context(), http.MethodOptions, client.BaseURL+"/api/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://memories.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := client.HTTPClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "https://memories.example", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
