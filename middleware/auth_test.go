package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dcode-github/nestora/backend/controllers"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/stretchr/testify/require"
)

func serveMe(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	AuthMiddleware(controllers.GetMe()).ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	utils.SetJWTKey("test-key")
	id := models.Identity{ID: "u1", Email: "asha@example.com", Name: "Asha"}
	token, err := utils.GenerateJWT(id)
	require.NoError(t, err)

	rec := serveMe(t, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Authenticated)
	require.Equal(t, id, *resp.User)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	utils.SetJWTKey("test-key")

	for name, header := range map[string]string{
		"missing":   "",
		"no bearer": "Token abc",
		"garbage":   "Bearer not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			rec := serveMe(t, header)
			require.Equal(t, http.StatusUnauthorized, rec.Code)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, utils.ErrCodeUnauthorized, body.Code)
		})
	}
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	utils.SetJWTKey("key-one")
	token, err := utils.GenerateJWT(models.Identity{ID: "u1"})
	require.NoError(t, err)

	utils.SetJWTKey("key-two")
	rec := serveMe(t, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
