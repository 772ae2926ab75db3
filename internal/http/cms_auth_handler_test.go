package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

func TestCMSAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials return the token", func(t *testing.T) {
		service := new(MockCMSAuthService)
		handler := NewCMSAuthHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		service.On("Login", mock.Anything, mock.MatchedBy(func(req *domain.CMSLoginRequest) bool {
			return req.Email == "admin@venuelaunch.app"
		})).Return(&domain.CMSLoginResponse{
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(domain.CMSTokenExpiry),
			Admin:     &domain.CmsAdmin{ID: "admin-1", Email: "admin@venuelaunch.app", Role: domain.CMSRoleAdmin},
		}, nil)

		body, _ := json.Marshal(map[string]string{
			"email":    "admin@venuelaunch.app",
			"password": "correct-horse",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/cms/cmsAuth.login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.CMSLoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("bad credentials are a 401", func(t *testing.T) {
		service := new(MockCMSAuthService)
		handler := NewCMSAuthHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		service.On("Login", mock.Anything, mock.Anything).
			Return(nil, domain.NewAuthError("invalid email or password"))

		body, _ := json.Marshal(map[string]string{"email": "admin@venuelaunch.app", "password": "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/cms/cmsAuth.login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
		assert.Equal(t, "invalid email or password", payload["error"])
	})

	t.Run("GET is rejected", func(t *testing.T) {
		service := new(MockCMSAuthService)
		handler := NewCMSAuthHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		req := httptest.NewRequest(http.MethodGet, "/api/cms/cmsAuth.login", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		service.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}
