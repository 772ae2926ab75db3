package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/venuelaunch/venuelaunch/internal/domain"
	"github.com/venuelaunch/venuelaunch/pkg/logger"
)

func TestProgressHandler_Get(t *testing.T) {
	t.Run("returns the summary", func(t *testing.T) {
		service := new(MockProgressService)
		handler := NewProgressHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		service.On("GetProgress", mock.Anything, "user-1").Return(&domain.ProgressSummary{
			UserID:            "user-1",
			CompletedCount:    2,
			TotalCount:        6,
			CompletionPercent: 33,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/progress.get?user_id=user-1", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var summary domain.ProgressSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
		assert.Equal(t, 33, summary.CompletionPercent)
	})

	t.Run("missing user_id is a 400", func(t *testing.T) {
		service := new(MockProgressService)
		handler := NewProgressHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		req := httptest.NewRequest(http.MethodGet, "/api/progress.get", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "GetProgress", mock.Anything, mock.Anything)
	})

	t.Run("POST is rejected", func(t *testing.T) {
		service := new(MockProgressService)
		handler := NewProgressHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		req := httptest.NewRequest(http.MethodPost, "/api/progress.get?user_id=user-1", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestProgressHandler_Track(t *testing.T) {
	t.Run("records the step", func(t *testing.T) {
		service := new(MockProgressService)
		handler := NewProgressHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		service.On("TrackProgress", mock.Anything, mock.MatchedBy(func(req *domain.TrackProgressRequest) bool {
			return req.UserID == "user-1" && req.StepID == domain.StepAccountSetup
		})).Return(&domain.OnboardingProgress{
			UserID:    "user-1",
			StepID:    domain.StepAccountSetup,
			Completed: true,
		}, nil)

		body, _ := json.Marshal(map[string]string{
			"user_id": "user-1",
			"step_id": domain.StepAccountSetup,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/progress.track", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		service.AssertExpectations(t)
	})

	t.Run("service validation error is a 400", func(t *testing.T) {
		service := new(MockProgressService)
		handler := NewProgressHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		service.On("TrackProgress", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("step_id must be one of the onboarding steps"))

		body, _ := json.Marshal(map[string]string{"user_id": "user-1", "step_id": "bogus"})
		req := httptest.NewRequest(http.MethodPost, "/api/progress.track", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		service := new(MockProgressService)
		handler := NewProgressHandler(service, logger.NewTestLogger(t))
		mux := http.NewServeMux()
		handler.RegisterRoutes(mux)

		req := httptest.NewRequest(http.MethodPost, "/api/progress.track", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "TrackProgress", mock.Anything, mock.Anything)
	})
}
