// internal/handlers/adherence_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supplement_keep/internal/handlers"
	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/service/mocks"
)

func TestAdherenceHandler_ToggleAdherence(t *testing.T) {
	userID := uuid.New()
	supplementID := uuid.New()
	scheduleID := uuid.New()
	adherenceID := uuid.New()

	validBody := model.ToggleAdherenceRequest{
		SupplementID: supplementID.String(),
		ScheduleID:   scheduleID.String(),
		TakenAt:      "2024-03-10",
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.AdherenceService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:   "正常系: トグルON",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.AdherenceService) {
				m.On("Toggle", mock.Anything, userID, supplementID, scheduleID, "2024-03-10").
					Return(&model.ToggleAdherenceResponse{Success: true, IsTaken: true, AdherenceID: &adherenceID}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.ToggleAdherenceResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.Success)
				assert.True(t, resp.IsTaken)
				require.NotNil(t, resp.AdherenceID)
				assert.Equal(t, adherenceID, *resp.AdherenceID)
			},
		},
		{
			name:   "正常系: トグルOFFはadherence_idがnull",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.AdherenceService) {
				m.On("Toggle", mock.Anything, userID, supplementID, scheduleID, "2024-03-10").
					Return(&model.ToggleAdherenceResponse{Success: true, IsTaken: false, AdherenceID: nil}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.ToggleAdherenceResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.IsTaken)
				assert.Nil(t, resp.AdherenceID)
			},
		},
		{
			name:           "異常系: 認証なしは401",
			userID:         nil,
			body:           validBody,
			setupMock:      func(m *mocks.AdherenceService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "異常系: supplement_idがUUIDでないと400",
			userID: &userID,
			body: model.ToggleAdherenceRequest{
				SupplementID: "not-a-uuid",
				ScheduleID:   scheduleID.String(),
				TakenAt:      "2024-03-10",
			},
			setupMock:      func(m *mocks.AdherenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 必須フィールド欠落は400",
			userID:         &userID,
			body:           map[string]string{"supplement_id": supplementID.String()},
			setupMock:      func(m *mocks.AdherenceService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "異常系: 他人のサプリメントは404",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.AdherenceService) {
				m.On("Toggle", mock.Anything, userID, supplementID, scheduleID, "2024-03-10").
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.AdherenceService)
			tt.setupMock(mockService)

			handler := handlers.NewAdherenceHandler(mockService, nil)
			router := chi.NewRouter()
			router.Use(middleware.DevUserContextMiddleware)
			router.Post("/supplements/adherence/toggle", handler.ToggleAdherence)

			bodyBytes, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/supplements/adherence/toggle", bytes.NewReader(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			if tt.userID != nil {
				req.Header.Set("X-User-ID", tt.userID.String())
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.Bytes())
			}
			mockService.AssertExpectations(t)
		})
	}
}
