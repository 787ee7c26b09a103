package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-platform/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		contentType      string
		body             string
		mockSetup        func(m *MockRegisterer)
		expectedCode     int
		expectedLocation string
		expectedBody     map[string]string
	}{
		{
			name:        "success json",
			contentType: "application/json",
			body:        `{"username":"john","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret").
					Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/login.html",
		},
		{
			name:        "success form",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"username": {"john"}, "password": {"secret"}}.Encode(),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret").
					Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/login.html",
		},
		{
			name:        "username taken",
			contentType: "application/json",
			body:        `{"username":"alice","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "pass").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Error registering user"},
		},
		{
			name:        "store failure",
			contentType: "application/json",
			body:        `{"username":"bob","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Error registering user"},
		},
		{
			name:         "invalid json",
			contentType:  "application/json",
			body:         "{not json",
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Error registering user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
			if tt.expectedBody != nil {
				var got map[string]string
				assert.NoError(t, json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&got))
				assert.Equal(t, tt.expectedBody, got)
			}
		})
	}
}
