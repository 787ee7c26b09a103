package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-platform/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns posts newest first", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)

		now := time.Now().UTC().Truncate(time.Second)
		imageURL := "/uploads/1700000000000-cat.png"
		posts := []models.PostWithAuthor{
			{ID: 2, Title: "second", Content: "C2", ImageURL: &imageURL, UserID: 1, CreatedAt: now, Username: "alice"},
			{ID: 1, Title: "first", Content: "C1", ImageURL: nil, UserID: 2, CreatedAt: now.Add(-time.Hour), Username: "bob"},
		}
		mockSvc.EXPECT().List(gomock.Any()).Return(posts, nil)

		handler := NewListPostsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got []models.PostWithAuthor
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Title)
		assert.Equal(t, "alice", got[0].Username)
		assert.Equal(t, &imageURL, got[0].ImageURL)
		assert.Equal(t, "first", got[1].Title)
		assert.Nil(t, got[1].ImageURL)
	})

	t.Run("empty list is an empty JSON array", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.PostWithAuthor{}, nil)

		handler := NewListPostsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := NewMockPostLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("select failed"))

		handler := NewListPostsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var got map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, map[string]string{"error": "Error fetching posts"}, got)
	})
}
