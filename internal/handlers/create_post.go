package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/sbilibin2017/blog-platform/internal/logger"
	"github.com/sbilibin2017/blog-platform/internal/middlewares"
)

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 32 << 20

// PostCreator defines the interface that the post service must implement.
type PostCreator interface {
	Create(ctx context.Context, userID int64, title, content string, imageURL *string) error
}

// Uploader stores an uploaded file and returns its servable URL path.
type Uploader interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
}

// CreatePostRequest represents the body for post creation
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Title
	// required: true
	// example: My first post
	Title string `json:"title"`

	// Content
	// required: true
	// example: Hello world
	Content string `json:"content"`
}

// NewCreatePostHandler returns an HTTP handler for creating a post.
// The image file, when attached, is stored before the insert; an insert
// failure therefore leaves the file on disk.
// @Summary Create a post
// @Description Stores a post for the authenticated user with an optional image upload, then redirects to the dashboard.
// @Tags posts
// @Accept mpfd
// @Accept x-www-form-urlencoded
// @Param title formData string true "Post title"
// @Param content formData string true "Post content"
// @Param image formData file false "Optional image"
// @Success 302 "Redirect to /dashboard.html"
// @Failure 401 {object} handlers.errorResponse "Not authenticated"
// @Failure 500 {object} handlers.errorResponse "Error creating post"
// @Router /posts [post]
func NewCreatePostHandler(svc PostCreator, uploads Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req CreatePostRequest
		var imageURL *string

		if isJSON(r) {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusInternalServerError, "Error creating post")
				return
			}
		} else {
			// FormValue parses both urlencoded and multipart bodies.
			r.ParseMultipartForm(maxUploadMemory)
			req.Title = r.FormValue("title")
			req.Content = r.FormValue("content")

			file, header, err := r.FormFile("image")
			switch {
			case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
				// no image attached, image_url stays null
			case err != nil:
				logger.Log.Errorw("failed to read image field", "err", err)
				writeError(w, http.StatusInternalServerError, "Error creating post")
				return
			default:
				defer file.Close()
				url, err := uploads.Save(file, header)
				if err != nil {
					logger.Log.Errorw("failed to store upload", "err", err)
					writeError(w, http.StatusInternalServerError, "Error creating post")
					return
				}
				imageURL = &url
			}
		}

		if err := svc.Create(r.Context(), userID, req.Title, req.Content, imageURL); err != nil {
			logger.Log.Errorw("failed to create post", "err", err)
			writeError(w, http.StatusInternalServerError, "Error creating post")
			return
		}

		http.Redirect(w, r, "/dashboard.html", http.StatusFound)
	}
}
