package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/blog-platform/internal/logger"
	"github.com/sbilibin2017/blog-platform/internal/models"
)

// PostLister defines the interface that the post service must implement.
type PostLister interface {
	List(ctx context.Context) ([]models.PostWithAuthor, error)
}

// NewListPostsHandler returns an HTTP handler for the public post listing.
// @Summary List posts
// @Description Returns all posts joined with the author's username, newest first.
// @Tags posts
// @Produce json
// @Success 200 {array} models.PostWithAuthor
// @Failure 500 {object} handlers.errorResponse "Error fetching posts"
// @Router /posts [get]
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch posts", "err", err)
			writeError(w, http.StatusInternalServerError, "Error fetching posts")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}
