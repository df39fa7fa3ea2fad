package blog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/inkwell/inkwell-api/internal/middleware"
	"github.com/inkwell/inkwell-api/internal/models"
	"github.com/inkwell/inkwell-api/internal/store"
)

// BlogStore defines the interface for blog persistence.
type BlogStore interface {
	Insert(ctx context.Context, blog *models.Blog) (string, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
}

// Handler holds blog HTTP handlers.
type Handler struct {
	blogs BlogStore
}

func NewHandler(blogs BlogStore) *Handler {
	return &Handler{blogs: blogs}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// Create stores a new blog post authored by the caller.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}
	authorID, err := primitive.ObjectIDFromHex(ident.UserID)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req models.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		writeMessage(w, http.StatusBadRequest, "title and content are required")
		return
	}

	id, err := h.blogs.Insert(r.Context(), &models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	})
	if err != nil {
		slog.Error("blog insert failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	// Re-fetch to return the stored post with its author populated.
	saved, err := h.blogs.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("blog re-fetch failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "blog created successfully",
		"blog":    saved,
	})
}

// List returns every blog post. Public.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.FindAll(r.Context())
	if err != nil {
		slog.Error("blog list failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	writeJSON(w, http.StatusOK, blogs)
}

// Get returns a single blog post. Public.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogs.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			writeMessage(w, http.StatusNotFound, "blog not found")
			return
		}
		slog.Error("blog fetch failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// Update modifies title and/or content. Author only; empty fields keep
// their stored value.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	var req models.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	blog, err := h.blogs.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			writeMessage(w, http.StatusNotFound, "blog not found")
			return
		}
		slog.Error("blog fetch failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	if blog.AuthorID.Hex() != ident.UserID {
		writeMessage(w, http.StatusForbidden, "unauthorized to update this blog")
		return
	}

	if err := h.blogs.Update(r.Context(), id, req.Title, req.Content); err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			writeMessage(w, http.StatusNotFound, "blog not found")
			return
		}
		slog.Error("blog update failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	updated, err := h.blogs.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("blog re-fetch failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "blog updated successfully",
		"blog":    updated,
	})
}

// Delete permanently removes a blog post. Author only.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	id := chi.URLParam(r, "id")
	blog, err := h.blogs.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			writeMessage(w, http.StatusNotFound, "blog not found")
			return
		}
		slog.Error("blog fetch failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}
	if blog.AuthorID.Hex() != ident.UserID {
		writeMessage(w, http.StatusForbidden, "unauthorized to delete this blog")
		return
	}

	if err := h.blogs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrBlogNotFound) {
			writeMessage(w, http.StatusNotFound, "blog not found")
			return
		}
		slog.Error("blog delete failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	writeMessage(w, http.StatusOK, "blog deleted successfully")
}
