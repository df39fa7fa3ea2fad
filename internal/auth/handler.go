package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/inkwell-api/internal/models"
	"github.com/inkwell/inkwell-api/internal/store"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewHandler(users UserStore, secret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{users: users, secret: secret, tokenTTL: tokenTTL}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// Signup registers a new user. No token is issued; the caller logs in separately.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username, email, and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if _, err := h.users.CreateUser(r.Context(), req.Username, req.Email, string(hashed)); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, "email already registered")
			return
		}
		slog.Error("create user failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeMessage(w, http.StatusCreated, "user registered successfully")
}

// Login verifies credentials and returns a signed bearer token.
// Unknown email and wrong password produce the identical response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeMessage(w, http.StatusBadRequest, "invalid credentials")
			return
		}
		slog.Error("user lookup failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid credentials")
		return
	}

	token, err := GenerateToken(user.ID.Hex(), h.secret, h.tokenTTL)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
