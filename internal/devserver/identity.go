package devserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/me/hotelx/internal/devserver/store"
	"github.com/me/hotelx/pkg/model"
)

// RoleCustomer is assigned to every self-registered account. Promote a user
// to "admin" directly in the database when testing admin flows.
const RoleCustomer = "customer"

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterData
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	existing, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.internalError(w, r, "lookup user", err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email is already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.internalError(w, r, "hash password", err)
		return
	}

	u := &store.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         RoleCustomer,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(r.Context(), u); err != nil {
		s.internalError(w, r, "create user", err)
		return
	}

	pair, err := s.issueTokenPair(r.Context(), u)
	if err != nil {
		s.internalError(w, r, "issue tokens", err)
		return
	}
	s.logger.Info("user registered", "user_id", u.ID, "email", u.Email)
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginData
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	u, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.internalError(w, r, "lookup user", err)
		return
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	pair, err := s.issueTokenPair(r.Context(), u)
	if err != nil {
		s.internalError(w, r, "issue tokens", err)
		return
	}
	s.logger.Info("user logged in", "user_id", u.ID)
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenPair
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	rt, err := s.store.GetRefreshToken(r.Context(), hashToken(req.RefreshToken))
	if err != nil {
		s.internalError(w, r, "lookup refresh token", err)
		return
	}
	if rt == nil || time.Now().After(rt.ExpiresAt) {
		writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	u, err := s.store.GetUser(r.Context(), rt.UserID)
	if err != nil {
		s.internalError(w, r, "lookup user", err)
		return
	}
	if u == nil {
		writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	// Rotate: the presented token is spent whether or not issuing succeeds.
	if err := s.store.DeleteRefreshToken(r.Context(), rt.Hash); err != nil {
		s.internalError(w, r, "rotate refresh token", err)
		return
	}
	pair, err := s.issueTokenPair(r.Context(), u)
	if err != nil {
		s.internalError(w, r, "issue tokens", err)
		return
	}
	s.logger.Debug("refresh token rotated", "user_id", u.ID)
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req model.TokenPair
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	if err := s.store.DeleteRefreshToken(r.Context(), hashToken(req.RefreshToken)); err != nil {
		s.internalError(w, r, "delete refresh token", err)
		return
	}
	s.logger.Info("user logged out", "user_id", user.ID)
	writeJSON(w, http.StatusOK, true)
}

// validationMessage flattens a model validation error into the single
// message string the error body carries.
func validationMessage(err error) string {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return strings.Join(verr.Messages(), ", ")
	}
	return err.Error()
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op, "error", err, "request_id", RequestIDFromContext(r.Context()))
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
