package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"markbook/internal/common"
	"markbook/internal/server/models"
	"markbook/internal/server/services"
)

type registerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dob"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type scoresPayload struct {
	Scores []models.SubjectScore `json:"scores"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrInvalidAccount)
		return
	}

	account, err := s.auth.Register(r.Context(), &services.RegisterRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "name", account.Name)
	s.writeJSON(w, http.StatusCreated, accountResponse{ID: account.ID, Name: account.Name, Email: account.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrInvalidCredentials)
		return
	}

	account, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	id := s.sessions.Open(account)

	s.logger.Info(r.Context(), "Logged in", "name", account.Name)
	s.writeJSON(w, http.StatusOK, loginResponse{SessionID: id, Name: account.Name, Email: account.Email})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Close(sessionIDFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePutScores(w http.ResponseWriter, r *http.Request) {
	var payload scoresPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, r, common.ErrInvalidScores)
		return
	}

	account := accountFromContext(r.Context())
	if err := s.records.SubmitScores(r.Context(), account.Name, payload.Scores); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	account := accountFromContext(r.Context())

	scores, err := s.records.FetchScores(r.Context(), account.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, scoresPayload{Scores: scores})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to status codes. Messages stay generic so
// credential and existence checks never leak the other party's data.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, common.ErrInvalidAccount), errors.Is(err, common.ErrInvalidScores):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrNotLoggedIn):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrAccountExists):
		status = http.StatusConflict
	case errors.Is(err, common.ErrNoRecordsYet):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
		s.logger.Error(r.Context(), "storage failure", "error", err.Error())
	default:
		status = http.StatusInternalServerError
		s.logger.Error(r.Context(), "unexpected error", "error", err.Error())
	}

	msg := err.Error()
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		msg = common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrStorageUnavailable):
		msg = common.ErrStorageUnavailable.Error()
	}

	s.writeJSON(w, status, errorResponse{Error: msg})
}
