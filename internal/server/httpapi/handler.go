package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/models"
)

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", req.Email)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *HTTPServer) handleAuthenticate(w http.ResponseWriter, r *http.Request) {

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{User: toUserResponse(result.User), Token: result.Token})
}

func (s *HTTPServer) handleProfile(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	user, err := s.users.Profile(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *HTTPServer) handleDeposit(w http.ResponseWriter, r *http.Request) {
	s.handleCreateStatement(w, r, models.OperationDeposit)
}

func (s *HTTPServer) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	s.handleCreateStatement(w, r, models.OperationWithdraw)
}

func (s *HTTPServer) handleCreateStatement(w http.ResponseWriter, r *http.Request, opType models.OperationType) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req statementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	statement, err := s.statements.CreateStatement(r.Context(), userID, opType, req.Amount, req.Description)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStatementResponse(statement))
}

func (s *HTTPServer) handleBalance(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	balance, err := s.statements.GetBalance(r.Context(), userID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBalanceResponse(balance))
}

func (s *HTTPServer) handleGetStatement(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	statement, err := s.statements.GetStatement(r.Context(), userID, chi.URLParam(r, "statementID"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatementResponse(statement))
}

// writeServiceError maps the service error taxonomy onto HTTP status codes.
// Unrecognized errors are logged and reported as a plain 500.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrStatementNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrInsufficientFunds),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidOperationType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		s.logger.Error(r.Context(), err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
