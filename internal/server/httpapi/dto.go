package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/server/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type statementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type statementResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type balanceResponse struct {
	Statements []statementResponse `json:"statements"`
	Balance    decimal.Decimal     `json:"balance"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toStatementResponse(st *models.Statement) statementResponse {
	return statementResponse{
		ID:          st.ID,
		UserID:      st.UserID,
		Type:        st.Type.Wire(),
		Amount:      st.Amount,
		Description: st.Description,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}

func toBalanceResponse(b *models.Balance) balanceResponse {
	resp := balanceResponse{
		Statements: make([]statementResponse, 0, len(b.Statements)),
		Balance:    b.Balance,
	}
	for _, st := range b.Statements {
		resp.Statements = append(resp.Statements, toStatementResponse(st))
	}
	return resp
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{Message: message})
}
