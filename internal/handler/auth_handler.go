package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/authapi/internal/auth"
	"github.com/hitoshi/authapi/internal/metrics"
	"github.com/hitoshi/authapi/internal/middleware"
	"github.com/hitoshi/authapi/internal/model"
)

// maxRequestBodyBytes はリクエストボディの上限サイズ。
const maxRequestBodyBytes = 1 << 20

// 成功時のメッセージ
const (
	msgSignupSuccessful = "Signup successful"
	msgLoginSuccessful  = "Login successful"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Signup は新しいユーザーを登録する。
	Signup(ctx context.Context, req auth.SignupRequest) error
	// Login は資格情報を照合し、一致したユーザーを返す。
	Login(ctx context.Context, req auth.LoginRequest) (*model.User, error)
}

// AuthRecorder はサインアップ・ログインの結果を記録する。
type AuthRecorder interface {
	RecordSignup(outcome string)
	RecordLogin(outcome string)
}

// AuthHandler はサインアップとログインのHTTPハンドラー。
type AuthHandler struct {
	service  AuthServiceInterface
	recorder AuthRecorder
}

// NewAuthHandler はAuthHandlerを生成する。recorderはnilでもよい。
func NewAuthHandler(service AuthServiceInterface, recorder AuthRecorder) *AuthHandler {
	return &AuthHandler{
		service:  service,
		recorder: recorder,
	}
}

// loginResponse はログイン成功時のレスポンス。
type loginResponse struct {
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

// Signup はユーザー登録を処理する。
// POST /api/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if !decodeJSONBody(w, r, &req) {
		h.recordSignup(metrics.OutcomeValidation)
		return
	}

	if err := h.service.Signup(r.Context(), req); err != nil {
		h.recordSignup(outcomeForError(err))
		handleServiceError(w, err)
		return
	}

	h.recordSignup(metrics.OutcomeSuccess)
	middleware.WriteMessage(w, http.StatusCreated, msgSignupSuccessful)
}

// Login は資格情報によるログインを処理する。
// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !decodeJSONBody(w, r, &req) {
		h.recordLogin(metrics.OutcomeValidation)
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.recordLogin(outcomeForError(err))
		handleServiceError(w, err)
		return
	}

	h.recordLogin(metrics.OutcomeSuccess)
	middleware.WriteJSON(w, http.StatusOK, loginResponse{
		Message: msgLoginSuccessful,
		User:    user.Public(),
	})
}

func (h *AuthHandler) recordSignup(outcome string) {
	if h.recorder != nil {
		h.recorder.RecordSignup(outcome)
	}
}

func (h *AuthHandler) recordLogin(outcome string) {
	if h.recorder != nil {
		h.recorder.RecordLogin(outcome)
	}
}

// decodeJSONBody はリクエストボディをJSONとしてdstに読み込む。
// 失敗した場合は400レスポンスを書き込んでfalseを返す。
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		middleware.WriteMessage(w, http.StatusBadRequest, model.MsgInvalidRequestBody)
		return false
	}
	return true
}
