package model

import "fmt"

// APIError はクライアントに返すエラーの統一表現。
// Messageはそのままレスポンスに載るため、内部の詳細を含めてはならない。
type APIError struct {
	Code     string // エラーコード
	Message  string // ユーザー向けメッセージ
	Category string // カテゴリ: validation, auth, system
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeConflict   = "CONFLICT"
	ErrCodeAuthFailed = "AUTH_FAILED"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// ユーザー向けメッセージ
const (
	MsgSignupFieldsRequired = "All fields are required"
	MsgLoginFieldsRequired  = "Email and password are required"
	MsgNameTooShort         = "Name must be at least 3 characters"
	MsgPasswordTooLong      = "Password must be at most 72 bytes"
	MsgUserAlreadyExists    = "User already exists"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgServerError          = "Server error"
	MsgInvalidRequestBody   = "Invalid request body"
)

// NewValidationError は入力検証エラーを生成する。
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  message,
		Category: "validation",
	}
}

// NewUserAlreadyExistsError はメールアドレス重複エラーを生成する。
func NewUserAlreadyExistsError() *APIError {
	return &APIError{
		Code:     ErrCodeConflict,
		Message:  MsgUserAlreadyExists,
		Category: "validation",
	}
}

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// 未登録メールとパスワード不一致は同じエラーにまとめ、アカウントの存在を推測させない。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeAuthFailed,
		Message:  MsgInvalidCredentials,
		Category: "auth",
	}
}

// NewInternalError は内部エラーを生成する。
func NewInternalError() *APIError {
	return &APIError{
		Code:     ErrCodeInternal,
		Message:  MsgServerError,
		Category: "system",
	}
}
