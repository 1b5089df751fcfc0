package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/hitoshi/authapi/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SignupRequest はサインアップの入力。
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest はログインの入力。
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// validateSignup はサインアップ入力を検証する。
// 必須項目の欠落は他の違反より優先して報告する。
func validateSignup(req SignupRequest) *model.APIError {
	violations := collectViolations(validate.Struct(req))
	if hasTag(violations, "required") {
		return model.NewValidationError(model.MsgSignupFieldsRequired)
	}

	for _, fe := range violations {
		if fe.Field() == "Name" && fe.Tag() == "min" {
			return model.NewValidationError(model.MsgNameTooShort)
		}
	}
	if len(violations) > 0 {
		return model.NewValidationError(model.MsgSignupFieldsRequired)
	}

	// bcryptの上限はバイト数なので、validatorの文字数ベースのmaxは使えない
	if len(req.Password) > maxPasswordBytes {
		return model.NewValidationError(model.MsgPasswordTooLong)
	}

	return nil
}

// validateLogin はログイン入力を検証する。
func validateLogin(req LoginRequest) *model.APIError {
	if len(collectViolations(validate.Struct(req))) > 0 {
		return model.NewValidationError(model.MsgLoginFieldsRequired)
	}
	return nil
}

func collectViolations(err error) validator.ValidationErrors {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func hasTag(violations validator.ValidationErrors, tag string) bool {
	for _, fe := range violations {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
