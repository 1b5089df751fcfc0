// Package model はドメインモデルを定義する。
package model

import "time"

// User はサインアップで作成される利用者を表す。
// PasswordHash にはbcryptのハッシュ値のみを保持し、平文は保存しない。
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser はログイン成功時にクライアントへ返すユーザー情報。
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public はパスワードハッシュを含まない公開用の表現を返す。
func (u *User) Public() PublicUser {
	return PublicUser{
		Name:  u.Name,
		Email: u.Email,
	}
}
