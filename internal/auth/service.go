// Package auth はパスワード認証（サインアップ・ログイン）のドメインロジックを提供する。
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/authapi/internal/model"
	"github.com/hitoshi/authapi/internal/repository"
)

// dummyPassword は未登録メールでのログイン時に照合するダミーのパスワード。
const dummyPassword = "authapi-dummy-password"

// Service はサインアップとログインのビジネスロジックを提供する。
// リクエスト間で状態を持たず、1リクエストにつき検索1回と書き込み最大1回を行う。
type Service struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, hasher PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		now:      time.Now,
	}
}

// Signup は新しいユーザーを登録する。
// 入力検証 → 重複確認 → ハッシュ化 → 保存の順に処理し、最初に失敗した段階で返る。
// 返すエラーはすべて*model.APIErrorで、内部エラーの詳細はログにのみ出力する。
func (s *Service) Signup(ctx context.Context, req SignupRequest) error {
	if apiErr := validateSignup(req); apiErr != nil {
		return apiErr
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return internalError("signup: failed to look up user", err)
	}
	if existing != nil {
		return model.NewUserAlreadyExistsError()
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return internalError("signup: failed to hash password", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	// 事前の重複確認と保存の間に同じメールで登録された場合は、ストアの一意制約で検出する
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			slog.Info("signup lost duplicate email race",
				slog.String("email", req.Email),
			)
			return model.NewUserAlreadyExistsError()
		}
		return internalError("signup: failed to create user", err)
	}

	slog.Info("user signed up",
		slog.String("user_id", user.ID),
	)

	return nil
}

// Login はメールアドレスとパスワードを照合し、一致したユーザーを返す。
// 未登録メールとパスワード不一致はどちらも同じ認証エラーになる。
func (s *Service) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	if apiErr := validateLogin(req); apiErr != nil {
		return nil, apiErr
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, internalError("login: failed to look up user", err)
	}
	if user == nil {
		s.compareDummy(req.Password)
		return nil, model.NewInvalidCredentialsError()
	}

	ok, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		return nil, internalError("login: failed to verify password", err)
	}
	if !ok {
		return nil, model.NewInvalidCredentialsError()
	}

	return user, nil
}

// compareDummy は未登録メールの場合にもハッシュ照合1回分の処理時間をかける。
// 結果は使わない。
func (s *Service) compareDummy(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			slog.Warn("failed to prepare dummy password hash", slog.String("error", err.Error()))
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash == "" {
		return
	}
	_, _ = s.hasher.Compare(s.dummyHash, password)
}

// internalError は内部エラーをログに記録し、クライアント向けの汎用エラーに置き換える。
func internalError(msg string, err error) *model.APIError {
	slog.Error(msg, slog.String("error", err.Error()))
	return model.NewInternalError()
}
