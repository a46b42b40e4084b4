package auth

import (
	"context"
	"errors"

	"keebshop/internal/domain/model"
	"keebshop/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Username string
	Password string
}

// usernameまたはパスワードが違う。
// ユーザーが居ない場合もこれに寄せる（どちらか判らないように）。
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginUsecase は認証だけを担当する。
// セッションへのユーザー紐付けはhandler側で行う。
type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (*model.User, error) {
	//usernameでユーザー取得
	user, err := u.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
