package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"keebshop/internal/domain/model"
	"keebshop/internal/repository"
)

// IDトークンの検証に失敗
var ErrTokenInvalid = errors.New("invalid identity token")

// 検証済みトークンから使うクレーム
type GoogleClaims struct {
	Email string
	Name  string
}

// GoogleのIDトークンを検証する約束。実装はinfra/googleauth。
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (GoogleClaims, error)
}

// GoogleLoginUsecase はIDトークンをローカルユーザーに引き当てる。
// 初回はemailをusernameにしてユーザーを作る。
type GoogleLoginUsecase struct {
	userRepo repository.UserRepository
	verifier TokenVerifier
	hasher   PasswordHasher
}

// DI
func NewGoogleLoginUsecase(
	userRepo repository.UserRepository,
	verifier TokenVerifier,
	hasher PasswordHasher,
) *GoogleLoginUsecase {
	return &GoogleLoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		hasher:   hasher,
	}
}

// Execute はトークンを検証し、対応するユーザーとクレームを返す。
func (u *GoogleLoginUsecase) Execute(ctx context.Context, rawToken string) (*model.User, GoogleClaims, error) {
	if rawToken == "" {
		return nil, GoogleClaims{}, ErrTokenInvalid
	}

	claims, err := u.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, claims, ErrTokenInvalid
	}

	user, err := u.userRepo.FindByUsername(ctx, claims.Email)
	if err == nil {
		return user, claims, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, claims, err
	}

	// 初見なのでユーザー作成。
	// パスワードログインはできないよう、ランダム文字列のハッシュを入れる。
	random, err := generateSecureToken(32)
	if err != nil {
		return nil, claims, err
	}
	hashed, err := u.hasher.Hash(random)
	if err != nil {
		return nil, claims, err
	}

	user = &model.User{
		Username:     claims.Email,
		PasswordHash: hashed,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// 同時初回ログインで先を越された場合は引き直す
		if errors.Is(err, repository.ErrDuplicateKey) {
			user, err = u.userRepo.FindByUsername(ctx, claims.Email)
			if err != nil {
				return nil, claims, err
			}
			return user, claims, nil
		}
		return nil, claims, err
	}

	return user, claims, nil
}

func generateSecureToken(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		return "", fmt.Errorf("bytesLen must be positive")
	}

	// ランダムなバイト列を作る（OSが持つ安全な乱数）
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
