package googleauth

import (
	"context"
	"errors"

	auth "keebshop/internal/usecase/auth_usecase"

	"google.golang.org/api/idtoken"
)

// GoogleのIDトークンを検証するTokenVerifier実装。
// 署名・発行者・audience・期限のチェックはidtokenに任せる。
type Verifier struct {
	clientID string
}

// DI
func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// IDトークンを検証してemail/nameを取り出す。
func (v *Verifier) Verify(ctx context.Context, rawToken string) (auth.GoogleClaims, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return auth.GoogleClaims{}, err
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return auth.GoogleClaims{}, errors.New("email claim missing")
	}

	// nameは無いこともある
	name, _ := payload.Claims["name"].(string)

	return auth.GoogleClaims{Email: email, Name: name}, nil
}
