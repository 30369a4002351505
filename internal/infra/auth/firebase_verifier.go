package auth

import (
	"context"

	"careconnect/internal/domain/entity"
	"careconnect/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// IDTokenVerifier is the subset of *auth.Client used to check Firebase ID tokens.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type firebaseVerifier struct {
	client IDTokenVerifier
}

// NewFirebaseVerifier verifies Firebase ID tokens issued to the web and Android clients.
func NewFirebaseVerifier(client IDTokenVerifier) service.TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	identity := &service.Identity{UserID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	// custom claim set by the role selection flow; unknown roles are ignored
	if claim, ok := decoded.Claims["role"].(string); ok {
		if role, valid := entity.ParseRole(claim); valid {
			identity.Roles = []string{role.String()}
		}
	}

	return identity, nil
}
