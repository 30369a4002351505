package auth

import (
	"log/slog"

	"careconnect/config"
	"careconnect/internal/domain/constants"
	"careconnect/internal/domain/service"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the TokenVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	AuthClient *fbauth.Client `optional:"true"`
}

// NewTokenVerifier selects the bearer token verifier named by auth.provider.
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	switch params.Config.Auth.Provider {
	case constants.AuthProviderFirebase:
		if params.AuthClient == nil {
			return nil, errors.New("firebase auth client is required for the firebase auth provider")
		}
		params.Logger.Info("Using Firebase ID token verifier")

		return NewFirebaseVerifier(params.AuthClient), nil

	case constants.AuthProviderJWT:
		if params.Config.Env.Env == constants.EnvProduction {
			return nil, errors.New("jwt auth provider is not allowed in production")
		}
		params.Logger.Warn("Using local JWT verifier")

		return NewJWTService(params.Config)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", params.Config.Auth.Provider)
	}
}
