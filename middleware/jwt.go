package middleware

import (
	"context"
	"fmt"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"go.uber.org/zap"

	"github.com/andrewpaige1/vocabook-api/auth"
	"github.com/andrewpaige1/vocabook-api/config"
	"github.com/andrewpaige1/vocabook-api/utils"
)

// CustomClaims contains the non-registered claims of a session token.
type CustomClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Validate does nothing; the role is re-read from the database per request.
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// EnsureValidToken is a middleware that will check the validity of our JWT.
// The token is taken from the Authorization header or the auth cookie.
func EnsureValidToken(cfg config.JWT, log *zap.Logger) (func(next http.Handler) http.Handler, error) {
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(cfg.SecretKey), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Debug("encountered error while validating JWT", zap.Error(err), zap.String("path", r.URL.Path))
		utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.")
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
		jwtmiddleware.WithTokenExtractor(jwtmiddleware.MultiTokenExtractor(
			jwtmiddleware.AuthHeaderTokenExtractor,
			jwtmiddleware.CookieTokenExtractor(auth.CookieName),
		)),
	)

	return func(next http.Handler) http.Handler {
		return middleware.CheckJWT(next)
	}, nil
}
