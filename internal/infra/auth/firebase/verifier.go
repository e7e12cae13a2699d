// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"log/slog"

	"zapshift/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type identityVerifier struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// NewIdentityVerifier creates a verifier backed by the Firebase Admin SDK.
func NewIdentityVerifier(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.IdentityVerifier, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &identityVerifier{
		client: client,
		logger: logger,
	}, nil
}

// VerifyIDToken validates the given Firebase ID token and resolves the
// caller's verified email.
func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		v.logger.Warn("ID token verified but carries no email claim", slog.String("uid", token.UID))

		return nil, errors.New("token carries no email claim")
	}

	return &service.VerifiedIdentity{
		UID:   token.UID,
		Email: email,
	}, nil
}
