package service

import "context"

// VerifiedIdentity is the caller identity fact produced by token
// verification. Only the email is consumed by the application layer.
type VerifiedIdentity struct {
	UID   string
	Email string
}

// IdentityVerifier verifies a bearer credential and resolves the
// caller's identity, or fails with an unauthorized condition.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*VerifiedIdentity, error)
}
