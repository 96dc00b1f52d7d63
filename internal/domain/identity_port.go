package domain

import "context"

// IdentityProvider exposes the KYC verification status of a user. This
// service only ever reads it.
type IdentityProvider interface {
	KYCStatusOf(ctx context.Context, userID string) (KYCStatus, error)
}
