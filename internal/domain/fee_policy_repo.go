package domain

// FeePolicyRepository stores the platform-wide fee policy. Reads must
// hit durable storage: buyers under an expired or freshly-closed
// zero-fee window may never be charged off a cached copy.
type FeePolicyRepository interface {
	LoadFeePolicy() (*PlatformFeePolicy, error)
	SaveFeePolicy(policy *PlatformFeePolicy) error
}
