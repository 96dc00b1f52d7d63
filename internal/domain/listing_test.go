package domain

import "testing"

func TestListingTransitions(t *testing.T) {
	tests := []struct {
		from    ListingStatus
		to      ListingStatus
		allowed bool
	}{
		{ListingDraft, ListingPendingReview, true},
		{ListingDraft, ListingArchived, true},
		{ListingDraft, ListingApproved, false},
		{ListingPendingReview, ListingApproved, true},
		{ListingPendingReview, ListingRejected, true},
		{ListingPendingReview, ListingArchived, true},
		{ListingPendingReview, ListingSold, false},
		{ListingApproved, ListingSold, true},
		{ListingApproved, ListingArchived, true},
		{ListingApproved, ListingRejected, false},
		{ListingRejected, ListingDraft, true},
		{ListingRejected, ListingPendingReview, false},
		{ListingSold, ListingApproved, false},
		{ListingSold, ListingArchived, false},
		{ListingArchived, ListingDraft, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestListingStatusClassification(t *testing.T) {
	for _, s := range []ListingStatus{ListingDraft, ListingPendingReview, ListingApproved} {
		if !s.Active() {
			t.Errorf("%s should count against quota", s)
		}
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []ListingStatus{ListingSold, ListingArchived} {
		if s.Active() {
			t.Errorf("%s should not count against quota", s)
		}
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	// Rejected is neither active nor terminal: it can come back as a draft.
	if ListingRejected.Active() || ListingRejected.Terminal() {
		t.Error("rejected should be inactive and non-terminal")
	}
}

func TestTransactionTransitions(t *testing.T) {
	tests := []struct {
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{TxPendingPayment, TxPaymentHeld, true},
		{TxPendingPayment, TxCancelled, true},
		{TxPendingPayment, TxShipped, false},
		{TxPaymentHeld, TxShipped, true},
		{TxPaymentHeld, TxDisputed, true},
		{TxShipped, TxDelivered, true},
		{TxDelivered, TxCompleted, true},
		{TxDisputed, TxRefunded, true},
		{TxDisputed, TxCompleted, true},
		{TxCompleted, TxRefunded, false},
		{TxCancelled, TxPaymentHeld, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}
