package validation

import (
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	if err := ValidateCredentials("alice", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateCredentials("", "secret"); err != ErrCredentialsRequired {
		t.Fatalf("expected ErrCredentialsRequired, got %v", err)
	}
	if err := ValidateCredentials("alice", "   "); err != ErrCredentialsRequired {
		t.Fatalf("expected ErrCredentialsRequired, got %v", err)
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-01-31"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"2024-13-01", "01-01-2024", "today", ""} {
		if err := ValidateDate(bad); err != ErrInvalidDate {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", bad, err)
		}
	}
}

func TestValidateSetsReps(t *testing.T) {
	three := int64(3)
	zero := int64(0)

	if err := ValidateSetsReps(&three, &three); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSetsReps(nil, &three); err != ErrSetsRepsRequired {
		t.Fatalf("expected ErrSetsRepsRequired, got %v", err)
	}
	if err := ValidateSetsReps(&three, &zero); err != ErrSetsRepsNotPositive {
		t.Fatalf("expected ErrSetsRepsNotPositive, got %v", err)
	}
}
