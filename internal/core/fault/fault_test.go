package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validationf("field %s is required", "title"), want: Validation},
		{name: "credential", err: Credential("Invalid password"), want: InvalidCredential},
		{name: "store", err: StoreErr("failed to list", errors.New("disk full")), want: Store},
		{name: "wrapped store", err: fmt.Errorf("approve: %w", StoreErr("failed", errors.New("x"))), want: Store},
		{name: "plain error", err: errors.New("boom"), want: Unknown},
		{name: "nil", err: nil, want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreErr(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		if err := StoreErr("failed", nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("keeps the cause reachable", func(t *testing.T) {
		err := StoreErr("failed to delete submission", fmt.Errorf("submission S-1: %w", ErrNotFound))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected errors.Is(err, ErrNotFound)")
		}
		if err.Error() != "failed to delete submission: submission S-1: not found" {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestIs(t *testing.T) {
	if Is(nil, Validation) {
		t.Error("nil error must not match any kind")
	}
	if !Is(Validationf("x"), Validation) {
		t.Error("expected validation match")
	}
}
