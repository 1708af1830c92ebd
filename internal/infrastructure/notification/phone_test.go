package notification

import "testing"

func TestNormalizePhone(t *testing.T) {
	t.Setenv("DEFAULT_PHONE_REGION", "BR")

	t.Run("local number gains country prefix", func(t *testing.T) {
		got, err := NormalizePhone("11 91234-5678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+5511912345678" {
			t.Fatalf("expected +5511912345678, got %q", got)
		}
	})

	t.Run("already international passes through", func(t *testing.T) {
		got, err := NormalizePhone("+5511912345678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+5511912345678" {
			t.Fatalf("expected +5511912345678, got %q", got)
		}
	})

	t.Run("region override", func(t *testing.T) {
		t.Setenv("DEFAULT_PHONE_REGION", "US")
		got, err := NormalizePhone("(212) 555-0175")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "+12125550175" {
			t.Fatalf("expected +12125550175, got %q", got)
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if _, err := NormalizePhone("   "); err == nil {
			t.Fatal("expected error for blank phone")
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := NormalizePhone("not-a-phone"); err == nil {
			t.Fatal("expected error for invalid phone")
		}
	})
}
