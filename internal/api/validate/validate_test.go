package validate

import "testing"

func TestEmail(t *testing.T) {
	for _, good := range []string{"a@x.com", "first.last@sub.example.org"} {
		if err := Email(good); err != nil {
			t.Errorf("Email(%q) = %v, want nil", good, err)
		}
	}
	for _, bad := range []string{"", "nope", "a@b", "a b@x.com", "@x.com"} {
		if err := Email(bad); err == nil {
			t.Errorf("Email(%q) = nil, want error", bad)
		}
	}
}

func TestNonEmpty(t *testing.T) {
	if err := NonEmpty("title", ""); err == nil {
		t.Error("expected error for empty value")
	}
	if err := NonEmpty("title", "x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPositive(t *testing.T) {
	if err := Positive("duration", 0); err == nil {
		t.Error("expected error for zero")
	}
	if err := Positive("duration", -5); err == nil {
		t.Error("expected error for negative")
	}
	if err := Positive("duration", 30); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMaxLen(t *testing.T) {
	if err := MaxLen("title", "abc", 2); err == nil {
		t.Error("expected error past limit")
	}
	if err := MaxLen("title", "ab", 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
