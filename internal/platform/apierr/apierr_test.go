package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusAndCodeThroughWrapping(t *testing.T) {
	base := NotFound("user_not_found", errors.New("user 7 not found"))
	wrapped := fmt.Errorf("infer: %w", base)

	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Fatalf("StatusOf: got=%d want=%d", got, http.StatusNotFound)
	}
	if got := CodeOf(wrapped, "fallback"); got != "user_not_found" {
		t.Fatalf("CodeOf: got=%q", got)
	}
	if wrapped.Error() != "infer: user 7 not found" {
		t.Fatalf("unexpected message: %q", wrapped.Error())
	}
}

func TestPlainErrorDefaults(t *testing.T) {
	err := errors.New("boom")
	if got := StatusOf(err); got != http.StatusInternalServerError {
		t.Fatalf("StatusOf: got=%d", got)
	}
	if got := CodeOf(err, "internal"); got != "internal" {
		t.Fatalf("CodeOf: got=%q", got)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "" {
		t.Fatalf("nil error should render empty")
	}
	if got := New(http.StatusConflict, "", nil).Error(); got != "api error (409)" {
		t.Fatalf("status fallback: %q", got)
	}
	if got := Conflict("duplicate", nil).Error(); got != "duplicate" {
		t.Fatalf("code fallback: %q", got)
	}
}
