package withings

import (
	"errors"
	"testing"
)

func envelope(status any) map[string]any {
	return map[string]any{"status": status, "body": map[string]any{}}
}

func TestResponseBodySuccess(t *testing.T) {
	t.Parallel()

	body := map[string]any{"series": []any{}}
	got, err := ResponseBody(map[string]any{"status": float64(0), "body": body})
	if err != nil {
		t.Fatalf("ResponseBody() error = %v", err)
	}
	if got["series"] == nil {
		t.Errorf("ResponseBody() body = %v, want payload passed through", got)
	}

	// some write endpoints return status 0 with no body at all
	got, err = ResponseBody(map[string]any{"status": float64(0)})
	if err != nil {
		t.Fatalf("ResponseBody() no-body error = %v", err)
	}
	if got != nil {
		t.Errorf("ResponseBody() no-body = %v, want nil", got)
	}

	// a body that is present but not an object is a malformed response, not
	// an empty one
	_, err = ResponseBody(map[string]any{"status": float64(0), "body": "oops"})
	var target *UnexpectedTypeError
	if !errors.As(err, &target) {
		t.Errorf("ResponseBody() non-object body error = %T, want *UnexpectedTypeError", err)
	}
}

// Every code in every status set must map to exactly its category's error
// type, with the original code preserved on the error.
func TestResponseBodyClassification(t *testing.T) {
	t.Parallel()

	for status := range statusAuthFailed {
		_, err := ResponseBody(envelope(float64(status)))
		var target *AuthFailedError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *AuthFailedError", status, err)
		}
		if target.Status != status {
			t.Errorf("status %d: error carries %d", status, target.Status)
		}
	}

	for status := range statusInvalidParams {
		_, err := ResponseBody(envelope(float64(status)))
		var target *InvalidParamsError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *InvalidParamsError", status, err)
		}
		if target.Status != status {
			t.Errorf("status %d: error carries %d", status, target.Status)
		}
	}

	for status := range statusUnauthorized {
		_, err := ResponseBody(envelope(float64(status)))
		var target *UnauthorizedError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *UnauthorizedError", status, err)
		}
	}

	for status := range statusErrorOccurred {
		_, err := ResponseBody(envelope(float64(status)))
		var target *ErrorOccurredError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *ErrorOccurredError", status, err)
		}
	}

	for status := range statusTimeout {
		_, err := ResponseBody(envelope(float64(status)))
		var target *TimeoutError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *TimeoutError", status, err)
		}
	}

	for status := range statusBadState {
		_, err := ResponseBody(envelope(float64(status)))
		var target *BadStateError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *BadStateError", status, err)
		}
	}

	for status := range statusTooManyRequests {
		_, err := ResponseBody(envelope(float64(status)))
		var target *TooManyRequestsError
		if !errors.As(err, &target) {
			t.Fatalf("status %d: error = %T, want *TooManyRequestsError", status, err)
		}
	}
}

func TestResponseBodyUnknownStatus(t *testing.T) {
	t.Parallel()

	_, err := ResponseBody(envelope(float64(999999)))
	var target *UnknownStatusError
	if !errors.As(err, &target) {
		t.Fatalf("error = %T, want *UnknownStatusError", err)
	}
	if target.Status != 999999 {
		t.Errorf("error carries %d, want 999999", target.Status)
	}
}

func TestResponseBodyMalformedEnvelope(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data any
	}{
		{name: "not a dict", data: "hello"},
		{name: "nil", data: nil},
		{name: "missing status", data: map[string]any{"body": map[string]any{}}},
		{name: "non-numeric status", data: map[string]any{"status": "ok"}},
		{name: "fractional status", data: map[string]any{"status": float64(0.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ResponseBody(tt.data)
			var target *UnexpectedTypeError
			if !errors.As(err, &target) {
				t.Errorf("ResponseBody() error = %T, want *UnexpectedTypeError", err)
			}
		})
	}
}

func TestStatusSetsDisjoint(t *testing.T) {
	t.Parallel()

	sets := []map[int]struct{}{
		statusSuccess, statusAuthFailed, statusInvalidParams, statusUnauthorized,
		statusErrorOccurred, statusTimeout, statusBadState, statusTooManyRequests,
	}
	seen := make(map[int]int)
	for i, set := range sets {
		for code := range set {
			if prev, ok := seen[code]; ok {
				t.Errorf("status %d appears in sets %d and %d", code, prev, i)
			}
			seen[code] = i
		}
	}
}
