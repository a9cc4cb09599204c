package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "enrollment-assistant/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", errors.New("boom"), http.StatusBadRequest},
		{"http error", pkgErrors.NewHTTPError(http.StatusNotFound, "missing"), http.StatusNotFound},
		{"wrapped http error", fmt.Errorf("ctx: %w", pkgErrors.NewHTTPError(http.StatusConflict, "dup")), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
