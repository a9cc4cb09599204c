package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"enrollment-assistant/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	// Local() makes the exact value depend on the runner timezone.
	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(`"2006-01-02 15:04:05"`) {
		t.Errorf("unexpected layout: %s", str)
	}
}

func TestNewDateTime(t *testing.T) {
	if response.NewDateTime(nil) != nil {
		t.Errorf("expected nil for nil time")
	}
	zero := time.Time{}
	if response.NewDateTime(&zero) != nil {
		t.Errorf("expected nil for zero time")
	}
	now := time.Now()
	if got := response.NewDateTime(&now); got == nil || !time.Time(*got).Equal(now) {
		t.Errorf("expected wrapped time, got %v", got)
	}
}
