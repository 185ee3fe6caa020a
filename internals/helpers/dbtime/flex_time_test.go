package dbtime

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

func TestFlexTimeUnmarshal(t *testing.T) {
	want := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-06-10T14:30:00Z"`, want},
		{`"2025-06-10T20:30:00+06:00"`, want},
		{`"2025-06-10T14:30"`, want},
		{`"2025-06-10"`, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		{"1749565800000", want},
	}
	for _, tt := range tests {
		var ft FlexTime
		if err := sonic.Unmarshal([]byte(tt.in), &ft); err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if !ft.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.in, ft.Time, tt.want)
		}
	}

	var bad FlexTime
	if err := sonic.Unmarshal([]byte(`"next tuesday"`), &bad); err == nil {
		t.Error("expected error for free text")
	}
}

func TestFlexTimeNullIsZero(t *testing.T) {
	var ft FlexTime
	if err := ft.UnmarshalJSON([]byte("null")); err != nil || !ft.IsZero() {
		t.Fatalf("got %v, %v", ft, err)
	}
}
