package dto

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestParseFecha(t *testing.T) {
	cases := []struct {
		name    string
		in      *string
		want    string
		wantNil bool
		wantErr bool
	}{
		{"nil", nil, "", true, false},
		{"vacía", strptr(""), "", true, false},
		{"simple", strptr("2025-03-10"), "2025-03-10", false, false},
		{"rfc3339", strptr("2025-03-10T00:00:00Z"), "2025-03-10", false, false},
		{"basura", strptr("10/03/2025"), "", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFecha(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("se esperaba error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFecha: %v", err)
			}
			if tc.wantNil {
				if got != nil {
					t.Fatalf("got = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Format("2006-01-02") != tc.want {
				t.Fatalf("got = %v, want %s", got, tc.want)
			}
		})
	}
}

func TestFormatFechaRoundTrip(t *testing.T) {
	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got := FormatFecha(&d)
	if got == nil || *got != "2025-03-10" {
		t.Fatalf("got = %v, want 2025-03-10", got)
	}
	if FormatFecha(nil) != nil {
		t.Fatal("nil debe formatear a nil")
	}
}
