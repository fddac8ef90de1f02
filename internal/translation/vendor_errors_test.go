package translation

import (
	"strings"
	"testing"
)

func TestVendorErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"codic single", `{"errors":[{"code":401,"message":"Unauthorized","context":null}]}`, "401: Unauthorized"},
		{"codic multiple", `{"errors":[{"code":400,"message":"a"},{"code":404,"message":"b"}]}`, "400: a / 404: b"},
		{"nested error", `{"error":{"message":"quota exceeded"}}`, "quota exceeded"},
		{"flat message", `{"message":"Wrong endpoint"}`, "Wrong endpoint"},
		{"empty errors falls through", `{"errors":[],"message":"fallback"}`, "fallback"},
		{"not json", `Bad Gateway`, ""},
		{"unrelated json", `{"status":"down"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vendorErrorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("vendorErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusMessage(t *testing.T) {
	if got := statusMessage(500, nil); got != "500" {
		t.Errorf("statusMessage(empty) = %q", got)
	}
	if got := statusMessage(503, []byte(" busy \n")); got != "503: busy" {
		t.Errorf("statusMessage() = %q", got)
	}

	long := statusMessage(500, []byte(strings.Repeat("x", 300)))
	if !strings.HasSuffix(long, "...") || len(long) != len("500: ")+200+3 {
		t.Errorf("statusMessage(long) = %d chars", len(long))
	}
}
