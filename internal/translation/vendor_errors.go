package translation

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// vendorErrorMessage extracts a human readable message from a vendor error
// body. It understands {"errors":[{"code","message"}]}, {"error":{"message"}}
// and {"message"} payloads and returns "" for anything else.
func vendorErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	doc := gjson.ParseBytes(body)

	if list := doc.Get("errors"); list.IsArray() {
		var parts []string
		for _, item := range list.Array() {
			parts = append(parts, fmt.Sprintf("%s: %s", item.Get("code").String(), item.Get("message").String()))
		}
		if len(parts) > 0 {
			return strings.Join(parts, " / ")
		}
	}

	if msg := doc.Get("error.message").String(); msg != "" {
		return msg
	}
	return doc.Get("message").String()
}

// statusMessage formats a failed response without a structured payload
func statusMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Sprintf("%d", status)
	}
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return fmt.Sprintf("%d: %s", status, text)
}
