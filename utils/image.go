package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeImage converts raw image bytes to the bare base64 payload carried
// inside a scan request.
func EncodeImage(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// StripDataURL removes a `data:<mime>;base64,` prefix from an image
// payload, returning the bare payload and the declared mime type. Payloads
// without a prefix pass through unchanged.
func StripDataURL(payload string) (string, string) {
	if !strings.HasPrefix(payload, "data:") {
		return payload, ""
	}

	comma := strings.Index(payload, ",")
	if comma < 0 {
		return payload, ""
	}

	mime := strings.TrimSuffix(payload[len("data:"):comma], ";base64")
	return payload[comma+1:], mime
}

// DecodeImagePayload decodes a base64 image payload into raw bytes. A
// data-URL prefix is tolerated and stripped first.
func DecodeImagePayload(payload string) ([]byte, string, error) {
	payload, mime := StripDataURL(payload)

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, "", fmt.Errorf("decode image payload: %w", err)
	}

	return data, mime, nil
}
