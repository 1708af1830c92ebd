package notification

import (
	"fmt"
	"os"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// NormalizePhone converts a raw phone string to E.164. Numbers without a
// country prefix are parsed against DEFAULT_PHONE_REGION (BR when unset).
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty phone number")
	}

	region := os.Getenv("DEFAULT_PHONE_REGION")
	if region == "" {
		region = "BR"
	}

	p, err := libphonenumber.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("parse phone %q: %w", raw, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("phone %q is not valid for region %s", raw, region)
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
