package utils

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var nonAlnum = regexp.MustCompile("[^a-z0-9]")

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

// GenerateInvoiceNo generates a unique invoice number, e.g. INV-20240305-1A2B3C4D
func GenerateInvoiceNo(at time.Time) string {
	return "INV-" + at.UTC().Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateTrackingNumber generates a shipment tracking number
func GenerateTrackingNumber() string {
	return "TRK" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}

// GenerateUsername builds a login name from the first name and last
// initial followed by four random digits, e.g. "adal4821"
func GenerateUsername(firstName, lastName string) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(firstName), "")
	last := nonAlnum.ReplaceAllString(strings.ToLower(lastName), "")
	if last != "" {
		base += last[:1]
	}
	if base == "" {
		base = "user"
	}
	return fmt.Sprintf("%s%04d", base, rand.IntN(10000))
}
