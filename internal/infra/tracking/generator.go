// Package tracking generates parcel tracking identifiers.
package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"zapshift/internal/domain/service"
)

const trackingPrefix = "ZAP"

type generator struct{}

// NewGenerator is the constructor for the tracking ID generator.
func NewGenerator() service.TrackingIDGenerator {
	return &generator{}
}

// Generate produces an identifier of the form ZAP-<YYYYMMDD>-<6 upper hex>.
// The date segment is the current UTC date; the suffix comes from three
// cryptographically random bytes.
func (g *generator) Generate() string {
	date := time.Now().UTC().Format("20060102")

	suffix := make([]byte, 3)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(suffix)

	return trackingPrefix + "-" + date + "-" + strings.ToUpper(hex.EncodeToString(suffix))
}
