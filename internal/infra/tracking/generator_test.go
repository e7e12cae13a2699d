package tracking

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingIDPattern = regexp.MustCompile(`^ZAP-\d{8}-[0-9A-F]{6}$`)

func TestGenerator_Generate_Shape(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 100; i++ {
		id := gen.Generate()
		require.Regexp(t, trackingIDPattern, id)
	}
}

func TestGenerator_Generate_DateSegmentIsUTC(t *testing.T) {
	gen := NewGenerator()

	id := gen.Generate()
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)

	// The date segment must be today's UTC date. Tolerate a midnight
	// rollover between the two clock reads.
	today := time.Now().UTC().Format("20060102")
	yesterday := time.Now().UTC().Add(-time.Minute).Format("20060102")
	assert.Contains(t, []string{today, yesterday}, parts[1])
}

func TestGenerator_Generate_SuffixVaries(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[gen.Generate()] = struct{}{}
	}

	// 50 draws from a 2^24 space colliding down to a single value would
	// mean the random source is broken.
	assert.Greater(t, len(seen), 1)
}
