package alloc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable_RowsAndSummary(t *testing.T) {
	claims := []Claim{
		mustClaim(t, "A", 60, 60),
		mustClaim(t, "B", 50, 100),
		mustClaim(t, "C", 30, 30),
	}
	result, err := Plan(claims, 100)
	require.NoError(t, err)

	var buf strings.Builder
	result.WriteTable(&buf)
	out := buf.String()

	assert.Contains(t, out, "Claim")
	for _, name := range []string{"A", "B", "C"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Capacity: 100.00 | Used: 100.00 | Value achieved: 150.00")

	// B got half the pool: 50% share
	assert.Contains(t, out, "50.00")
}

func TestShareOfInitial_ZeroCapacity(t *testing.T) {
	result, err := Plan([]Claim{mustClaim(t, "a", 10, 1)}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.ShareOfInitial(result.Claims[0]),
		"share is 0 when the initial capacity was 0")
}
