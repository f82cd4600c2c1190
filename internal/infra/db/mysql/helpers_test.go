package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashRoundTrip(t *testing.T) {
	assert.Equal(t, "-", stringOrDash("  "))
	assert.Equal(t, "web", stringOrDash("web"))
	assert.Equal(t, "", dashToEmpty(stringOrDash("")))
	assert.Equal(t, "web", dashToEmpty(stringOrDash("web")))
}
