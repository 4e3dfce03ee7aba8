package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	g := New()

	assert.True(t, g.Enter())
	assert.False(t, g.Enter(), "re-entry while held must be rejected")

	g.Exit()
	assert.True(t, g.Enter())
	g.Exit()

	// Exit without Enter must not block or panic.
	g.Exit()
	assert.True(t, g.Enter())
}
