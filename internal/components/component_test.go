package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase(t *testing.T) {
	b := NewBase(80, 24)

	w, h := b.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.False(t, b.Focused())

	b.Focus()
	assert.True(t, b.Focused())

	b.Blur()
	assert.False(t, b.Focused())

	b.SetSize(100, 40)
	w, h = b.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}
