package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetMapCeiling(t *testing.T) {
	var m offsetMap

	m.set(10, 100)
	m.set(5, 50)
	m.set(20, 200)

	offset, ok := m.ceiling(7)
	assert.True(t, ok)
	assert.Equal(t, uint64(100), offset)

	offset, ok = m.ceiling(10)
	assert.True(t, ok)
	assert.Equal(t, uint64(100), offset)

	offset, ok = m.ceiling(21)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), offset)

	assert.Equal(t, 3, m.len())
}

func TestOffsetMapSetOverwrites(t *testing.T) {
	var m offsetMap

	m.set(10, 100)
	m.set(10, 999)

	offset, ok := m.ceiling(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(999), offset)
	assert.Equal(t, 1, m.len())
}
