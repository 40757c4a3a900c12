package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	root := NewMockLogger()
	child := root.WithField(FieldComponent, "store")
	child.WithError(errors.New("boom")).Error("save failed", F(FieldKey, "k"))
	root.Info("plain")

	entries := root.GetEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, "ERROR", entries[0].Level)
	assert.EqualError(t, entries[0].Error, "boom")
	assert.Equal(t, []Field{F(FieldComponent, "store"), F(FieldKey, "k")}, entries[0].Fields)

	assert.True(t, root.HasEntry("INFO", "plain"))
	assert.Len(t, root.GetEntriesByLevel("ERROR"), 1)
	assert.False(t, root.HasEntry("WARN", "plain"))
}

func TestMockLogger_ZeroValueUsable(t *testing.T) {
	var m MockLogger
	m.Warn("zero value")
	assert.True(t, m.HasEntry("WARN", "zero value"))
}
