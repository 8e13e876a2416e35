package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()
	assert.Len(t, a, 26)
	assert.True(t, IsULID(a))
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
	assert.False(t, IsULID("not-an-id"))
}

func TestStringToNullString(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)
	ns := StringToNullString("A")
	assert.True(t, ns.Valid)
	assert.Equal(t, "A", NullStringToString(ns))
	assert.Equal(t, "", NullStringToString(StringToNullString("")))
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, `id "id", subject "subject"`, ColumnList("", "id", "subject"))
	assert.Equal(t, `q.id "id"`, ColumnList("q", "id"))
}
