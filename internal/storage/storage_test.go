package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Path(t *testing.T) {
	k := Key{
		Hash:    42,
		Dataset: "playlists",
		Label:   "run",
	}
	assert.Equal(t, "playlists_42_run", k.Path())
}

func TestVoidStorage(t *testing.T) {
	s, err := VoidShard()("any")
	assert.NoError(t, err)
	assert.NoError(t, s.Store(Key{}, 1))
	var v int
	err = s.Load(Key{}, &v)
	assert.True(t, errors.Is(err, NotFoundErr))
}

func TestMockStorage(t *testing.T) {
	s := NewMockStorage()
	k := Key{Dataset: "d", Label: "l"}
	assert.True(t, errors.Is(s.Load(k, nil), NotFoundErr))
	assert.NoError(t, s.Store(k, "value"))
	assert.NoError(t, s.Load(k, nil))
	assert.Equal(t, "value", s.Elements[k])
}
