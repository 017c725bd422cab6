package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinVariants(t *testing.T) {
	list := List()
	require.Len(t, list, 3)

	ids := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{"freestyle", "go19", "mini"}, ids)

	v, err := Lookup(DefaultVariant)
	require.NoError(t, err)
	assert.Equal(t, 15, v.Size)
	assert.Equal(t, 15, v.NewEngine().Size())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("renju")
	assert.Error(t, err)
	assert.False(t, Exists("renju"))
	assert.True(t, Exists("mini"))
}

func TestRegisterRejectsDuplicatesAndTinyBoards(t *testing.T) {
	assert.Panics(t, func() {
		Register(Variant{ID: "freestyle", Title: "dup", Size: 15})
	})
	assert.Panics(t, func() {
		Register(Variant{ID: "tiny", Title: "tiny", Size: 4})
	})
	assert.False(t, Exists("tiny"))
}

func TestCustom(t *testing.T) {
	v := Custom(13)
	assert.Equal(t, "custom13", v.ID)
	assert.Equal(t, 13, v.Size)
	assert.False(t, Exists(v.ID))
}

func TestResolve(t *testing.T) {
	v, err := Resolve("mini")
	require.NoError(t, err)
	assert.Equal(t, 9, v.Size)

	v, err = Resolve("custom11")
	require.NoError(t, err)
	assert.Equal(t, Custom(11), v)

	for _, id := range []string{"custom", "custom4", "custom011", "custom+9", "renju"} {
		_, err := Resolve(id)
		assert.Error(t, err, id)
	}
}

func TestListWithAddsCustomVariants(t *testing.T) {
	list := ListWith("custom11", "mini", "custom11", "bogus")
	ids := make([]string, len(list))
	for i, v := range list {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"custom11", "freestyle", "go19", "mini"}, ids)
	assert.Equal(t, 11, list[0].Size)
}

func TestWithSize(t *testing.T) {
	mini, err := Lookup("mini")
	require.NoError(t, err)

	assert.Equal(t, mini, mini.WithSize(0))
	assert.Equal(t, mini, mini.WithSize(9))
	assert.Equal(t, Custom(11), mini.WithSize(11))
}
