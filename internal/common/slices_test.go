package common

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]int{0}))
}

func TestMapErr(t *testing.T) {
	got, err := MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	calls := 0
	got, err = MapErr([]string{"1", "x", "3"}, func(s string) (int, error) {
		calls++
		return strconv.Atoi(s)
	})

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Nil(t, got)
	assert.Equal(t, 2, calls)
}

func TestPairs(t *testing.T) {
	var keys, values []string

	for k, v := range Pairs([]string{"a", "1", "b", "2", "dangling"}) {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, []string{"1", "2"}, values)

	for k := range Pairs([]string{"a", "1", "b", "2"}) {
		assert.Equal(t, "a", k)
		break
	}
}
