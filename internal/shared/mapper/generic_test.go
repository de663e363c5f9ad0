package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{"nil input returns empty slice", nil, []string{}},
		{"empty slice returns empty slice", []int{}, []string{}},
		{"maps in order", []int{3, 1, 2}, []string{"3", "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, strconv.Itoa)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapSliceWithError(t *testing.T) {
	errBoom := errors.New("boom")
	failOnNegative := func(i int) (string, error) {
		if i < 0 {
			return "", errBoom
		}
		return fmt.Sprintf("num_%d", i), nil
	}

	got, err := MapSliceWithError([]int{1, 2}, failOnNegative)
	require.NoError(t, err)
	assert.Equal(t, []string{"num_1", "num_2"}, got)

	got, err = MapSliceWithError(nil, failOnNegative)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = MapSliceWithError([]int{1, -1, 2}, failOnNegative)
	assert.ErrorIs(t, err, errBoom)
	assert.Nil(t, got)
}

func TestMapValues(t *testing.T) {
	groups := map[string][]int{"x": {1, 2}, "y": nil}

	got := MapValues(groups, strconv.Itoa)
	assert.Equal(t, []string{"1", "2"}, got["x"])
	require.Contains(t, got, "y")
	assert.NotNil(t, got["y"])

	_, err := MapValuesWithError(groups, func(i int) (string, error) {
		if i == 2 {
			return "", errors.New("two")
		}
		return strconv.Itoa(i), nil
	})
	assert.EqualError(t, err, "two")
}
