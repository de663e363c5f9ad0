package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{" 2.0.0-rc.1 ", "v2.0.0-rc.1"},
		{"dev", "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestIsRelease(t *testing.T) {
	assert.True(t, IsRelease("1.4.0"))
	assert.False(t, IsRelease("1.4.0-beta.2"))
	assert.False(t, IsRelease("dev"))
}

func TestString(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "1.0.0", ""
	assert.Equal(t, "v1.0.0", String())

	Version, Commit = "dev", "abc1234"
	assert.Equal(t, "dev (abc1234)", String())
}
