package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{95, ExcellentValue},
		{90, ExcellentValue},
		{80, GoodValue},
		{75, GoodValue},
		{60, FairValue},
		{50, FairValue},
		{49.99, PoorValue},
		{0, PoorValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainLabel(tt.rate), "rate %.2f", tt.rate)
	}
}

func TestGetColorLabel(t *testing.T) {
	// Colored output still contains the plain label text.
	assert.Contains(t, GetColorLabel(95), ExcellentValue)
	assert.Contains(t, GetColorLabel(80), GoodValue)
	assert.Contains(t, GetColorLabel(60), FairValue)
	assert.Contains(t, GetColorLabel(10), PoorValue)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES", "True"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "false", "0"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestSelectOutputFile_Stdout(t *testing.T) {
	f, err := SelectOutputFile("")
	assert.NoError(t, err)
	assert.NotNil(t, f)
}

func TestSelectOutputFile_Path(t *testing.T) {
	path := t.TempDir() + "/out.csv"
	f, err := SelectOutputFile(path)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.FileExists(t, path)
}
