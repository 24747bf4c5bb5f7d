package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRoundTrip(t *testing.T) {
	params := GameParams{Width: 30, Height: 16, MineCount: 99, Unique: true}
	assert.Equal(t, "30:16:99:1", params.Seed())

	parsed, err := ParseSeed(params.Seed())
	require.NoError(t, err)
	assert.Equal(t, params, *parsed)
}

func TestParseSeedInvalid(t *testing.T) {
	for _, seed := range []string{"", "9:9", "9:9:10", "a:b:c:d", "9;9;10;1"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q", seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		ok     bool
	}{
		{"beginner", GameParams{9, 9, 10, true}, true},
		{"expert", GameParams{30, 16, 99, true}, true},
		{"too narrow", GameParams{2, 9, 1, false}, false},
		{"too short", GameParams{9, 2, 1, false}, false},
		{"no mines", GameParams{9, 9, 0, false}, false},
		{"max mines", GameParams{4, 3, 3, false}, true},
		{"too many mines", GameParams{4, 3, 4, false}, false},
		{"no room for first click", GameParams{3, 3, 1, false}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPointInBounds(t *testing.T) {
	p := GameParams{Width: 4, Height: 3, MineCount: 1}

	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(3, 2))
	assert.False(t, p.PointInBounds(4, 0))
	assert.False(t, p.PointInBounds(0, 3))
	assert.False(t, p.PointInBounds(-1, 0))
	// in range of the flat grid but out of bounds by axis
	assert.False(t, p.PointInBounds(5, 1))
}
