package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestSeriesID(t *testing.T) {
	require.Equal(t, SeriesID("cpu.usage"), SeriesID("cpu.usage"))
	require.NotEqual(t, SeriesID("cpu.usage"), SeriesID("cpu.usage2"))

	// The ID must stay xxHash64 of the raw name: blobs written by older
	// builds are looked up by recomputing it.
	require.Equal(t, xxhash.Sum64String("pump.pressure"), SeriesID("pump.pressure"))
}
