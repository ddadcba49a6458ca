package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sdt/errs"
	"github.com/arloliu/sdt/format"
	"github.com/arloliu/sdt/internal/hash"
	"github.com/arloliu/sdt/section"
	"github.com/arloliu/sdt/trend"
)

func testSeries(n int, base float64) []trend.Point {
	points := make([]trend.Point, n)
	for i := range n {
		points[i] = trend.Point{X: float64(i), Y: base + float64(i%7)}
	}

	return points
}

func encodeTestBlob(t *testing.T, compression format.CompressionType) []byte {
	t.Helper()

	enc, err := NewEncoder(WithCompression(compression))
	require.NoError(t, err)

	require.NoError(t, enc.StartSeries("cpu.usage"))
	require.NoError(t, enc.AddPoints(testSeries(50, 10)))
	require.NoError(t, enc.EndSeries())

	require.NoError(t, enc.StartSeries("mem.usage"))
	require.NoError(t, enc.AddPoints(testSeries(30, 200)))
	require.NoError(t, enc.EndSeries())

	data, err := enc.Finish()
	require.NoError(t, err)

	return data
}

func TestBlob_Roundtrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			b, err := Decode(encodeTestBlob(t, compression))
			require.NoError(t, err)

			require.Equal(t, compression, b.Compression())
			require.Equal(t, 2, b.SeriesCount())

			cpuID := hash.SeriesID("cpu.usage")
			require.Equal(t, []uint64{cpuID, hash.SeriesID("mem.usage")}, b.SeriesIDs())
			require.True(t, b.HasSeries(cpuID))
			require.True(t, b.HasSeriesName("mem.usage"))
			require.False(t, b.HasSeriesName("disk.usage"))

			require.Equal(t, 50, b.Len(cpuID))
			require.Equal(t, 0, b.Len(12345))

			require.Equal(t, testSeries(50, 10), b.Points(cpuID))
			require.Equal(t, testSeries(30, 200), b.PointsByName("mem.usage"))
		})
	}
}

func TestBlob_All(t *testing.T) {
	b, err := Decode(encodeTestBlob(t, format.CompressionZstd))
	require.NoError(t, err)

	want := testSeries(50, 10)

	i := 0
	for idx, p := range b.AllByName("cpu.usage") {
		require.Equal(t, i, idx)
		require.Equal(t, want[i], p)
		i++
	}
	require.Equal(t, len(want), i)

	t.Run("early break", func(t *testing.T) {
		count := 0
		for _, p := range b.AllByName("cpu.usage") {
			_ = p
			count++
			if count == 5 {
				break
			}
		}
		require.Equal(t, 5, count)
	})

	t.Run("unknown series yields empty sequence", func(t *testing.T) {
		for range b.All(999) {
			t.Fatal("unexpected sample for unknown series")
		}
		require.Nil(t, b.Points(999))
	})
}

func TestDecode_Errors(t *testing.T) {
	valid := encodeTestBlob(t, format.CompressionNone)

	t.Run("too short", func(t *testing.T) {
		_, err := Decode(valid[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] ^= 0xFF
		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("truncated index", func(t *testing.T) {
		_, err := Decode(valid[:section.HeaderSize+4])
		require.ErrorIs(t, err, errs.ErrInvalidIndexSize)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(valid[:len(valid)-8])
		require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)
	})

	t.Run("corrupted compressed payload", func(t *testing.T) {
		data := append([]byte(nil), encodeTestBlob(t, format.CompressionZstd)...)
		for i := section.HeaderSize + 2*section.IndexEntrySize; i < len(data); i++ {
			data[i] ^= 0xA5
		}
		_, err := Decode(data)
		require.Error(t, err)
	})
}
