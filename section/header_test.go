package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sdt/errs"
	"github.com/arloliu/sdt/format"
)

func TestHeader_Roundtrip(t *testing.T) {
	h := NewHeader(format.CompressionZstd)
	h.SeriesCount = 3
	h.PayloadOffset = HeaderSize + 3*IndexEntrySize

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	var parsed Header
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, *h, parsed)
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := NewHeader(format.CompressionNone).Bytes()

	t.Run("wrong size", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(valid[:HeaderSize-1]), errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] ^= 0xFF

		var h Header
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagicNumber)
	})

	t.Run("bad version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[4] = Version + 1

		var h Header
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidVersion)
	})

	t.Run("bad compression", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[5] = 0xEE

		var h Header
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidCompression)
	})

	t.Run("series count over limit", func(t *testing.T) {
		h := NewHeader(format.CompressionNone)
		h.SeriesCount = MaxSeriesCount + 1

		var parsed Header
		require.ErrorIs(t, parsed.Parse(h.Bytes()), errs.ErrInvalidSeriesCount)
	})
}

func TestIndexEntry_Roundtrip(t *testing.T) {
	entry := IndexEntry{SeriesID: 0xDEADBEEFCAFE, Count: 42, Offset: 1024}

	var buf [IndexEntrySize]byte
	entry.Bytes(buf[:])

	parsed, err := ParseIndexEntry(buf[:])
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
	require.Equal(t, 42*16, parsed.PayloadSize())
}

func TestParseIndexEntry_WrongSize(t *testing.T) {
	_, err := ParseIndexEntry(make([]byte, IndexEntrySize-1))
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
}
