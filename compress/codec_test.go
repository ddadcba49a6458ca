package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sdt/format"
)

func testPayload() []byte {
	// Repetitive columnar-ish data so every real codec actually shrinks it.
	var buf bytes.Buffer
	for i := range 4096 {
		buf.WriteByte(byte(i % 16))
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodec_Roundtrip(t *testing.T) {
	payload := testPayload()

	tests := []struct {
		name       string
		codec      Codec
		compresses bool
	}{
		{name: "noop", codec: NewNoOpCodec(), compresses: false},
		{name: "zstd", codec: NewZstdCodec(), compresses: true},
		{name: "s2", codec: NewS2Codec(), compresses: true},
		{name: "lz4", codec: NewLZ4Codec(), compresses: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			if tt.compresses {
				require.Less(t, len(compressed), len(payload))
			}

			restored, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewNoOpCodec(), NewZstdCodec(), NewS2Codec(), NewLZ4Codec()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCodec_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{name: "zstd", codec: NewZstdCodec()},
		{name: "s2", codec: NewS2Codec()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}
