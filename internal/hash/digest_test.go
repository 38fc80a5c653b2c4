package hash

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		digest uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.digest, Digest([]byte(tt.data)))
		})
	}
}

func TestDigestReader(t *testing.T) {
	data := strings.Repeat("abracadabra", 1000)

	sum, n, err := DigestReader(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
	require.Equal(t, Digest([]byte(data)), sum)
}

func TestWriter(t *testing.T) {
	t.Run("forwards and hashes", func(t *testing.T) {
		var dst bytes.Buffer
		w := NewWriter(&dst)

		_, err := w.Write([]byte("abra"))
		require.NoError(t, err)
		_, err = w.Write([]byte("cadabra"))
		require.NoError(t, err)

		require.Equal(t, "abracadabra", dst.String())
		require.Equal(t, Digest([]byte("abracadabra")), w.Sum64())
	})

	t.Run("hash only", func(t *testing.T) {
		w := NewWriter(nil)
		_, err := w.Write([]byte("test"))
		require.NoError(t, err)
		require.Equal(t, uint64(0x4fdcca5ddb678139), w.Sum64())
	})
}
