package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteVector(t *testing.T) {
	require.Equal(t, []byte{0x00}, byteVector(nil))
	require.Equal(t, []byte{0x03, 'a', 'b', 'c'}, byteVector([]byte("abc")))
}

func TestNameUsesUTF8ByteCount(t *testing.T) {
	// "café" is 4 runes but 5 UTF-8 bytes (é is two bytes); the length
	// prefix must be 5, not 4. The Rust original counted runes here,
	// which is the Open-Question bug this test guards against.
	encoded := name("café")
	require.Equal(t, byte(5), encoded[0])
	require.Equal(t, []byte("café"), encoded[1:])

	encoded = name("add")
	require.Equal(t, []byte{0x03, 0x61, 0x64, 0x64}, encoded)
}
