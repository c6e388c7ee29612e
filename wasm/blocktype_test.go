package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockTypeBytes(t *testing.T) {
	require.Equal(t, []byte{0x40}, EmptyBlockType().Bytes())
	require.Equal(t, []byte{ValueTypeF32}, ValueBlockType(ValueTypeF32).Bytes())
	require.Equal(t, []byte{0x00}, FuncBlockType(0).Bytes())
	require.Equal(t, []byte{0x05}, FuncBlockType(5).Bytes())
}
