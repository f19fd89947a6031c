package utils

import "fmt"

type Word32 uint32
type Word64 uint64

func (w Word32) String() string {
	return fmt.Sprintf("%08x", uint32(w))
}

func (w Word64) String() string {
	return fmt.Sprintf("%016x", uint64(w))
}
