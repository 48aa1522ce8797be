package render

import "unsafe"

// structBytes views a single struct as its raw bytes for buffer upload.
// T must be a flat POD struct with the exact GPU layout.
func structBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))
}
