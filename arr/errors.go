package arr

import "github.com/faustbrian/fp-sub001/seq"

// ErrInvalidChunkSize is returned by [Chunk] when size < 1, before the input
// is read. It is the same value as [seq.ErrInvalidChunkSize].
var ErrInvalidChunkSize = seq.ErrInvalidChunkSize
