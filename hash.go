package freezeguard

import (
	"bytes"
	"fmt"
	"hash"
	"io"
	"sync"
)

// Default size for the buffer used when hashing content
const defaultBufferSize = 32 * 1024 // 32KB

// bufferPool is a pool of byte slices used for I/O during hashing
var bufferPool = sync.Pool{
	New: func() interface{} {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// hashContent hashes the content from a reader using the provided hash function.
func hashContent(content io.Reader, h hash.Hash) error {
	bufPtr := bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer bufferPool.Put(bufPtr)

	_, err := io.CopyBuffer(h, content, buffer)
	if err != nil {
		return fmt.Errorf("failed to copy content: %w", err)
	}
	return nil
}

// checksum fingerprints content with a fresh hash instance. Content is a
// canonical byte sequence; string content must be passed as its UTF-8
// bytes so equal text always yields an equal sum.
func checksum(h hash.Hash, content []byte) ([]byte, error) {
	if err := hashContent(bytes.NewReader(content), h); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
