//go:build !unix

package scan

import (
	"io"
	"os"
)

// mapFile reads the whole file on platforms without mmap support here.
func mapFile(f *os.File, size int64) ([]byte, bool, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, false, err
	}
	return data, false, nil
}

func unmapFile(data []byte) error {
	return nil
}
