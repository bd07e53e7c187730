//go:build unix

package scan

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the file read-only. The second result reports whether the
// returned bytes are a mapping that needs unmapFile.
func mapFile(f *os.File, size int64) ([]byte, bool, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}
