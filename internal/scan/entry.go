package scan

import "unsafe"

// FileEntry is one loaded input file. The content is either a read-only
// memory-mapped region or bytes owned by the entry; callers must not retain
// views of it past Files.Close.
type FileEntry struct {
	name   string
	data   []byte
	mapped bool
}

// Name returns the entry's stable identifier (the path it was loaded from).
func (f *FileEntry) Name() string {
	return f.name
}

// Text returns the file content as a string without copying. The returned
// string aliases the underlying buffer and is only valid until Files.Close.
func (f *FileEntry) Text() string {
	if len(f.data) == 0 {
		return ""
	}
	return unsafe.String(&f.data[0], len(f.data))
}

// Size returns the content length in bytes.
func (f *FileEntry) Size() int {
	return len(f.data)
}

// Files owns the buffers of all loaded entries for the duration of a run.
type Files []*FileEntry

// Close releases every entry's buffer, unmapping mapped regions. Must be
// called only after all results derived from the entries have been
// materialized.
func (fs Files) Close() error {
	var first error
	for _, f := range fs {
		if f.mapped {
			if err := unmapFile(f.data); err != nil && first == nil {
				first = err
			}
		}
		f.data = nil
		f.mapped = false
	}
	return first
}
