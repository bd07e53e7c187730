package scan

import (
	"bytes"
	"os"
	"runtime"
	"sync"
	"unicode/utf8"
)

// Load reads the given paths in parallel and returns one FileEntry per
// readable text file, preserving the input order. Files that are empty,
// contain NUL bytes, fail UTF-8 validation, or cannot be read are dropped;
// a bad file never fails the whole load.
func Load(paths []string) Files {
	results := make([]*FileEntry, len(paths))

	work := make(chan int, len(paths))
	for i := range paths {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = loadOne(paths[i])
			}
		}()
	}
	wg.Wait()

	files := make(Files, 0, len(paths))
	for _, f := range results {
		if f != nil {
			files = append(files, f)
		}
	}
	return files
}

// loadOne maps or reads a single file, returning nil for anything the
// pipeline must not see (empty, binary, invalid UTF-8, unreadable).
func loadOne(path string) *FileEntry {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		return nil
	}

	data, mapped, err := mapFile(f, info.Size())
	if err != nil {
		return nil
	}

	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		if mapped {
			unmapFile(data)
		}
		return nil
	}

	return &FileEntry{name: path, data: data, mapped: mapped}
}
