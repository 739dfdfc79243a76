package ftab

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Open reads and decodes the ftab file at path.
//
// The file is mapped read-only where mmap is available and read through
// ReadAt otherwise. Decode copies every payload out of the source
// buffer, so the mapping is released before Open returns either way.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ftab %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat ftab %q: %w", path, err)
	}

	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, fmt.Errorf("%w: file size %d", ErrMalformedHeader, size64)
	}
	size := int(size64)

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		img, decErr := Decode(data)
		_ = unix.Munmap(data)
		return img, decErr
	}

	// Fallback path that does not require mmap support (and covers
	// zero-length files, which mmap rejects).
	data, err = readAllAt(f, size)
	if err != nil {
		return nil, fmt.Errorf("read ftab %q: %w", path, err)
	}
	return Decode(data)
}

// OpenReaderAt decodes an ftab image from a random-access reader
// without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*Image, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("%w: file size %d", ErrMalformedHeader, size)
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}
