package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/ecap-org/ecap-directory/internal/uploads/domain"
)

// memStore is an in-memory domain.BlobStore.
type memStore struct {
	mu    sync.Mutex
	blobs map[string]domain.Blob
	data  map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string]domain.Blob{}, data: map[string][]byte{}}
}

func (m *memStore) Put(_ context.Context, name string, r io.Reader) error {
	if m.err != nil {
		return m.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = b
	m.blobs[name] = domain.Blob{Name: name, Size: int64(len(b)), ModTime: time.Now()}
	return nil
}

func (m *memStore) List(context.Context) ([]domain.Blob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Blob, 0, len(m.blobs))
	for _, b := range m.blobs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, name)
	delete(m.data, name)
	return nil
}

func (m *memStore) age(name string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.blobs[name]
	b.Name = name
	b.ModTime = at
	m.blobs[name] = b
}

func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, "\x89PNG\r\n\x1a\n")
	return b
}

func webpBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, "RIFF")
	binary.LittleEndian.PutUint32(b[4:], uint32(size-8))
	copy(b[8:], "WEBPVP8 ")
	return b
}

func gifBytes() []byte {
	return append([]byte("GIF89a"), bytes.Repeat([]byte{0}, 32)...)
}
