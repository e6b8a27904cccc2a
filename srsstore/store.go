// Package srsstore caches imported KZG structured reference strings on
// disk, keyed by the content hash of their serialized form, so a CLI
// or long-running service does not re-parse a multi-megabyte SRS file
// on every startup.
package srsstore

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"

	"github.com/aalps-labs/fde/kzg"
)

// ErrNotFound is returned by Get when no SRS is cached under the
// requested key.
var ErrNotFound = errors.New("srsstore: srs not found")

// Store is a pebble-backed cache of marshaled kzg.Powers blobs.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a store rooted at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "creating srsstore directory")
	}
	opts := &pebble.Options{
		Levels: []pebble.LevelOptions{
			{Compression: pebble.SnappyCompression},
		},
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening srsstore")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// KeyFor returns the content-hash key for raw marshaled SRS bytes, the
// identifier callers pass to Put/Get.
func KeyFor(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Put stores powers under its own content-hash key and returns that
// key.
func (s *Store) Put(powers *kzg.Powers) (string, error) {
	var buf bytes.Buffer
	if err := powers.Marshal(&buf); err != nil {
		return "", errors.Wrap(err, "marshaling srs")
	}
	raw := buf.Bytes()
	key := KeyFor(raw)
	if err := s.db.Set([]byte(key), raw, pebble.Sync); err != nil {
		return "", errors.Wrap(err, "writing srs to store")
	}
	return key, nil
}

// Get returns the SRS cached under key, or ErrNotFound.
func (s *Store) Get(key string) (*kzg.Powers, error) {
	raw, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading srs from store")
	}
	cp := bytes.Clone(raw)
	if err := closer.Close(); err != nil {
		return nil, errors.Wrap(err, "closing srsstore reader")
	}
	powers, err := kzg.Unmarshal(bytes.NewReader(cp))
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling cached srs")
	}
	return powers, nil
}
