package srsstore_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/aalps-labs/fde/algebra"
	"github.com/aalps-labs/fde/kzg"
	"github.com/aalps-labs/fde/srsstore"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	store, err := srsstore.Open(dir)
	c.Assert(err, qt.IsNil)
	defer store.Close()

	tau, err := algebra.RandomScalar()
	c.Assert(err, qt.IsNil)
	powers := kzg.UnsafeSetup(tau, 8)

	key, err := store.Put(powers)
	c.Assert(err, qt.IsNil)

	got, err := store.Get(key)
	c.Assert(err, qt.IsNil)
	c.Assert(len(got.G1), qt.Equals, len(powers.G1))
	c.Assert(got.G2Tau.Equal(&powers.G2Tau), qt.IsTrue)
}

func TestGetMissingKeyFails(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()

	store, err := srsstore.Open(dir)
	c.Assert(err, qt.IsNil)
	defer store.Close()

	_, err = store.Get("deadbeef")
	c.Assert(err, qt.ErrorIs, srsstore.ErrNotFound)
}
