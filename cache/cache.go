//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of bobdoc.
//
// bobdoc is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2026-present Detlef Stern
//-----------------------------------------------------------------------------

// Package cache stores rendered diagrams, so that unchanged diagrams are not
// rendered again.
//
// Entries live in memory. If a directory is given, they are also written to
// disk as msgpack files and survive a restart of the program. The cache never
// fails: disk errors are logged and otherwise ignored.
package cache

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"

	"zettelstore.de/bobdoc/logger"
)

// Digest identifies a cache entry.
type Digest [blake2b.Size256]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Key computes the digest of the given parts. Parts are length-prefixed, so
// that ("ab", "c") and ("a", "bc") result in different keys.
func Key(parts ...string) Digest {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var lenBuf [binary.MaxVarintLen64]byte
	for _, p := range parts {
		h.Write(binary.AppendUvarint(lenBuf[:0], uint64(len(p))))
		h.Write([]byte(p))
	}
	var d Digest
	h.Sum(d[:0])
	return d
}

// Increment when the format of diskEntry changes.
const schemaVersion uint16 = 1

type diskEntry struct {
	Schema  uint16
	Key     []byte
	Created time.Time
	Data    []byte
}

// Cache is a concurrency-safe store for rendered diagrams. A nil *Cache is a
// valid cache that stores nothing.
type Cache struct {
	mx  sync.RWMutex
	mem map[Digest][]byte
	dir string
	log *logger.Logger
}

// New creates a new cache. If dir is not empty, entries are persisted there.
func New(dir string, log *logger.Logger) *Cache {
	return &Cache{
		mem: make(map[Digest][]byte),
		dir: dir,
		log: log,
	}
}

// Dir returns the directory of the cache, or the empty string.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// Len returns the number of entries held in memory.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mx.RLock()
	defer c.mx.RUnlock()
	return len(c.mem)
}

// Get returns the data stored under the given key.
func (c *Cache) Get(key Digest) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mx.RLock()
	data, found := c.mem[key]
	c.mx.RUnlock()
	if found || c.dir == "" {
		return data, found
	}

	data, err := c.readEntry(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Warn().Str("key", key.String()).Err(err).Msg("unable to read cache entry")
		}
		return nil, false
	}
	c.mx.Lock()
	c.mem[key] = data
	c.mx.Unlock()
	c.log.Trace().Str("key", key.String()).Msg("cache entry loaded")
	return data, true
}

// Put stores the data under the given key.
func (c *Cache) Put(key Digest, data []byte) {
	if c == nil {
		return
	}
	c.mx.Lock()
	c.mem[key] = data
	c.mx.Unlock()
	if c.dir == "" {
		return
	}
	if err := c.writeEntry(key, data); err != nil {
		c.log.Warn().Str("key", key.String()).Err(err).Msg("unable to write cache entry")
	}
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := key.String()
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

var (
	errSchema   = errors.New("cache entry has different schema version")
	errMismatch = errors.New("cache entry belongs to another key")
)

func (c *Cache) readEntry(key Digest) ([]byte, error) {
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var e diskEntry
	if err = msgpack.NewDecoder(f).Decode(&e); err != nil {
		return nil, err
	}
	if e.Schema != schemaVersion {
		return nil, errSchema
	}
	if string(e.Key) != string(key[:]) {
		return nil, errMismatch
	}
	return e.Data, nil
}

func (c *Cache) writeEntry(key Digest, data []byte) error {
	p := c.pathFor(key)
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	e := diskEntry{
		Schema:  schemaVersion,
		Key:     key[:],
		Created: time.Now().UTC(),
		Data:    data,
	}
	err = msgpack.NewEncoder(f).Encode(&e)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, p)
	}
	if err != nil {
		os.Remove(tmpName)
	}
	return err
}
