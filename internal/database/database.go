/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/database/database.go
*/
package database

import (
	"log"
	"sync"
	"time"

	"github.com/anirudh-k/bitredis/internal/common"
)

// startAofFsyncWorker flushes the AOF writer once per second, matching the
// Everysec fsync policy. It exits silently if AOF is disabled or configured
// for a different policy.
func startAofFsyncWorker(db *Database, conf *common.Config) {
	if db.Aof == nil || db.Aof.W == nil || conf.AofFsync != common.Everysec {
		return
	}
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for range t.C {
			db.Aof.W.Flush()
		}
	}()
}

// Database is the in-memory key/value store backing both the general string
// commands and the bitmap engine's byte-array values.
//
// Mu guards the Store map itself (creation, deletion, iteration). KeyLocks
// provides a second layer used by the bitmap engine: a per-key RWMutex that
// serializes commands on the same key. The bitmap handlers still hold Mu for
// the whole command (exclusively for writers, shared for readers), so a
// write on one key also waits for and blocks commands on other keys. BITOP
// acquires several key locks in a deterministic (lexicographic) order to
// avoid deadlocking against a concurrent BITOP over an overlapping key set.
type Database struct {
	Store map[string]*common.Item
	Mu    sync.RWMutex

	keyLocksMu sync.Mutex
	keyLocks   map[string]*sync.RWMutex

	Mem     int64
	Mempeak int64
	ID      int
	Aof     *common.Aof
}

// NewDatabase creates and returns a new empty Database instance.
func NewDatabase(id int) *Database {
	return &Database{
		Store:    map[string]*common.Item{},
		keyLocks: make(map[string]*sync.RWMutex),
		ID:       id,
	}
}

// DB is the global database instance used throughout the application. This
// server, unlike the teacher, runs a single logical database (SELECT and
// multi-database FLUSHALL are out of this server's scope).
var DB *Database

// InitDB creates the global Database and wires its AOF file per conf. The
// AOF handle is the single read/write handle for this process: handlers
// append through it and main.go replays from it at startup, so there is
// never a second, independently-seeked file descriptor racing the first.
func InitDB(conf *common.Config) {
	DB = NewDatabase(0)
	if conf.AofEnabled {
		DB.Aof = common.NewAof(conf, 0)
		startAofFsyncWorker(DB, conf)
	}
}

// FlushAll clears every key from the database.
func FlushAll() {
	DB.Mu.Lock()
	defer DB.Mu.Unlock()
	DB.Store = make(map[string]*common.Item)
	DB.Mem = 0
}

// Snapshot returns a point-in-time shallow copy of the database store.
func (db *Database) Snapshot() map[string]*common.Item {
	db.Mu.RLock()
	defer db.Mu.RUnlock()
	cp := make(map[string]*common.Item, len(db.Store))
	for k, v := range db.Store {
		cp[k] = v
	}
	return cp
}

// KeyLock returns the per-key RWMutex for key, creating it on first use.
// Locks are never removed once created: the registry's size is bounded by
// the total number of distinct keys ever touched, which is acceptable for
// this in-memory store's lifetime.
func (db *Database) KeyLock(key string) *sync.RWMutex {
	db.keyLocksMu.Lock()
	defer db.keyLocksMu.Unlock()
	l, ok := db.keyLocks[key]
	if !ok {
		l = &sync.RWMutex{}
		db.keyLocks[key] = l
	}
	return l
}

// Put stores v under k, creating the key if absent and updating memory
// accounting. Callers must hold db.Mu for writing.
func (db *Database) Put(k string, v string) {

	var item *common.Item
	if oldItem, ok := db.Store[k]; ok {
		oldMemory := oldItem.ApproxMemoryUsage(k)
		db.Mem -= oldMemory
		item = oldItem
		item.Str = v
		item.Type = common.STRING_TYPE
	} else {
		item = common.NewStringItem(v)
	}

	memory := item.ApproxMemoryUsage(k)
	db.Mem += memory
	if db.Mem > db.Mempeak {
		db.Mempeak = db.Mem
	}

	db.Store[k] = item
}

// Poll retrieves the item stored at k, touching its access bookkeeping.
// Callers must hold db.Mu for writing, since the item's LastAccessed and
// AccessCount fields are updated.
func (db *Database) Poll(k string) (item *common.Item, ok bool) {
	item, ok = db.Store[k]
	if !ok {
		return nil, false
	}
	if !item.IsExpired() {
		item.LastAccessed = time.Now()
		item.AccessCount++
	}
	return item, true
}

// Rem deletes k from the store if present. Callers must hold db.Mu for
// writing.
func (db *Database) Rem(k string) {
	if item, ok := db.Store[k]; ok {
		db.Mem -= item.ApproxMemoryUsage(k)
		delete(db.Store, k)
	}
	if db.Mem < 0 {
		log.Println("warning: database memory accounting went negative, resetting to 0")
		db.Mem = 0
	}
}

// RemIfExpired deletes k if item is non-nil and expired.
func (db *Database) RemIfExpired(k string, item *common.Item) (deleted bool) {
	if item == nil {
		return false
	}
	if item.IsExpired() {
		if _, exists := db.Store[k]; exists {
			db.Rem(k)
			return true
		}
	}
	return false
}

// ActiveExpire periodically samples keys and removes expired ones, so
// expired keys that are never read don't leak memory indefinitely.
func (db *Database) ActiveExpire() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		db.Mu.Lock()
		n := 0
		for k, item := range db.Store {
			db.RemIfExpired(k, item)
			n++
			if n >= 20 {
				break
			}
		}
		db.Mu.Unlock()
	}
}
