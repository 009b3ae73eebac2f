/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/handlers/handler_key.go
*/
package handlers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/anirudh-k/bitredis/internal/common"
	"github.com/anirudh-k/bitredis/internal/database"
)

// Del handles the DEL command.
// Deletes one or more keys.
//
// Syntax: DEL <key1> [key2 ...]
// Returns: Integer count of keys actually deleted.
func Del(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	m := 0
	database.DB.Mu.Lock()
	for _, arg := range args {
		key := arg.Blk
		if _, ok := database.DB.Poll(key); !ok {
			continue
		}
		database.DB.Rem(key)
		m++
	}
	database.DB.Mu.Unlock()
	return common.NewIntegerValue(int64(m))
}

// Exists handles the EXISTS command.
// Checks existence of one or more keys.
//
// Syntax: EXISTS <key1> [key2 ...]
// Returns: Integer count of keys that exist.
func Exists(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	m := 0
	database.DB.Mu.RLock()
	for _, arg := range args {
		if _, ok := database.DB.Store[arg.Blk]; ok {
			m++
		}
	}
	database.DB.Mu.RUnlock()
	return common.NewIntegerValue(int64(m))
}

// Keys handles the KEYS command.
// Finds keys matching a glob pattern.
//
// Syntax: KEYS <pattern>
func Keys(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'keys' command")
	}
	pattern := args[0].Blk

	database.DB.Mu.RLock()
	var matches []string
	for key := range database.DB.Store {
		matched, err := filepath.Match(pattern, key)
		if err != nil {
			fmt.Printf("error matching for keys: (key=%s, pattern=%s)\nError: %s\n", key, pattern, err)
			continue
		}
		if matched {
			matches = append(matches, key)
		}
	}
	database.DB.Mu.RUnlock()

	reply := common.Value{Typ: common.ARRAY}
	for _, key := range matches {
		reply.Arr = append(reply.Arr, common.Value{Typ: common.BULK, Blk: key})
	}
	return &reply
}

// Type handles the TYPE command.
// Returns the type of the value stored at key, or "none" if it doesn't exist.
//
// Syntax: TYPE <key>
func Type(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'type' command")
	}

	key := args[0].Blk

	database.DB.Mu.RLock()
	defer database.DB.Mu.RUnlock()

	item, ok := database.DB.Store[key]
	if !ok {
		return common.NewStringValue("none")
	}
	return common.NewStringValue(strings.ToUpper(item.Type))
}

// Expire handles the EXPIRE command.
// Sets a key's time to live, in seconds.
//
// Syntax: EXPIRE <key> <seconds>
// Returns: 1 if the expiration was set, 0 if the key does not exist.
func Expire(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 2 {
		return common.NewErrorValue("ERR wrong number of arguments for 'expire' command")
	}
	key := args[0].Blk
	seconds, err := strconv.ParseInt(args[1].Blk, 10, 64)
	if err != nil {
		return common.NewErrorValue("ERR value is not an integer or out of range")
	}

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	item, ok := database.DB.Store[key]
	if !ok {
		return common.NewIntegerValue(0)
	}
	item.Exp = time.Now().Add(time.Second * time.Duration(seconds))
	return common.NewIntegerValue(1)
}

// Ttl handles the TTL command.
// Returns the remaining time to live of a key, in seconds.
//
// Syntax: TTL <key>
// Returns:
//
//	>0  remaining seconds
//	-1  key exists but has no expiration
//	-2  key does not exist (or just expired)
func Ttl(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'ttl' command")
	}
	key := args[0].Blk

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	item, ok := database.DB.Store[key]
	if !ok {
		return common.NewIntegerValue(-2)
	}
	if item.Exp.Unix() == common.UNIX_TS_EPOCH {
		return common.NewIntegerValue(-1)
	}
	if database.DB.RemIfExpired(key, item) {
		return common.NewIntegerValue(-2)
	}
	return common.NewIntegerValue(int64(time.Until(item.Exp).Seconds()))
}

// Persist handles the PERSIST command.
// Removes the existing timeout on a key.
//
// Syntax: PERSIST <key>
// Returns: 1 if the timeout was removed, 0 otherwise.
func Persist(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'persist' command")
	}
	key := args[0].Blk

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	item, ok := database.DB.Store[key]
	if !ok {
		return common.NewIntegerValue(0)
	}
	if database.DB.RemIfExpired(key, item) {
		return common.NewIntegerValue(0)
	}
	if item.Exp.IsZero() {
		return common.NewIntegerValue(0)
	}
	item.Exp = time.Time{}
	return common.NewIntegerValue(1)
}
