/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/handler_string.go
*/
package handlers

import (
	"github.com/anirudh-k/bitredis/internal/common"
	"github.com/anirudh-k/bitredis/internal/database"
)

// Get handles the GET command.
// Retrieves the value for a key.
//
// Syntax: GET <key>
// Returns: Bulk string if key exists and is not expired; otherwise null.
func Get(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'get' command")
	}
	key := args[0].Blk

	database.DB.Mu.Lock()
	defer database.DB.Mu.Unlock()

	item, ok := database.DB.Poll(key)
	if database.DB.RemIfExpired(key, item) || !ok {
		return common.NewNullValue()
	}
	return common.NewBulkValue(item.Str)
}

// Set handles the SET command.
// Sets a key to a string value, overwriting any existing value (and its
// type, since this server only ever stores strings).
//
// Syntax: SET <key> <value>
// Returns: +OK\r\n
func Set(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) != 2 {
		return common.NewErrorValue("ERR wrong number of arguments for 'set' command")
	}

	key := args[0].Blk
	val := args[1].Blk

	database.DB.Mu.Lock()
	database.DB.Put(key, val)
	database.DB.Mu.Unlock()

	if state.Config.AofEnabled {
		database.DB.Aof.W.Write(v)
		if state.Config.AofFsync == common.Always {
			database.DB.Aof.W.Flush()
		}
	}

	return common.NewStringValue("OK")
}
