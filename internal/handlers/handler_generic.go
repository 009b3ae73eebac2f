/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/handler_generic.go
*/
package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/anirudh-k/bitredis/internal/common"
	"github.com/anirudh-k/bitredis/internal/database"
)

// FlushDB handles the FLUSHDB command.
// Deletes every key in the database.
//
// Syntax: FLUSHDB
func FlushDB(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	database.FlushAll()
	return common.NewStringValue("OK")
}

// DBSize handles the DBSIZE command.
// Returns the number of keys currently stored.
//
// Syntax: DBSIZE
func DBSize(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	database.DB.Mu.RLock()
	size := len(database.DB.Store)
	database.DB.Mu.RUnlock()
	return common.NewIntegerValue(int64(size))
}

// Info handles the INFO command.
//
// Modes:
//   - INFO       returns global server stats (uptime, connections, memory)
//   - INFO <key> returns per-key metadata: type, ttl, memory usage, accesses
func Info(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]

	if len(args) == 0 {
		uptime := time.Since(state.ServerStartTime).Seconds()
		sys := common.ReadSysInfo()
		msg := fmt.Sprintf(
			"# Server\nuptime_seconds: %d\nlogical_cpus: %d\n\n# Clients\ntotal_connections_received: %d\n\n# Memory\nused_memory: %d B\nused_memory_peak: %d B\ntotal_system_memory: %d B\n\n# General\ntotal_commands_executed: %d\n",
			int64(uptime), sys.LogicalCPUs,
			state.GenStats.TotalConnectionsReceived,
			database.DB.Mem, database.DB.Mempeak, sys.TotalMemory,
			state.GenStats.TotalCommandsExecuted,
		)
		return common.NewBulkValue(msg)
	}

	if len(args) == 1 {
		key := args[0].Blk

		database.DB.Mu.RLock()
		item, ok := database.DB.Store[key]
		database.DB.Mu.RUnlock()
		if !ok {
			return common.NewErrorValue("ERR key not found")
		}

		ttl := int64(-1)
		if item.Exp.Unix() != common.UNIX_TS_EPOCH {
			ttl = int64(time.Until(item.Exp).Seconds())
		}

		msg := fmt.Sprintf(
			"type: %s\nlen: %d\nttl: %d\nmem: %d B\naccesses: %d\n",
			strings.ToUpper(item.Type), len(item.Str), ttl, item.ApproxMemoryUsage(key), item.AccessCount,
		)
		return common.NewBulkValue(msg)
	}

	return common.NewErrorValue("ERR wrong number of arguments for 'info' command")
}
