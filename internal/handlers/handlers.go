/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/handlers.go
*/
package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/anirudh-k/bitredis/internal/common"
)

func init() {
	Handlers["COMMANDS"] = Commands
}

// Handlers maps command names to their implementing functions. This server
// carries the minimal string surface the bitmap engine needs (GET/SET plus
// the generic key commands) alongside the seven bitmap commands themselves;
// the teacher's hash/list/set/zset/transaction/pub-sub surface is gone.
var Handlers = map[string]Handler{
	"COMMAND": Command,
	"PING":    Ping,

	"GET": Get,
	"SET": Set,

	"DEL":     Del,
	"EXISTS":  Exists,
	"TYPE":    Type,
	"KEYS":    Keys,
	"EXPIRE":  Expire,
	"TTL":     Ttl,
	"PERSIST": Persist,

	"FLUSHDB": FlushDB,
	"DBSIZE":  DBSize,
	"INFO":    Info,

	"SETBIT":      SetBit,
	"GETBIT":      GetBit,
	"BITCOUNT":    BitCount,
	"BITOP":       BitOp,
	"BITPOS":      BitPos,
	"BITFIELD":    BitField,
	"BITFIELD_RO": BitFieldRO,
}

// Handler is a function type that processes Redis commands.
// Each command has a corresponding handler function that implements its logic.
type Handler func(*common.Client, *common.Value, *common.AppState) *common.Value

// Handle is the main command dispatcher: it looks up the command name in
// Handlers, enforces AUTH when requirepass is configured, executes the
// handler, and writes the reply back to the client. There is no
// transaction/MULTI queuing or MONITOR fan-out in this build: both are
// outside this server's scope.
func Handle(client *common.Client, v *common.Value, state *common.AppState) {

	state.GenStats.TotalCommandsExecuted += 1

	cmd := v.Arr[0].Blk
	if !state.Config.Sensitive {
		cmd = strings.ToUpper(cmd)
	}

	handler, ok := Handlers[cmd]
	if !ok {
		log.Println("no such command:", cmd)
		reply := common.NewErrorValue(fmt.Sprintf("ERR no such command '%s', use COMMANDS for help", cmd))
		w := common.NewWriter(client.Conn)
		w.Write(reply)
		w.Flush()
		return
	}

	if state.Config.Requirepass && !client.Authenticated && !IsSafeCmd(cmd, safeCommands) {
		reply := common.NewErrorValue("NOAUTH client not authenticated")
		w := common.NewWriter(client.Conn)
		w.Write(reply)
		w.Flush()
		return
	}

	reply := handler(client, v, state)

	// client.Conn is nil when Handle is invoked to replay the AOF at
	// startup: there is no real connection to reply to.
	if client.Conn == nil {
		return
	}

	w := common.NewWriter(client.Conn)
	w.Write(reply)
	w.Flush()
}
