/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/handler/connection.go
*/
package handlers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anirudh-k/bitredis/internal/common"
)

// safeCommands can run even when requirepass is set and the client hasn't
// authenticated. Access control beyond this simple password gate (users,
// roles, ACLs) is outside this server's scope.
var safeCommands = []string{
	"COMMAND",
	"PING",
	"COMMANDS",
}

// IsSafeCmd checks whether a command can be executed without authentication.
func IsSafeCmd(cmd string, commands []string) bool {
	for _, command := range commands {
		if cmd == command {
			return true
		}
	}
	return false
}

// Command handles the COMMAND command.
func Command(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	return common.NewStringValue("OK")
}

// Commands handles the COMMANDS command, listing or pattern-matching the
// registered command names.
func Commands(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]

	if len(args) > 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'commands' command")
	}

	if len(args) == 0 || (len(args) == 1 && args[0].Blk == "*") {
		var cmds []string
		for k := range Handlers {
			cmds = append(cmds, k)
		}
		sort.Strings(cmds)
		var arr []common.Value
		for _, cmd := range cmds {
			arr = append(arr, common.Value{Typ: common.BULK, Blk: cmd})
		}
		return common.NewArrayValue(arr)
	}

	arg := args[0].Blk
	if !state.Config.Sensitive {
		arg = strings.ToUpper(arg)
	}

	var keys []string
	for k := range Handlers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var results []common.Value
	for _, cmd := range keys {
		matched, _ := filepath.Match(arg, cmd)
		if matched {
			results = append(results, common.Value{Typ: common.BULK, Blk: cmd})
		}
	}

	if len(results) == 0 {
		return common.NewErrorValue(fmt.Sprintf("ERR unknown command or no match for '%s'", arg))
	}
	return common.NewArrayValue(results)
}

// Ping handles the PING command.
func Ping(c *common.Client, v *common.Value, state *common.AppState) *common.Value {
	args := v.Arr[1:]
	if len(args) > 1 {
		return common.NewErrorValue("ERR wrong number of arguments for 'ping' command")
	}
	if len(args) == 1 {
		return common.NewStringValue(args[0].Blk)
	}
	return common.NewStringValue("PONG")
}
