/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/aof.go
*/
package common

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path"
)

// Aof manages the Append-Only File (AOF) persistence mechanism.
// AOF logs every write command to a file, letting the database be restored
// by replaying that log on server startup.
//
// Thread Safety: the Writer and File handle are not thread-safe by
// themselves; callers serialize access the same way the rest of the
// database does (one writer goroutine per AppState).
type Aof struct {
	W      *Writer
	F      *os.File
	Config *Config
}

// NewAof opens (or creates) the AOF file for dbID and wraps it with a Writer.
// The file is opened append + read-write so Synchronize can replay it on
// startup while new writes continue to append.
func NewAof(config *Config, dbID int) *Aof {
	aof := Aof{
		Config: config,
	}
	filename := fmt.Sprintf("%s%d.aof", config.AofFn, dbID)
	fp := path.Join(aof.Config.Dir, filename)
	f, err := os.OpenFile(fp, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)

	if err != nil {
		fmt.Println("can't open this file path")
		return &aof
	}

	aof.W = NewWriter(f)
	aof.F = f

	return &aof
}

// Synchronize reads and replays every command from the AOF file to restore
// database state. Called once on server startup, before the server starts
// accepting client connections.
func (aof *Aof) Synchronize(state *AppState, handler func(*Client, *Value, *AppState) *Value) {
	if aof.F == nil {
		return
	}
	aof.F.Seek(0, 0)
	reader := bufio.NewReader(io.Reader(aof.F))
	total := 0

	// Disable AOF writing during replay so replayed commands aren't re-logged.
	originalAofEnabled := state.Config.AofEnabled
	state.Config.AofEnabled = false
	defer func() { state.Config.AofEnabled = originalAofEnabled }()

	dummyClient := &Client{Authenticated: true}

	for {
		v := Value{}
		err := v.ReadArray(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("unexpected error while sync", err)
			break
		}

		if len(v.Arr) > 0 {
			handler(dummyClient, &v, state)
		}

		total += 1
	}
	log.Printf("records synchronized: %d\n", total)
}
