/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/appstate.go
*/
package common

import (
	"net"
	"sync"
	"time"
)

// GeneralStats tracks coarse server-wide counters surfaced by INFO.
type GeneralStats struct {
	TotalConnectionsReceived int
	TotalCommandsExecuted    int
}

// AppState holds the global application state shared across all client
// connections: configuration and connection bookkeeping. The AOF handle
// itself is owned by the database (internal/database.Database.Aof), since
// it is both the write target and the replay source; AppState only reads
// the configuration that governs it. The teacher's RDB/transaction/pub-sub/
// user-auth state is not carried here; those subsystems are outside this
// server's scope.
type AppState struct {
	ServerStartTime time.Time

	Config     *Config
	ConfigPath string

	GenStats *GeneralStats

	ActiveConns   map[net.Conn]struct{}
	ActiveConnsMu sync.Mutex
}

// NewAppState creates and initializes a new AppState instance.
func NewAppState(config *Config) *AppState {
	state := AppState{
		Config:          config,
		ServerStartTime: time.Now(),
		GenStats:        &GeneralStats{},
		ActiveConns:     make(map[net.Conn]struct{}),
	}
	return &state
}

func (s *AppState) AddConn(conn net.Conn) {
	s.ActiveConnsMu.Lock()
	defer s.ActiveConnsMu.Unlock()
	s.ActiveConns[conn] = struct{}{}
}

func (s *AppState) RemoveConn(conn net.Conn) {
	s.ActiveConnsMu.Lock()
	defer s.ActiveConnsMu.Unlock()
	delete(s.ActiveConns, conn)
}

func (s *AppState) CloseAllConnections() {
	s.ActiveConnsMu.Lock()
	defer s.ActiveConnsMu.Unlock()
	for conn := range s.ActiveConns {
		conn.Close()
	}
}
