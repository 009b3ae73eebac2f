/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/client.go
*/
package common

import (
	"net"
)

// Client represents a connected client session.
// Each client connection has its own Client instance that tracks connection-specific state.
//
// Authentication:
//   - Initially false for all new connections
//   - No AUTH command is registered, so a connection never becomes
//     authenticated; only the AOF replay client is created with it set
//   - Checked before executing commands (if requirepass is enabled)
//   - Safe commands (COMMAND, COMMANDS, PING) can be executed without authentication
//
// Thread Safety:
//   - Each Client is used by a single goroutine (one per connection)
//   - No synchronization needed for Client fields
type Client struct {
	Conn          net.Conn
	Authenticated bool
	DatabaseID    int
}

// NewClient creates a new Client instance for a network connection.
func NewClient(conn net.Conn) *Client {
	return &Client{
		Conn:          conn,
		Authenticated: false,
		DatabaseID:    0,
	}
}
