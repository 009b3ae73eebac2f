package goredis

import (
	"bufio"
	"fmt"
	"net"
)

// Connect establishes a connection to the Redis server
// at the specified host and port.
// It returns a success message or an error if the connection fails.
func Connect(host string, port int) (string, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return "", err
	}

	globalClient = &GoRedisClient{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
	return "Connected", nil
}

// Close terminates the connection to the Redis server.
// It returns any error from closing the connection, or nil when no client
// is connected.
func Close() error {
	if globalClient != nil {
		err := globalClient.Close()
		globalClient = nil
		return err
	}
	return nil
}

// Ping sends a PING command to the Redis server.
// If a message is provided, it is included in the PING command.
// It returns the server's response or an error if the command fails.
func Ping(message ...string) (interface{}, error) {
	cmdArgs := []interface{}{"PING"}
	if len(message) > 0 {
		cmdArgs = append(cmdArgs, message[0])
	}
	return mustGetClient().SendCommand(cmdArgs...)
}

// Info retrieves information and statistics about the Redis server.
// If a key is provided, it retrieves information specific to that key.
// It returns the server's response or an error if the command fails.
func Info(key ...string) (interface{}, error) {
	cmdArgs := []interface{}{"INFO"}
	if len(key) > 0 {
		cmdArgs = append(cmdArgs, key[0])
	}
	return mustGetClient().SendCommand(cmdArgs...)
}

// DbSize returns the number of keys in the database.
// It returns the server's response or an error if the command fails.
func DbSize() (interface{}, error) {
	return mustGetClient().SendCommand("DBSIZE")
}

// FlushDb removes all keys from the database.
// It returns the server's response or an error if the command fails.
func FlushDb() (interface{}, error) {
	return mustGetClient().SendCommand("FLUSHDB")
}

// Command sends the COMMAND command. The server replies with a plain OK
// status; it does not return details about its command set.
// It returns the server's response or an error if the command fails.
func Command() (interface{}, error) {
	return mustGetClient().SendCommand("COMMAND")
}
