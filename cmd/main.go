/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/cmd/main.go
*/
package main

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/anirudh-k/bitredis/internal/common"
	"github.com/anirudh-k/bitredis/internal/database"
	"github.com/anirudh-k/bitredis/internal/handlers"
)

var logger = common.NewLogger()

// Entry point of the bitmap server. It reads configuration, restores state
// from the AOF if enabled, starts the active-expiration worker, and accepts
// client connections on a single TCP listener.
//
// Startup sequence:
//  1. Print server banner
//  2. Read configuration from the config file (or fall back to defaults)
//  3. Initialize application state and the database, opening the AOF
//  4. Replay the AOF to restore database state
//  5. Start the active expiration worker
//  6. Accept and handle client connections concurrently until a shutdown
//     signal is received, then drain connections and flush the AOF
func main() {

	fmt.Println(common.ASCII_ART)
	logger.Info(">>>> Go-Redis Bitmap Server <<<<\n")

	configFilePath := "./config/redis.conf"
	dataDirectoryPath := "./data/"

	args := os.Args[1:]
	if len(args) > 0 {
		configFilePath = args[0]
	}
	if len(args) > 1 {
		dataDirectoryPath = args[1]
	}
	if len(args) > 2 {
		log.Fatalln("usage: ./go-redis [config-file] [data-directory]")
	}

	logger.Info("reading config file: %s\n", configFilePath)
	logger.Info("data directory: %s\n", dataDirectoryPath)
	conf := common.ReadConf(configFilePath, dataDirectoryPath)

	state := common.NewAppState(conf)
	database.InitDB(conf)

	if conf.AofEnabled {
		logger.Info("syncing records from AOF\n")
		database.DB.Aof.Synchronize(state, func(client *common.Client, v *common.Value, appState *common.AppState) *common.Value {
			handlers.Handle(client, v, appState)
			return nil
		})
	}

	go database.DB.ActiveExpire()

	addr := fmt.Sprintf(":%d", conf.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v\n", addr, err)
	}
	logger.Info("listening on %s (TCP)\n", addr)
	fmt.Printf("[SERVER] Go-Redis Bitmap Server is up on port %d\n", conf.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Warn("[SHUTDOWN] signal received, starting graceful shutdown...\n")
		listener.Close()
		state.CloseAllConnections()
	}()

	var connectionCount int32
	var wg sync.WaitGroup

	for {
		conn, err := listener.Accept()
		if err != nil {
			logger.Warn("[SHUTDOWN] listener closed\n")
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			handleOneConnection(conn, state, &connectionCount)
		}()
	}
	wg.Wait()

	if state.Config.AofEnabled && database.DB.Aof != nil {
		logger.Warn("[SHUTDOWN] flushing AOF to disk...\n")
		database.DB.Aof.W.Flush()
		database.DB.Aof.F.Sync()
	}
	logger.Warn("[SHUTDOWN] graceful shutdown complete. Goodbye!\n")
}

// handleOneConnection manages a single client connection for its entire
// lifetime, reading RESP arrays and dispatching each to handlers.Handle
// until the client disconnects or a read error occurs.
func handleOneConnection(conn net.Conn, state *common.AppState, connectionCount *int32) {
	logger.Info("accepted connection from %s\n", conn.RemoteAddr())

	newCount := atomic.AddInt32(connectionCount, 1)
	state.GenStats.TotalConnectionsReceived++

	state.AddConn(conn)
	defer state.RemoveConn(conn)

	client := common.NewClient(conn)
	reader := bufio.NewReader(conn)

	for {
		v := common.Value{Typ: common.ARRAY}

		if err := v.ReadArray(reader); err != nil {
			if err.Error() != "EOF" {
				logger.Error("[%2d] read error: %v", newCount, err)
			}
			break
		}

		if len(v.Arr) > 0 {
			if !state.Config.Sensitive {
				v.Arr[0].Blk = strings.ToUpper(v.Arr[0].Blk)
			}
			fmt.Printf("[%2d] [SERVER] %s\n", newCount, v.Arr[0].Blk)
		}

		handlers.Handle(client, &v, state)
	}

	atomic.AddInt32(connectionCount, -1)
	logger.Warn("[%2d] [CLOSED] client disconnected: %s\n", newCount, conn.RemoteAddr())
}
