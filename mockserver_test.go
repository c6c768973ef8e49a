package pymote

import (
	"bufio"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

// mockBridge is a lightweight stand-in for the Pymote console bridge.
//
// It listens on a loopback TCP port and answers line-delimited JSON
// requests using a configurable handler, so the client can be tested
// without a running simulator.
type mockBridge struct {
	listener net.Listener

	// handler receives each decoded request and returns the raw bytes to
	// write back. Returning "" closes the connection without writing
	// anything; returning a frame without a trailing newline writes it
	// and then closes the connection (a peer that completes the frame by
	// closing). Frames ending in a newline keep the connection open.
	handler func(req Request) string

	mu       sync.Mutex
	commands []string
	conns    []net.Conn
	wg       sync.WaitGroup
}

// startMockBridge starts a mock bridge on an ephemeral port. The bridge
// is shut down automatically when the test finishes. A nil handler
// answers every command with an empty success frame.
func startMockBridge(t *testing.T, handler func(req Request) string) *mockBridge {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start mock bridge: %v", err)
	}

	if handler == nil {
		handler = func(Request) string { return okFrame("") }
	}

	mb := &mockBridge{
		listener: listener,
		handler:  handler,
	}

	mb.wg.Add(1)
	go mb.acceptLoop()

	t.Cleanup(func() { mb.stop() })
	return mb
}

// addr returns the host and port the bridge listens on.
func (mb *mockBridge) addr(t *testing.T) (string, int) {
	t.Helper()
	host, portStr, err := net.SplitHostPort(mb.listener.Addr().String())
	if err != nil {
		t.Fatalf("failed to split bridge address: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("bad bridge port %q: %v", portStr, err)
	}
	return host, port
}

// receivedCommands returns a copy of the command strings seen so far.
func (mb *mockBridge) receivedCommands() []string {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return append([]string(nil), mb.commands...)
}

// lastCommand returns the most recently received command string.
func (mb *mockBridge) lastCommand(t *testing.T) string {
	t.Helper()
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if len(mb.commands) == 0 {
		t.Fatal("mock bridge received no commands")
	}
	return mb.commands[len(mb.commands)-1]
}

func (mb *mockBridge) acceptLoop() {
	defer mb.wg.Done()

	for {
		conn, err := mb.listener.Accept()
		if err != nil {
			return
		}

		mb.mu.Lock()
		mb.conns = append(mb.conns, conn)
		mb.mu.Unlock()

		mb.wg.Add(1)
		go mb.handleConnection(conn)
	}
}

func (mb *mockBridge) handleConnection(conn net.Conn) {
	defer mb.wg.Done()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var req Request
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			continue
		}

		mb.mu.Lock()
		mb.commands = append(mb.commands, req.Command)
		mb.mu.Unlock()

		response := mb.handler(req)
		if response == "" {
			conn.Close()
			return
		}
		conn.Write([]byte(response))
		if response[len(response)-1] != '\n' {
			conn.Close()
			return
		}
	}
}

func (mb *mockBridge) stop() {
	mb.listener.Close()

	mb.mu.Lock()
	for _, conn := range mb.conns {
		conn.Close()
	}
	mb.conns = nil
	mb.mu.Unlock()

	mb.wg.Wait()
}

// okFrame builds a success response frame for the given console output.
func okFrame(result string) string {
	data, err := json.Marshal(Response{Success: true, Result: result})
	if err != nil {
		panic(err)
	}
	return string(data) + "\n"
}

// errFrame builds a failure response frame with the given error message.
func errFrame(message string) string {
	data, err := json.Marshal(Response{Success: false, Error: message})
	if err != nil {
		panic(err)
	}
	return string(data) + "\n"
}

// connectedClient connects a client to the bridge with the given timeout
// and registers cleanup.
func connectedClient(t *testing.T, mb *mockBridge, timeout time.Duration) *Client {
	t.Helper()

	host, port := mb.addr(t)
	client := NewClient()
	if err := client.Connect(host, port, timeout); err != nil {
		t.Fatalf("failed to connect to mock bridge: %v", err)
	}
	t.Cleanup(client.Disconnect)
	return client
}
