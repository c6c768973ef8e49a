package pymote

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Client is a TCP client for the Pymote console bridge.
//
// It implements the line-delimited JSON request/response protocol for
// executing console commands on a remote simulator. A client owns at most
// one connection at a time; Execute calls are serialized so exactly one
// command is in flight per connection.
type Client struct {
	mu sync.Mutex

	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
}

// NewClient creates a new, unconnected console bridge client.
func NewClient() *Client {
	return &Client{}
}

// Connect opens a TCP connection to the bridge at host:port. The timeout
// applies to the connect itself and to every subsequent command exchange;
// a non-positive timeout falls back to DefaultTimeout.
func (c *Client) Connect(host string, port int, timeout time.Duration) error {
	return c.ConnectContext(context.Background(), host, port, timeout)
}

// ConnectContext connects with a context for cancellation in addition to
// the connect timeout.
func (c *Client) ConnectContext(ctx context.Context, host string, port int, timeout time.Duration) error {
	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := d.DialContext(dialCtx, "tcp", addr)
	if err != nil {
		return NewConnectionError("failed to connect to "+addr, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		// A concurrent Connect won the race.
		conn.Close()
		return ErrAlreadyConnected
	}
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	c.timeout = timeout
	return nil
}

// Disconnect closes the connection if one is open. It swallows close-time
// errors, is safe to call multiple times and on a never-connected client,
// and always leaves the client in the disconnected state.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
		c.reader = nil
	}
}

// IsConnected reports whether the client currently holds a connection.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Session connects to the bridge, runs fn against the connected client
// and disconnects on every exit path, including when fn returns an error
// or panics.
func Session(host string, port int, timeout time.Duration, fn func(*Client) error) error {
	c := NewClient()
	if err := c.Connect(host, port, timeout); err != nil {
		return err
	}
	defer c.Disconnect()
	return fn(c)
}

// Execute sends a console command to the bridge and waits for its
// response frame.
//
// Transport failures (not connected, timeout, peer closed) surface as a
// *ConnectionError and an undecodable response as a *CommandError; in
// both cases the returned result is the zero value. A server-reported
// failure is not a Go error: it is returned as a CommandResult whose
// OK() is false.
//
// If the command is one of the structured-output commands, the raw
// console output is additionally parsed and attached to the result.
// Parse shortfalls never fail the command.
func (c *Client) Execute(command string, parameters map[string]string) (CommandResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return CommandResult{}, NewConnectionError("not connected", ErrNotConnected)
	}

	frame, err := NewRequest(command, parameters).Encode()
	if err != nil {
		return CommandResult{}, NewCommandError("failed to encode request", err)
	}

	// One deadline covers the whole exchange.
	if c.timeout > 0 {
		c.conn.SetDeadline(time.Now().Add(c.timeout))
		defer c.conn.SetDeadline(time.Time{})
	}

	if _, err := c.conn.Write(frame); err != nil {
		if isTimeout(err) {
			return CommandResult{}, NewConnectionError("command timeout", err)
		}
		return CommandResult{}, NewConnectionError("failed to send command", err)
	}

	// Read one newline-terminated response frame. A peer that closes the
	// connection after sending a complete frame without the trailing
	// newline still yields a decodable buffer; closing before sending
	// anything is a transport failure.
	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		switch {
		case errors.Is(err, io.EOF) && len(line) > 0:
			// Frame completed by connection close instead of newline.
		case errors.Is(err, io.EOF):
			return CommandResult{}, NewConnectionError("connection closed by peer", err)
		case isTimeout(err):
			return CommandResult{}, NewConnectionError("command timeout", err)
		default:
			return CommandResult{}, NewConnectionError("failed to read response", err)
		}
	}

	resp, err := DecodeResponse(bytes.TrimSpace(line))
	if err != nil {
		return CommandResult{}, NewCommandError("invalid response", err)
	}

	if !resp.Success {
		return NewFailureResult(resp.Error), nil
	}

	result := NewSuccessResult(resp.Result)
	if data := parseStructured(command, resp.Result); data != nil {
		result = result.withData(data)
	}
	return result, nil
}

// parseStructured routes the raw output of a known structured-output
// command through its parser. Commands without structured output return
// nil.
func parseStructured(command, output string) any {
	switch {
	case strings.Contains(command, "show regions"):
		return ParseRegions(output)
	case strings.Contains(command, "show users"):
		return ParseUsers(output)
	case strings.Contains(command, "show stats"):
		return ParseStats(output)
	case strings.Contains(command, "terrain stats"):
		return ParseTerrainStats(output)
	}
	return nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	netErr, ok := err.(net.Error)
	return ok && netErr.Timeout()
}
