package pymote

import (
	"time"

	json "github.com/goccy/go-json"
)

// Protocol constants for the Pymote console bridge.
const (
	// DefaultHost is the host the bridge listens on by default.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the TCP port the bridge listens on by default.
	DefaultPort = 9500

	// DefaultTimeout is the default socket timeout applied to connect,
	// write and read operations when no timeout is configured.
	DefaultTimeout = 30 * time.Second
)

// Request is the wire envelope for a single console command.
//
// It is encoded as one UTF-8 JSON object followed by a single newline
// byte. Parameters is always present on the wire, as an empty mapping
// when no parameters are given.
type Request struct {
	Command    string            `json:"Command"`
	Parameters map[string]string `json:"Parameters"`
}

// NewRequest creates a request for the given command. A nil parameter map
// is replaced with an empty one so the encoded envelope always carries a
// Parameters object.
func NewRequest(command string, parameters map[string]string) Request {
	if parameters == nil {
		parameters = map[string]string{}
	}
	return Request{Command: command, Parameters: parameters}
}

// Encode returns the request as a wire frame: one JSON object terminated
// by exactly one newline.
func (r Request) Encode() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Response is the wire envelope for a single command response.
//
// Exactly one response frame is produced per request. Result carries the
// raw console output on success; Error carries the server-supplied error
// message on failure.
type Response struct {
	Success bool   `json:"Success"`
	Result  string `json:"Result,omitempty"`
	Error   string `json:"Error,omitempty"`
}

// DecodeResponse decodes a received response frame. The frame may include
// the trailing newline.
func DecodeResponse(data []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}
