package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/NilFoundation/stone/common/logging"
)

var (
	ErrInvalidEndpoint           = errors.New("invalid endpoint")
	ErrFailedToMarshalRequest    = errors.New("failed to marshal request")
	ErrFailedToSendRequest       = errors.New("failed to send request")
	ErrUnexpectedStatusCode      = errors.New("unexpected status code")
	ErrFailedToReadResponse      = errors.New("failed to read response")
	ErrFailedToUnmarshalResponse = errors.New("failed to unmarshal response")
	ErrRPCError                  = errors.New("rpc error")
)

type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	Id      uint64 `json:"id"`
}

func NewRequest(id uint64, method string, params []any) *Request {
	return &Request{
		Version: "2.0",
		Method:  method,
		Id:      id,
		Params:  params,
	}
}

type rawClient struct {
	endpoint string
	seqno    atomic.Uint64
	client   http.Client
	logger   logging.Logger
}

// newRawClient accepts http(s)://, tcp://host:port and unix:///path/to/socket endpoints.
func newRawClient(endpoint string, logger logging.Logger) (*rawClient, error) {
	c := &rawClient{
		endpoint: endpoint,
		logger:   logger,
	}

	switch {
	case strings.HasPrefix(endpoint, "unix://"):
		socketPath := strings.TrimPrefix(endpoint, "unix://")
		if socketPath == "" {
			return nil, fmt.Errorf("%w: empty unix socket path in %q", ErrInvalidEndpoint, endpoint)
		}
		c.endpoint = "http://unix"
		c.client = http.Client{
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					var dialer net.Dialer
					return dialer.DialContext(ctx, "unix", socketPath)
				},
			},
		}
	case strings.HasPrefix(endpoint, "tcp://"):
		c.endpoint = "http://" + strings.TrimPrefix(endpoint, "tcp://")
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
	default:
		return nil, fmt.Errorf("%w: unsupported scheme in %q", ErrInvalidEndpoint, endpoint)
	}

	return c, nil
}

func (c *rawClient) RawCall(ctx context.Context, method string, params ...any) (rawMessage, error) {
	request := NewRequest(c.seqno.Add(1), method, params)

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToMarshalRequest, err)
	}

	body, err := c.plainTextCall(ctx, requestBody)
	if err != nil {
		return nil, err
	}

	var rpcResponse map[string]rawMessage
	if err := json.Unmarshal(body, &rpcResponse); err != nil {
		c.logger.Debug().Str("response", string(body)).Msg("failed to unmarshal response")
		return nil, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	c.logger.Trace().Str(logging.FieldRpcMethod, method).RawJSON("response", body).Send()

	if errorMsg, ok := rpcResponse["error"]; ok && !isNull(errorMsg) {
		return nil, fmt.Errorf("%w: %s: %s", ErrRPCError, method, errorMsg)
	}

	return rpcResponse["result"], nil
}

func (c *rawClient) plainTextCall(ctx context.Context, requestBody []byte) ([]byte, error) {
	c.logger.Trace().RawJSON("request", requestBody).Send()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, resp.StatusCode, body)
	}
	return body, nil
}

func isNull(raw rawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
