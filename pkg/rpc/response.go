package rpc

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Response is the decoded JSON-RPC response envelope. Result and Error stay
// raw so callers decide the concrete shape per method; exactly one of them
// is meaningful in a well-formed daemon reply.
type Response struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// ReadResponse drains and closes the HTTP response body and decodes the
// JSON-RPC envelope from it. It is an opt-in convenience over the raw
// *http.Response the Client methods return; read and decode failures are
// both wrapped in ErrReadingResponse.
//
// Example usage:
//
//	res, err := client.GetBalance(ctx)
//	if err != nil {
//	    return err
//	}
//
//	response, err := rpc.ReadResponse(res)
//	if err != nil {
//	    return err
//	}
//	if err := response.Err(); err != nil {
//	    return fmt.Errorf("daemon refused: %w", err)
//	}
//
//	var balance BalanceResult
//	if err := response.Translate(&balance); err != nil {
//	    return err
//	}
func ReadResponse(res *http.Response) (*Response, error) {
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingResponse, err)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingResponse, err)
	}

	return &response, nil
}

// Err surfaces the envelope's error member. It returns nil when the member
// is absent or null. The daemon usually reports errors as plain strings;
// anything else is returned verbatim as the error text.
func (r *Response) Err() error {
	if len(r.Error) == 0 || string(r.Error) == "null" {
		return nil
	}

	var message string
	if err := json.Unmarshal(r.Error, &message); err == nil {
		return fmt.Errorf("%s", message)
	}

	return fmt.Errorf("%s", r.Error)
}

// Translate decodes the result member into v, which should be a pointer to
// the desired type. An absent result leaves v untouched.
func (r *Response) Translate(v any) error {
	if len(r.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Result, v); err != nil {
		return fmt.Errorf("error unmarshalling result: %w", err)
	}

	return nil
}
