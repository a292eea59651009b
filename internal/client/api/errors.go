package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteError is a non-2xx HTTP response translated into a typed failure.
// Message carries the server-provided detail when the error body is
// parsable, and a generic per-operation fallback otherwise.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// errorBody mirrors the API's error payload.
type errorBody struct {
	Detail string `json:"detail"`
}

func newRemoteError(op string, resp *http.Response) *RemoteError {
	message := fmt.Sprintf("%s failed", op)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		var body errorBody
		if json.Unmarshal(data, &body) == nil && body.Detail != "" {
			message = body.Detail
		}
	}

	return &RemoteError{Status: resp.StatusCode, Message: message}
}
