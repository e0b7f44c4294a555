package response

import (
	json "github.com/goccy/go-json"
)

// Build response envelope of payload and error.
func Build(payload interface{}, err error) ([]byte, error) {
	response := response{
		IsOk:    err == nil,
		Payload: payload,
	}

	if !response.IsOk {
		response.Error = err.Error()
	}
	return json.Marshal(response)
}
