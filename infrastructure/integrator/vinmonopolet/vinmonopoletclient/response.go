package vinmonopoletclient

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeResponse converte status e corpo de uma resposta no registro esperado
func DecodeResponse[T any](statusCode int, body []byte) (T, error) {
	var empty T

	switch statusCode {
	case http.StatusOK:
		var response T
		if err := json.Unmarshal(body, &response); err != nil {
			return empty, &ResponseError{Kind: ErrMalformedPayload, StatusCode: statusCode, Cause: err}
		}
		return response, nil
	case http.StatusNotFound:
		return empty, newStatusError(ErrNotFound, statusCode)
	case http.StatusUnauthorized:
		return empty, newStatusError(ErrUnauthorized, statusCode)
	case http.StatusInternalServerError:
		return empty, newStatusError(ErrServerError, statusCode)
	default:
		return empty, newStatusError(ErrUnknownStatus, statusCode)
	}
}

// HandleResponse lê o corpo da resposta e aplica DecodeResponse
func HandleResponse[T any](resp *http.Response) (T, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		var response T
		return response, &ResponseError{Kind: ErrRequestFailed, StatusCode: resp.StatusCode, Cause: err}
	}

	return DecodeResponse[T](resp.StatusCode, body)
}
