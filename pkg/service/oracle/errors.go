package oracle

import (
	"context"
	"errors"
	"net"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"
)

// Sentinel errors for classifier invocation failures. They are distinguished
// only for user messaging; every one of them is terminal for the current
// request and recovered by the caller with a default result.
var (
	ErrNotConfigured = goerr.New("classifier API key is not configured")
	ErrAuth          = goerr.New("classifier authentication failed")
	ErrQuota         = goerr.New("classifier quota exceeded")
	ErrModel         = goerr.New("requested classifier model is unavailable")
	ErrUnavailable   = goerr.New("classifier service is unavailable")
	ErrEmptyResponse = goerr.New("classifier returned an empty response")
)

// classifyError maps a transport-level failure onto the sentinel taxonomy
func classifyError(err error, model string) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return goerr.Wrap(ErrAuth, apiErr.Message)
		case 429:
			return goerr.Wrap(ErrQuota, apiErr.Message)
		case 404:
			return goerr.Wrap(ErrModel, apiErr.Message, goerr.V("model", model))
		}
		return goerr.Wrap(ErrUnavailable, apiErr.Message, goerr.V("status", apiErr.HTTPStatusCode))
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return goerr.Wrap(ErrUnavailable, "request timed out or was cancelled")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return goerr.Wrap(ErrUnavailable, "network failure", goerr.V("cause", netErr.Error()))
	}

	return goerr.Wrap(ErrUnavailable, "unexpected classifier failure", goerr.V("cause", err.Error()))
}

// UserMessage renders the failure cause for end users. Each taxonomy entry
// maps to a distinct message so the UI can explain what went wrong without
// exposing transport details.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "OpenAI API key not configured"
	case errors.Is(err, ErrAuth):
		return "authentication with the OpenAI API failed; check the API key"
	case errors.Is(err, ErrQuota):
		return "OpenAI API quota exceeded; check billing and usage limits"
	case errors.Is(err, ErrModel):
		return "the requested model is not available; try a different model"
	case errors.Is(err, ErrUnavailable):
		return "could not reach the OpenAI service; try again later"
	default:
		return "unknown classifier error"
	}
}
