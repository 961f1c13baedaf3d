package subscribe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const subscribeFormID = "eff_supporters_library_subscribe_form"

// Client performs the subscription POST against the EFF endpoint.
type Client struct {
	// URL is the subscription endpoint.
	URL string
	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient *http.Client
	Log        zerolog.Logger
}

// Submit subscribes email to the mailing list and classifies the server's
// answer. It never returns an error; every failure mode maps to an Outcome.
func (c *Client) Submit(ctx context.Context, email string) Outcome {
	form := url.Values{
		"data_type": {"json"},
		"email":     {email},
		"form_id":   {subscribeFormID},
	}
	body := form.Encode()

	c.Log.Info().Str("email", email).Msg("subscribing to the EFF mailing list")
	c.Log.Debug().Str("url", c.URL).Str("body", body).Msg("sending POST request")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.URL, strings.NewReader(body))
	if err != nil {
		c.Log.Debug().Err(err).Msg("building subscription request failed")
		return ServerError
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.Log.Debug().Err(err).Msg("subscription request failed")
		return ServerError
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Debug().Err(err).Msg("reading subscription response failed")
		return ServerError
	}
	c.Log.Debug().Int("status", resp.StatusCode).
		Str("body", string(respBody)).Msg("received response")

	return classify(resp.StatusCode, respBody)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// classify maps a raw HTTP response to an Outcome. Order matters: HTTP
// failures trump body parsing, a missing or unparseable status field trumps
// its value.
func classify(statusCode int, body []byte) Outcome {
	if statusCode < 200 || statusCode >= 300 {
		return ServerError
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return MalformedResponse
	}
	status, ok := payload["status"]
	if !ok {
		return MalformedResponse
	}
	if truthy(status) {
		return Success
	}
	return InvalidEmail
}

// truthy evaluates a decoded JSON value the way the subscription form's
// status field is meant to be read: false, 0, "", null and empty
// collections all count as falsy.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case nil:
		return false
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
