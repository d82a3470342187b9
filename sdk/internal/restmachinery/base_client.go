package restmachinery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/Harsha430/Transparent-Anemia-Prediction-System-TAPS/sdk"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// BaseClient provides "API machinery" used by all clients that communicate
// with the TAPS API. It is the single choke point for outbound calls: every
// request passes through here, gets the current credential attached (when
// there is one), and has its response classified into the SDK's error
// taxonomy.
type BaseClient struct {
	// APIAddress is the base address of the TAPS API.
	APIAddress string
	// TokenSource, when non-nil, yields the current bearer token. An empty
	// result means no token is held and the request is sent without an
	// Authorization header-- a server-set cookie (carried by HTTPClient's jar)
	// may still authenticate it.
	TokenSource func() string
	// HTTPClient is the underlying HTTP client. Callers that need cookie-based
	// session transport should provide a client with a cookie jar; all clients
	// talking to the same API must share it.
	HTTPClient *http.Client
	// OnUnauthorized, when non-nil, is invoked once per response that indicates
	// the caller's session is no longer honored, before the error is returned
	// to the caller. Requests marked CredentialsEntry never trigger it.
	OnUnauthorized func()
}

// BearerTokenAuthHeaders returns an Authorization header carrying the current
// bearer token, or nil when no token is held.
func (b *BaseClient) BearerTokenAuthHeaders() map[string]string {
	if b.TokenSource == nil {
		return nil
	}
	token := b.TokenSource()
	if token == "" {
		return nil
	}
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}

// ExecuteRequest submits the given request and, if the request specifies a
// RespObj, unmarshals the response body into it.
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	req OutboundRequest,
) error {
	resp, err := b.SubmitRequest(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if req.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, req.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// SubmitRequest submits the given request and returns the raw response. The
// caller assumes responsibility for closing the response body.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	req OutboundRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if req.ReqBodyObj != nil {
		switch rb := req.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(req.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	r, err := http.NewRequestWithContext(
		ctx,
		req.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, req.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.Path,
		)
	}
	if len(req.QueryParams) > 0 {
		q := r.URL.Query()
		for k, v := range req.QueryParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
	}
	if reqBodyReader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range b.BearerTokenAuthHeaders() {
		r.Header.Add(k, v)
	}
	for k, v := range req.Headers {
		r.Header.Add(k, v)
	}

	resp, err := b.HTTPClient.Do(r)
	if err != nil {
		return nil, sdk.NewErrNetwork(err)
	}

	if (req.SuccessCode == 0 && resp.StatusCode != http.StatusOK) ||
		(req.SuccessCode != 0 && resp.StatusCode != req.SuccessCode) {
		// HTTP response code hints at what sort of error might be in the body
		// of the response
		var apiErr error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			apiErr = &sdk.ErrAuthentication{}
		case http.StatusForbidden:
			apiErr = &sdk.ErrAuthorization{}
		case http.StatusBadRequest:
			apiErr = &sdk.ErrBadRequest{}
		case http.StatusNotFound:
			apiErr = &sdk.ErrNotFound{}
		case http.StatusInternalServerError:
			apiErr = &sdk.ErrInternalServer{}
		default:
			return nil, errors.Errorf("received %d from API server", resp.StatusCode)
		}
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		if len(bodyBytes) > 0 {
			// The server's {"error": "..."} payload is optional. A body that
			// doesn't parse leaves the typed error with no reason, which is
			// still a complete answer.
			json.Unmarshal(bodyBytes, apiErr) // nolint: errcheck
		}
		if resp.StatusCode == http.StatusUnauthorized &&
			!req.CredentialsEntry &&
			b.OnUnauthorized != nil {
			glog.V(2).Infof(
				"request %s %s was unauthorized; broadcasting session invalidation",
				req.Method,
				req.Path,
			)
			b.OnUnauthorized()
		}
		return nil, apiErr
	}
	return resp, nil
}
