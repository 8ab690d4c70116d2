package store

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/go-resty/resty/v2"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/config"
)

type SessionHTTPStore struct {
	FileStore
	sessionHTTPClient *SessionHTTPClient
}

func (f *FileStore) WithSessionHTTPClient(c *SessionHTTPClient) *SessionHTTPStore {
	return &SessionHTTPStore{*f, c}
}

// SessionHTTPClient is a resty client pinned to one controller for the
// lifetime of a run. resty's default cookie jar carries the JSESSIONID
// issued at login; the XSRF token is filled in by FetchXSRFToken and sent
// on mutating calls.
type SessionHTTPClient struct {
	restyClient *resty.Client
	xsrfToken   string
}

func NewSessionHTTPClient(baseURL string, conf config.ConstantsConfig) *SessionHTTPClient {
	restyClient := resty.New()
	restyClient.SetBaseURL(baseURL)
	restyClient.SetTimeout(conf.GetRequestTimeout())
	if !conf.GetTLSVerify() {
		restyClient.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) // #nosec G402 lab pods serve self-signed certs
	}
	if conf.GetDebugHTTP() {
		restyClient.SetDebug(true)
	}
	return &SessionHTTPClient{restyClient: restyClient}
}

// PodBaseURL builds the base URL for a pod's controller API.
func PodBaseURL(address string, port string) string {
	return fmt.Sprintf("https://%s", net.JoinHostPort(address, port))
}

type HTTPResponseError struct {
	response *resty.Response
}

func NewHTTPResponseError(response *resty.Response) *HTTPResponseError {
	return &HTTPResponseError{
		response: response,
	}
}

func (e HTTPResponseError) Error() string {
	return fmt.Sprintf("%s %s", e.response.Request.URL, e.response.Status())
}
