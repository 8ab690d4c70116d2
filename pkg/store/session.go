package store

import (
	"bytes"
	"fmt"
	"strings"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

var loginPath = "j_security_check"

// Login authenticates the session against the controller. vManage reports
// bad credentials by serving the login page again with a 200, so the body
// shape is checked on top of the status code.
func (s SessionHTTPStore) Login(username string, password string) error {
	res, err := s.sessionHTTPClient.restyClient.R().
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"j_username": username,
			"j_password": password,
		}).
		Post(loginPath)
	if err != nil {
		return vmerrors.WrapAndTrace(vmerrors.NewNetworkError("login", err))
	}
	if res.IsError() {
		return vmerrors.WrapAndTrace(vmerrors.NewAuthError(fmt.Sprintf("login rejected: %s", res.Status())))
	}
	if isLoginPage(res.Body()) {
		return vmerrors.WrapAndTrace(vmerrors.NewAuthError("login rejected: controller served the login page again"))
	}
	return nil
}

var tokenPath = "dataservice/client/token"

// FetchXSRFToken pulls the session's CSRF token and keeps it on the client
// for mutating calls. vManage hands the token back as a bare string.
func (s SessionHTTPStore) FetchXSRFToken() (string, error) {
	res, err := s.sessionHTTPClient.restyClient.R().
		Get(tokenPath)
	if err != nil {
		return "", vmerrors.WrapAndTrace(vmerrors.NewNetworkError("token fetch", err))
	}
	if res.IsError() {
		return "", vmerrors.WrapAndTrace(vmerrors.NewAuthError(fmt.Sprintf("token fetch rejected: %s", res.Status())))
	}
	if isLoginPage(res.Body()) {
		return "", vmerrors.WrapAndTrace(vmerrors.NewAuthError("token fetch rejected: session is not authenticated"))
	}
	token := strings.TrimSpace(string(res.Body()))
	if token == "" {
		return "", vmerrors.WrapAndTrace(vmerrors.NewAuthError("token fetch returned an empty token"))
	}
	s.sessionHTTPClient.xsrfToken = token
	return token, nil
}

var logoutPath = "logout"

// Logout ends the controller session. Best effort; the session dies with
// the process either way.
func (s SessionHTTPStore) Logout() error {
	res, err := s.sessionHTTPClient.restyClient.R().
		Get(logoutPath)
	if err != nil {
		return vmerrors.WrapAndTrace(vmerrors.NewNetworkError("logout", err))
	}
	if res.IsError() {
		return vmerrors.WrapAndTrace(NewHTTPResponseError(res))
	}
	return nil
}

func isLoginPage(body []byte) bool {
	return bytes.Contains(bytes.ToLower(body), []byte("<html"))
}
