package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/entity"
	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

var usersPath = "dataservice/admin/user"

type usersResponse struct {
	Data []entity.User `json:"data"`
}

// GetUsers lists the accounts configured on the controller, in the order
// the controller returns them.
func (s SessionHTTPStore) GetUsers() ([]entity.User, error) {
	var result usersResponse
	res, err := s.sessionHTTPClient.restyClient.R().
		SetHeader("Content-Type", "application/json").
		SetResult(&result).
		Get(usersPath)
	if err != nil {
		if isJSONError(err) {
			return nil, vmerrors.WrapAndTrace(vmerrors.NewDataError(fmt.Sprintf("user listing is not valid json: %s", err)))
		}
		return nil, vmerrors.WrapAndTrace(vmerrors.NewNetworkError("user listing", err))
	}
	if res.StatusCode() == http.StatusUnauthorized || res.StatusCode() == http.StatusForbidden {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewAuthError(fmt.Sprintf("user listing rejected: %s", res.Status())))
	}
	if res.IsError() {
		return nil, vmerrors.WrapAndTrace(NewHTTPResponseError(res))
	}
	if isLoginPage(res.Body()) {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewAuthError("user listing rejected: session is not authenticated"))
	}
	if len(result.Data) == 0 {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewDataError("controller returned no users"))
	}
	return result.Data, nil
}

var userResetPath = fmt.Sprintf("%s/reset", usersPath)

type userResetRequest struct {
	UserName string `json:"userName"`
}

// UnlockUser clears the lockout for username. The controller treats the
// reset as idempotent, so one POST is enough.
func (s SessionHTTPStore) UnlockUser(username string) error {
	res, err := s.sessionHTTPClient.restyClient.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-XSRF-TOKEN", s.sessionHTTPClient.xsrfToken).
		SetBody(userResetRequest{UserName: username}).
		Post(userResetPath)
	if err != nil {
		return vmerrors.WrapAndTrace(vmerrors.NewNetworkError("user unlock", err))
	}
	if res.IsError() {
		return vmerrors.WrapAndTrace(vmerrors.NewActionError(username, unlockFailureDetails(res.Body(), res.Status())))
	}
	return nil
}

// unlockFailureDetails digs the human-readable detail out of the controller
// error envelope, falling back to the HTTP status.
func unlockFailureDetails(body []byte, status string) string {
	for _, path := range []string{"error.details", "error.message"} {
		if v := gjson.GetBytes(body, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return status
}

func isJSONError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
