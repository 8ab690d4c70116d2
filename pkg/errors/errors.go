package errors

import (
	"fmt"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/version"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/config"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/featureflag"
)

type VManageError interface {
	// Error returns a user-facing string explaining the error
	Error() string

	// Directive returns a user-facing string explaining how to overcome the error
	Directive() string
}

type ErrorReporter interface {
	Setup() func()
	Flush()
	ReportMessage(string) string
	ReportError(error) string
	AddTag(key string, value string)
}

func GetDefaultErrorReporter() ErrorReporter {
	return SentryErrorReporter{}
}

type SentryErrorReporter struct{}

var _ ErrorReporter = SentryErrorReporter{}

func (s SentryErrorReporter) Setup() func() {
	if !featureflag.IsDev() {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     config.GlobalConfig.GetSentryURL(),
			Release: version.Version,
		})
		if err != nil {
			fmt.Println(err)
		}
	}
	return func() {
		err := recover()
		if err != nil {
			sentry.CurrentHub().Recover(err)
			sentry.Flush(time.Second * 5)
			panic(err)
		}
		sentry.Flush(2 * time.Second)
	}
}

func (s SentryErrorReporter) Flush() {
	sentry.Flush(time.Second * 2)
}

func (s SentryErrorReporter) ReportMessage(msg string) string {
	event := sentry.CaptureMessage(msg)
	if event != nil {
		return string(*event)
	} else {
		return ""
	}
}

func (s SentryErrorReporter) ReportError(e error) string {
	event := sentry.CaptureException(e)
	if event != nil {
		return string(*event)
	} else {
		return ""
	}
}

func (s SentryErrorReporter) AddTag(key string, value string) {
	scope := sentry.CurrentHub().Scope()
	scope.SetTag(key, value)
}

// ConfigError means the tool was not set up right: bad pods file, missing
// PW, and friends. Raised before any call leaves the machine.
type ConfigError struct {
	Message string
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

var _ VManageError = &ConfigError{}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Directive() string {
	return "check the pods file and the PW environment variable"
}

// AuthError means the controller rejected the admin credentials or the
// session they established.
type AuthError struct {
	Message string
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

var _ VManageError = &AuthError{}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Directive() string {
	return "verify the admin password exported in PW and try again"
}

// NetworkError wraps a transport failure or timeout talking to the pod.
type NetworkError struct {
	Stage string
	Err   error
}

func NewNetworkError(stage string, err error) *NetworkError {
	return &NetworkError{Stage: stage, Err: err}
}

var _ VManageError = &NetworkError{}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Stage, e.Err)
}

func (e *NetworkError) Directive() string {
	return "check connectivity to the pod and try again"
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DataError means the controller answered with something the tool cannot
// work with, like an unparseable or empty user listing.
type DataError struct {
	Message string
}

func NewDataError(message string) *DataError {
	return &DataError{Message: message}
}

var _ VManageError = &DataError{}

func (e *DataError) Error() string {
	return e.Message
}

func (e *DataError) Directive() string {
	return "rerun with DEBUG_HTTP=1 to inspect the controller response"
}

// ActionError means the controller refused the unlock itself.
type ActionError struct {
	Username string
	Message  string
}

func NewActionError(username string, message string) *ActionError {
	return &ActionError{Username: username, Message: message}
}

var _ VManageError = &ActionError{}

func (e *ActionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unlock of user %q failed", e.Username)
	}
	return fmt.Sprintf("unlock of user %q failed: %s", e.Username, e.Message)
}

func (e *ActionError) Directive() string {
	return "confirm the account state in the vManage GUI and try again"
}

// InputError marks a prompt entry that cannot be used. Prompts recover from
// it by asking again; it never aborts a run.
type InputError struct {
	Message string
}

func NewInputError(message string) *InputError {
	return &InputError{Message: message}
}

var _ VManageError = &InputError{}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Directive() string {
	return "enter one of the listed numbers"
}

func WrapAndTrace(err error, messages ...string) error {
	message := ""
	for _, m := range messages {
		message += fmt.Sprintf(" %s", m)
	}
	return errors.Wrap(err, MakeErrorMessage(message))
}

func MakeErrorMessage(message string) string {
	_, fn, line, _ := runtime.Caller(2)
	return fmt.Sprintf("[error] %s:%d %s\n\t", fn, line, message)
}
