package users

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/entity"
	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/terminal"
)

type fakePodStore struct {
	pods  []string
	err   error
	calls int
}

func (f *fakePodStore) GetPods() ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pods, nil
}

type fakeSessionStore struct {
	users    []entity.User
	loginErr error
	usersErr error

	loginCalls  int
	usersCalls  int
	logoutCalls int
}

func (f *fakeSessionStore) Login(username string, password string) error {
	f.loginCalls++
	return f.loginErr
}

func (f *fakeSessionStore) FetchXSRFToken() (string, error) {
	return "tok", nil
}

func (f *fakeSessionStore) GetUsers() ([]entity.User, error) {
	f.usersCalls++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeSessionStore) Logout() error {
	f.logoutCalls++
	return nil
}

func TestNewCmdUsers(t *testing.T) {
	out := &bytes.Buffer{}
	term := terminal.NewFromStreams(strings.NewReader(""), out, out)
	cmd := NewCmdUsers(term, &fakePodStore{}, func(pod string) SessionStore { return &fakeSessionStore{} })
	if !assert.NotNil(t, cmd) {
		return
	}
	assert.Equal(t, "users", cmd.Use)
}

func TestRunUsersSinglePod(t *testing.T) {
	t.Setenv("PW", "hunter2")
	podStore := &fakePodStore{pods: []string{"10.0.0.9"}}
	session := &fakeSessionStore{users: []entity.User{
		{UserName: "admin", Description: "super user", Group: []string{"netadmin"}},
		{UserName: "alice", Group: []string{"operator", "basic"}},
	}}
	var factoryPods []string
	factory := func(pod string) SessionStore {
		factoryPods = append(factoryPods, pod)
		return session
	}
	out := &bytes.Buffer{}
	term := terminal.NewFromStreams(strings.NewReader(""), out, out)

	err := RunUsers(term, podStore, factory)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, []string{"10.0.0.9"}, factoryPods)
	assert.Equal(t, 1, session.usersCalls)
	assert.Equal(t, 1, session.logoutCalls)
	assert.Contains(t, out.String(), "USERNAME")
	assert.Contains(t, out.String(), "admin")
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "operator,basic")
}

func TestRunUsersMissingPassword(t *testing.T) {
	t.Setenv("PW", "")
	podStore := &fakePodStore{pods: []string{"10.0.0.9"}}
	out := &bytes.Buffer{}
	term := terminal.NewFromStreams(strings.NewReader(""), out, out)

	err := RunUsers(term, podStore, func(pod string) SessionStore { return &fakeSessionStore{} })
	var confErr *vmerrors.ConfigError
	if !assert.True(t, errors.As(err, &confErr)) {
		return
	}
	assert.Equal(t, 0, podStore.calls)
}

func TestRunUsersLoginRejected(t *testing.T) {
	t.Setenv("PW", "wrong")
	session := &fakeSessionStore{loginErr: vmerrors.WrapAndTrace(vmerrors.NewAuthError("login rejected"))}
	out := &bytes.Buffer{}
	term := terminal.NewFromStreams(strings.NewReader(""), out, out)

	err := RunUsers(term, &fakePodStore{pods: []string{"10.0.0.9"}}, func(pod string) SessionStore { return session })
	var authErr *vmerrors.AuthError
	if !assert.True(t, errors.As(err, &authErr)) {
		return
	}
	assert.Equal(t, 0, session.usersCalls)
	assert.Equal(t, 0, session.logoutCalls)
}
