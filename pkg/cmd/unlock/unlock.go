package unlock

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/cmderrors"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/config"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/entity"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/terminal"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

var (
	unlockLong    = "Unlock a vManage account that got locked out by too many bad login attempts. Walks you through picking the pod and the user."
	unlockExample = `  PW=<admin password> vmanage-unlock`
)

type UnlockStore interface {
	GetPods() ([]string, error)
}

type SessionStore interface {
	Login(username string, password string) error
	FetchXSRFToken() (string, error)
	GetUsers() ([]entity.User, error)
	UnlockUser(username string) error
	Logout() error
}

// SessionStoreFactory builds a session store bound to one pod address.
// Sessions are never rebased onto another pod.
type SessionStoreFactory func(podAddress string) SessionStore

func NewCmdUnlock(t *terminal.Terminal, unlockStore UnlockStore, newSessionStore SessionStoreFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "unlock",
		DisableFlagsInUseLine: true,
		Short:                 "Unlock a locked out vManage user",
		Long:                  unlockLong,
		Example:               unlockExample,
		Args:                  cobra.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmderrors.DisplayAndHandleCmdError("unlock", func() error {
				return RunUnlock(t, unlockStore, newSessionStore)
			})
			if err != nil {
				t.Errprint(err, "")
				return err
			}
			return nil
		},
	}
	return cmd
}

// RunUnlock drives the whole interactive flow: pick a pod, log in as admin,
// pick a username, reset it.
func RunUnlock(t *terminal.Terminal, unlockStore UnlockStore, newSessionStore SessionStoreFactory) error {
	creds, err := resolveAdminCredentials(*config.GlobalConfig)
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}

	pods, err := unlockStore.GetPods()
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}

	terminal.DisplayUnlockBanner(t)
	podIdx, err := t.PromptSelectIndex(terminal.PromptSelectContent{
		Label: "Type the number of your pod",
		Items: pods,
	})
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}
	pod := pods[podIdx]

	session := newSessionStore(pod)

	s := t.NewSpinner()
	s.Suffix = fmt.Sprintf(" logging in to pod %s", pod)
	s.Start()
	err = session.Login(creds.Username, creds.Password)
	if err != nil {
		s.Stop()
		return vmerrors.WrapAndTrace(err)
	}
	_, err = session.FetchXSRFToken()
	if err != nil {
		s.Stop()
		return vmerrors.WrapAndTrace(err)
	}
	defer func() {
		if logoutErr := session.Logout(); logoutErr != nil {
			t.Vprint(t.Yellow("could not log out cleanly: %s", logoutErr))
		}
	}()

	s.Stop()
	s.Suffix = " fetching users"
	s.Start()
	users, err := session.GetUsers()
	s.Stop()
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}

	usernames := lo.Map(users, func(u entity.User, _ int) string {
		return u.UserName
	})
	userIdx, err := t.PromptSelectIndex(terminal.PromptSelectContent{
		Label: "Type the number of the user to unlock",
		Items: usernames,
	})
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}
	username := usernames[userIdx]

	err = session.UnlockUser(username)
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}
	t.Vprint(t.Green("User %s unlocked!", username))
	return nil
}

func resolveAdminCredentials(conf config.ConstantsConfig) (entity.Credentials, error) {
	password := conf.GetAdminPassword()
	if password == "" {
		return entity.Credentials{}, vmerrors.WrapAndTrace(vmerrors.NewConfigError("PW environment variable is not set"))
	}
	return entity.Credentials{
		Username: conf.GetAdminUsername(),
		Password: password,
	}, nil
}
