package users

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/cmderrors"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/config"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/entity"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/terminal"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

var (
	usersLong    = "List the accounts configured on a pod's vManage, to see what exists before unlocking."
	usersExample = `  PW=<admin password> vmanage-unlock users`
)

type UsersStore interface {
	GetPods() ([]string, error)
}

type SessionStore interface {
	Login(username string, password string) error
	FetchXSRFToken() (string, error)
	GetUsers() ([]entity.User, error)
	Logout() error
}

type SessionStoreFactory func(podAddress string) SessionStore

func NewCmdUsers(t *terminal.Terminal, usersStore UsersStore, newSessionStore SessionStoreFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "users",
		DisableFlagsInUseLine: true,
		Short:                 "List vManage users on a pod",
		Long:                  usersLong,
		Example:               usersExample,
		Args:                  cobra.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmderrors.DisplayAndHandleCmdError("users", func() error {
				return RunUsers(t, usersStore, newSessionStore)
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

func RunUsers(t *terminal.Terminal, usersStore UsersStore, newSessionStore SessionStoreFactory) error {
	password := config.GlobalConfig.GetAdminPassword()
	if password == "" {
		return vmerrors.WrapAndTrace(vmerrors.NewConfigError("PW environment variable is not set"))
	}

	pods, err := usersStore.GetPods()
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}

	pod := pods[0]
	if len(pods) > 1 {
		pod = terminal.PromptSelectInput(terminal.PromptSelectContent{
			Label: "Pick a pod",
			Items: pods,
		})
	}

	session := newSessionStore(pod)
	err = session.Login(config.GlobalConfig.GetAdminUsername(), password)
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}
	if _, err := session.FetchXSRFToken(); err != nil {
		return vmerrors.WrapAndTrace(err)
	}
	defer func() {
		if logoutErr := session.Logout(); logoutErr != nil {
			t.Vprint(t.Yellow("could not log out cleanly: %s", logoutErr))
		}
	}()

	users, err := session.GetUsers()
	if err != nil {
		return vmerrors.WrapAndTrace(err)
	}

	displayUsersTable(t, users)
	return nil
}

func displayUsersTable(t *terminal.Terminal, users []entity.User) {
	ta := table.NewWriter()
	ta.Style().Options = getUsersTableOptions()

	ta.AppendHeader(table.Row{"#", "Username", "Description", "Groups"})
	for i, u := range users {
		ta.AppendRow(table.Row{i + 1, u.UserName, u.Description, strings.Join(u.Group, ",")})
	}

	t.Print(ta.Render())
}

func getUsersTableOptions() table.Options {
	options := table.OptionsDefault
	options.DrawBorder = false
	options.SeparateColumns = false
	options.SeparateRows = false
	options.SeparateHeader = false
	return options
}
