// Package cmd is the entrypoint to cli
package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/unlock"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/users"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/cmd/version"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/config"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/featureflag"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/store"
	"github.com/sdwanlab/vmanage-unlock-cli/pkg/terminal"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

func NewDefaultVManageUnlockCommand() *cobra.Command {
	cmd := NewVManageUnlockCommand(os.Stdin, os.Stdout, os.Stderr)
	return cmd
}

func NewVManageUnlockCommand(in io.Reader, out io.Writer, err io.Writer) *cobra.Command {
	t := terminal.NewFromStreams(in, out, err)

	conf := config.NewConstants()
	fileStore := store.NewBasicStore(*conf).WithFileSystem(afero.NewOsFs())

	cmds := &cobra.Command{
		Use:   "vmanage-unlock",
		Short: "unlock vManage accounts that got locked out on lab pods",
		Long: `
      unlock vManage accounts that got locked out on lab pods

      Export the admin password in PW and list your pods in pods.yaml,
      then run with no arguments and follow the prompts.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			_ = featureflag.LoadFeatureFlags(".")
			vmerrors.GetDefaultErrorReporter().Setup()
		},
	}

	unlockCmd := unlock.NewCmdUnlock(t, fileStore, newUnlockSessionStore(conf, fileStore))
	// bare invocation runs the unlock flow, same as the unlock subcommand
	cmds.RunE = unlockCmd.RunE

	cmds.AddCommand(unlockCmd)
	cmds.AddCommand(users.NewCmdUsers(t, fileStore, newUsersSessionStore(conf, fileStore)))
	cmds.AddCommand(version.NewCmdVersion())

	return cmds
}

func newUnlockSessionStore(conf *config.ConstantsConfig, fileStore *store.FileStore) unlock.SessionStoreFactory {
	return func(podAddress string) unlock.SessionStore {
		client := store.NewSessionHTTPClient(store.PodBaseURL(podAddress, conf.GetVManagePort()), *conf)
		return fileStore.WithSessionHTTPClient(client)
	}
}

func newUsersSessionStore(conf *config.ConstantsConfig, fileStore *store.FileStore) users.SessionStoreFactory {
	return func(podAddress string) users.SessionStore {
		client := store.NewSessionHTTPClient(store.PodBaseURL(podAddress, conf.GetVManagePort()), *conf)
		return fileStore.WithSessionHTTPClient(client)
	}
}
