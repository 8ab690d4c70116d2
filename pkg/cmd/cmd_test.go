package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewVManageUnlockCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmds := NewVManageUnlockCommand(strings.NewReader(""), out, out)
	if !assert.NotNil(t, cmds) {
		return
	}
	assert.Equal(t, "vmanage-unlock", cmds.Use)
	assert.NotNil(t, cmds.RunE)

	names := lo.Map(cmds.Commands(), func(c *cobra.Command, _ int) string {
		return c.Name()
	})
	assert.Contains(t, names, "unlock")
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "version")
}

func TestNewDefaultVManageUnlockCommand(t *testing.T) {
	cmds := NewDefaultVManageUnlockCommand()
	if !assert.NotNil(t, cmds) {
		return
	}
	assert.Equal(t, "vmanage-unlock", cmds.Use)
}
