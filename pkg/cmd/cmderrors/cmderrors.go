package cmderrors

import (
	"github.com/pkg/errors"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/featureflag"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

// determines if should print error stack trace and/or send to crash monitor
func DisplayAndHandleCmdError(name string, cmdFunc func() error) error {
	er := vmerrors.GetDefaultErrorReporter()
	er.AddTag("command", name)
	err := cmdFunc()
	if err != nil {
		er.ReportMessage(err.Error())
		er.ReportError(err)
		er.Flush()
		if featureflag.Debug() || featureflag.IsDev() {
			return err
		}
		return errors.Cause(err) //nolint:wrapcheck //no check
	}
	return nil
}
