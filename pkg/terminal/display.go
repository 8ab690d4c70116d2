package terminal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

type PromptSelectContent struct {
	ErrorMsg string
	Label    string
	Items    []string
}

// PromptSelectIndex enumerates the items 1-based and reads the operator's
// pick as a typed number, asking again until a listed number comes in.
// Returns the zero-based index of the pick.
func (t *Terminal) PromptSelectIndex(pc PromptSelectContent) (int, error) {
	for i, item := range pc.Items {
		t.Print(fmt.Sprintf("%d) %s", i+1, item))
	}
	for {
		t.Printf("%s: ", pc.Label)
		line, err := t.readLine()
		if err != nil {
			return 0, vmerrors.WrapAndTrace(err)
		}
		idx, err := parseChoice(line, len(pc.Items))
		if err != nil {
			var inputErr *vmerrors.InputError
			if errors.As(err, &inputErr) {
				t.Print(t.Yellow(inputErr.Error()))
				continue
			}
			return 0, vmerrors.WrapAndTrace(err)
		}
		return idx, nil
	}
}

// parseChoice maps a typed 1-based selection onto a zero-based index.
func parseChoice(line string, itemCount int) (int, error) {
	raw := strings.TrimSpace(line)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, vmerrors.NewInputError(fmt.Sprintf("'%s' is not a number!", raw))
	}
	if n < 1 || n > itemCount {
		return 0, vmerrors.NewInputError(fmt.Sprintf("'%d' is not one of the listed numbers!", n))
	}
	return n - 1, nil
}

func PromptSelectInput(pc PromptSelectContent) string {
	prompt := promptui.Select{
		Label: pc.Label,
		Items: pc.Items,
	}

	_, result, err := prompt.Run()
	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		os.Exit(1)
	}

	return result
}

func DisplayUnlockBanner(t *Terminal) {
	t.Print("***************************************")
	t.Print("This will help you unlock your account")
	t.Print("Works on vManage")
	t.Print("***************************************")
}
