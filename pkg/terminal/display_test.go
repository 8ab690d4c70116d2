package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

func makePromptTerminal(input string) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewFromStreams(strings.NewReader(input), out, out), out
}

func TestPromptSelectIndexEnumeratesItems(t *testing.T) {
	term, out := makePromptTerminal("1\n")
	idx, err := term.PromptSelectIndex(PromptSelectContent{
		Label: "Type the number of your pod",
		Items: []string{"10.0.0.1", "10.0.0.2"},
	})
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, 0, idx)
	assert.Contains(t, out.String(), "1) 10.0.0.1")
	assert.Contains(t, out.String(), "2) 10.0.0.2")
	assert.Contains(t, out.String(), "Type the number of your pod: ")
}

func TestPromptSelectIndexReasksOnBadInput(t *testing.T) {
	term, out := makePromptTerminal("x\n0\n9\n2\n")
	idx, err := term.PromptSelectIndex(PromptSelectContent{
		Label: "pick",
		Items: []string{"a", "b", "c"},
	})
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "'x' is not a number!")
	assert.Contains(t, out.String(), "'0' is not one of the listed numbers!")
	assert.Contains(t, out.String(), "'9' is not one of the listed numbers!")
}

func TestPromptSelectIndexSequentialPrompts(t *testing.T) {
	term, _ := makePromptTerminal("2\n1\n")
	first, err := term.PromptSelectIndex(PromptSelectContent{Label: "pod", Items: []string{"a", "b"}})
	if !assert.Nil(t, err) {
		return
	}
	second, err := term.PromptSelectIndex(PromptSelectContent{Label: "user", Items: []string{"x", "y"}})
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestPromptSelectIndexInputClosed(t *testing.T) {
	term, _ := makePromptTerminal("")
	_, err := term.PromptSelectIndex(PromptSelectContent{Label: "pick", Items: []string{"a"}})
	if !assert.NotNil(t, err) {
		return
	}
	assert.True(t, errors.Is(err, io.EOF))
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		itemCount int
		want      int
		wantErr   bool
	}{
		{name: "first item", line: "1", itemCount: 3, want: 0},
		{name: "last item", line: "3", itemCount: 3, want: 2},
		{name: "surrounding whitespace", line: "  2  ", itemCount: 3, want: 1},
		{name: "not a number", line: "abc", itemCount: 3, wantErr: true},
		{name: "zero", line: "0", itemCount: 3, wantErr: true},
		{name: "past the end", line: "4", itemCount: 3, wantErr: true},
		{name: "empty line", line: "", itemCount: 3, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChoice(tt.line, tt.itemCount)
			if tt.wantErr {
				var inputErr *vmerrors.InputError
				assert.True(t, errors.As(err, &inputErr))
				return
			}
			if !assert.Nil(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
