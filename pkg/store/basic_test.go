package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdwanlab/vmanage-unlock-cli/pkg/config"
)

func TestNewBasicStore(t *testing.T) {
	s := MakeMockBasicStore()
	if !assert.NotNil(t, s) {
		return
	}
}

func MakeMockBasicStore() *BasicStore {
	return NewBasicStore(*config.NewConstants())
}
