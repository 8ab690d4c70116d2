package store

import "github.com/sdwanlab/vmanage-unlock-cli/pkg/config"

type BasicStore struct {
	config config.ConstantsConfig
}

func NewBasicStore(config config.ConstantsConfig) *BasicStore {
	return &BasicStore{config: config}
}
