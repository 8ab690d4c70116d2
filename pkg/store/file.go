package store

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	vmerrors "github.com/sdwanlab/vmanage-unlock-cli/pkg/errors"
)

type FileStore struct {
	BasicStore
	fs afero.Fs
}

func (b *BasicStore) WithFileSystem(fs afero.Fs) *FileStore {
	return &FileStore{*b, fs}
}

func (f FileStore) FileExists(filepath string) (bool, error) {
	fileExists, err := afero.Exists(f.fs, filepath)
	if err != nil {
		return false, vmerrors.WrapAndTrace(err)
	}
	return fileExists, nil
}

// podsFile is the on-disk registry of lab controllers:
//
//	Pods:
//	  - 1.1.1.1
//	  - 2.2.2.2
type podsFile struct {
	Pods []string `yaml:"Pods"`
}

// GetPods loads the controller addresses from the pods file, in file order.
func (f FileStore) GetPods() ([]string, error) {
	path := f.config.GetPodsFilePath()
	exists, err := f.FileExists(path)
	if err != nil {
		return nil, vmerrors.WrapAndTrace(err)
	}
	if !exists {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewConfigError(fmt.Sprintf("pods file %s not found", path)))
	}
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, vmerrors.WrapAndTrace(err)
	}
	var pf podsFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewConfigError(fmt.Sprintf("pods file %s is not valid yaml: %s", path, err)))
	}
	if len(pf.Pods) == 0 {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewConfigError(fmt.Sprintf("pods file %s lists no pods", path)))
	}
	var allErr *multierror.Error
	for i, pod := range pf.Pods {
		if strings.TrimSpace(pod) == "" {
			allErr = multierror.Append(allErr, fmt.Errorf("pod entry %d is blank", i+1))
		}
	}
	if err := allErr.ErrorOrNil(); err != nil {
		return nil, vmerrors.WrapAndTrace(vmerrors.NewConfigError(fmt.Sprintf("pods file %s is invalid: %s", path, err)))
	}
	return pf.Pods, nil
}
