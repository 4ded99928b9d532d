package config

import (
	"os"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// LoadFlagTableFromFile loads a notification flag table from a YAML file.
//
//	flags:
//	  - name: Approved
//	    bit: 2
//	    default: true
func LoadFlagTableFromFile(path string) (*model.FlagTable, error) {
	if path == "" {
		return nil, goerr.New("flag table file path is required", goerr.T(model.ErrTagInvalidConfig))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "flag table file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagInvalidConfig))
		}
		return nil, goerr.Wrap(err, "failed to read flag table file",
			goerr.V("path", path),
			goerr.T(model.ErrTagInvalidConfig))
	}

	var table model.FlagTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, goerr.Wrap(err, "failed to parse flag table YAML",
			goerr.V("path", path),
			goerr.T(model.ErrTagInvalidConfig))
	}

	if err := table.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid flag table",
			goerr.V("path", path))
	}

	return &table, nil
}
