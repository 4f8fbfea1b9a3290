package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON renders t as indented JSON.
func DumpJSON[T any](t T) (string, error) {
	tBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", errors.Wrapf(err, `DumpJSON error for type "%T"`, t)
	}

	return string(tBytes), nil
}
