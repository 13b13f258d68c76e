package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação de tabulação. O jsoniter só aceita
// espaços no MarshalIndent, então a indentação fica com json.Indent.
func PrettyJson(in any) ([]byte, error) {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsonAPI.Marshal(in)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return nil, errors.WithStack(err)
	}

	return out.Bytes(), nil
}
