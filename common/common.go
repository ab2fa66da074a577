package common

import (
	"bytes"
	"encoding/json"
	"io"
)

func MarshalResult(v interface{}) (io.Reader, error) {
	b, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func UnMarshalResult(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}
