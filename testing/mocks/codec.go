package mocks

import (
	"testing"
)

type Codec struct {
	EncodeFunc func(value interface{}) ([]byte, error)
	DecodeFunc func(data []byte, value interface{}) error
}

func BaselineCodec(t *testing.T) *Codec {
	t.Helper()

	c := Codec{
		EncodeFunc: func(interface{}) ([]byte, error) {
			return GenericBytes, nil
		},
		DecodeFunc: func([]byte, interface{}) error {
			return nil
		},
	}

	return &c
}

func (c *Codec) Encode(value interface{}) ([]byte, error) {
	return c.EncodeFunc(value)
}

func (c *Codec) Decode(data []byte, value interface{}) error {
	return c.DecodeFunc(data, value)
}
