// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package zbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Codec encodes and decodes ledger values as canonical CBOR. The canonical
// options fix the field order, so byte-identical input values always produce
// byte-identical output, which is what makes block digests stable.
type Codec struct {
	encoder cbor.EncMode
	decoder cbor.DecMode
}

// NewCodec creates a new Codec.
func NewCodec() *Codec {

	// We should never fail here if the options are valid, so use panic to keep
	// the function signature for the codec clean.
	options := cbor.CanonicalEncOptions()
	options.Time = cbor.TimeRFC3339Nano
	encoder, err := options.EncMode()
	if err != nil {
		panic(err)
	}
	decoder, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}

	c := Codec{
		encoder: encoder,
		decoder: decoder,
	}

	return &c
}

func (c *Codec) Encode(value interface{}) ([]byte, error) {
	data, err := c.encoder.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("could not encode value: %w", err)
	}
	return data, nil
}

func (c *Codec) Decode(data []byte, value interface{}) error {
	err := c.decoder.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not decode value: %w", err)
	}
	return nil
}
