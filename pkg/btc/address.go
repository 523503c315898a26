// Package btc holds the Bitcoin value types shared by the wallet RPC
// request model.
package btc

import (
	"encoding/json"
	"fmt"
)

// Address is a Bitcoin wallet address kept in its raw string form.
//
// The daemon accepts addresses in several encodings (base58check, bech32),
// so the type stores the string unchanged and leaves interpretation to the
// wallet.
// TODO: reject strings that are neither valid base58check nor bech32.
type Address struct {
	raw string
}

// NewAddress wraps a raw address string. It never fails; format
// verification is the daemon's job for now (see the type comment).
func NewAddress(raw string) Address {
	return Address{raw: raw}
}

// String returns the raw address string.
func (a Address) String() string {
	return a.raw
}

// MarshalJSON encodes the address as a plain JSON string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.raw)
}

// UnmarshalJSON decodes the address from a plain JSON string.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid address value: %w", err)
	}
	a.raw = raw
	return nil
}
