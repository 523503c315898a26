package rpc

import "encoding/json"

// Version is the protocol tag the daemon expects in every request.
// It is a json.Number so it serializes as the literal 2.0; a float would
// round-trip through encoding/json as plain 2, which the daemon rejects.
const Version json.Number = "2.0"

// Params maps parameter keys to their values for a single request.
//
// Values are stored as given and only serialized when the enclosing Body is
// marshaled, so anything encoding/json accepts is a valid value: strings,
// booleans, btc.Address, decimal.Decimal (always a decimal string on the
// wire), or a nested []Output. The wire form is a JSON object, and since
// encoding/json sorts map keys, identical parameter sets always produce
// byte-identical bytes regardless of insertion order.
type Params map[Param]any

// Body is the request envelope the daemon consumes.
//
// Field order matters: the daemon's examples and its own responses use
// exactly this ordering, and the struct declaration order is what
// encoding/json emits.
//
//	{"json_rpc":2.0,"id":1111,"method":"getinfo","params":{}}
type Body struct {
	JSONRPC json.Number `json:"json_rpc"`
	ID      uint64      `json:"id"`
	Method  Method      `json:"method"`
	Params  Params      `json:"params"`
}

// BodyBuilder accumulates the pieces of a request envelope before producing
// an immutable Body. The zero-configuration result is a well-formed no-op
// envelope: version 2.0, id 0, empty method, empty params.
//
// The builder performs no validation: it does not check that the parameters
// match the selected method, nor that values are serializable. The daemon is
// the arbiter of the former; the latter surfaces when the body is marshaled
// for dispatch.
//
// Example:
//
//	body := rpc.NewBodyBuilder().
//		WithID(1111).
//		WithMethod(rpc.GetBalanceMethod).
//		Build()
type BodyBuilder struct {
	body Body
}

// NewBodyBuilder returns a builder holding the default envelope.
func NewBodyBuilder() *BodyBuilder {
	return &BodyBuilder{
		body: Body{
			JSONRPC: Version,
			ID:      0,
			Method:  EmptyMethod,
			Params:  Params{},
		},
	}
}

// WithID sets the request identifier.
func (b *BodyBuilder) WithID(id uint64) *BodyBuilder {
	b.body.ID = id
	return b
}

// WithMethod selects the remote procedure.
func (b *BodyBuilder) WithMethod(method Method) *BodyBuilder {
	b.body.Method = method
	return b
}

// WithParam adds a parameter. Adding the same key twice keeps the last
// value (map semantics).
func (b *BodyBuilder) WithParam(key Param, value any) *BodyBuilder {
	b.body.Params[key] = value
	return b
}

// Build returns the accumulated envelope. The params map is copied, so the
// builder can keep being mutated without aliasing the returned Body.
func (b *BodyBuilder) Build() Body {
	params := make(Params, len(b.body.Params))
	for key, value := range b.body.Params {
		params[key] = value
	}

	body := b.body
	body.Params = params
	return body
}
