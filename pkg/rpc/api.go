package rpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/satworks/electrum-jsonrpc/pkg/btc"
)

// ============================================================================
// RPC Method Constants
// ============================================================================

// Method represents a remote procedure exposed by the Electrum daemon.
// Each constant maps to the exact wire-level command name; the daemon's
// vocabulary mixes snake_case and run-together spellings, and the mapping
// below preserves them verbatim.
type Method string

const (
	// GetInfoMethod returns network and daemon status information.
	GetInfoMethod Method = "getinfo"
	// GetBalanceMethod returns the confirmed and unconfirmed wallet balance.
	GetBalanceMethod Method = "getbalance"
	// ListWalletsMethod lists the wallets known to the daemon.
	ListWalletsMethod Method = "list_wallets"
	// LoadWalletMethod opens a wallet in the daemon.
	LoadWalletMethod Method = "load_wallet"
	// CreateWalletMethod creates a new wallet and returns its seed.
	CreateWalletMethod Method = "create"
	// RestoreWalletMethod recreates a wallet from a seed, key, or address text.
	RestoreWalletMethod Method = "restore"
	// ListAddressesMethod lists the wallet's receiving addresses.
	ListAddressesMethod Method = "listaddresses"
	// GetAddressHistoryMethod returns the transaction history of an address.
	GetAddressHistoryMethod Method = "getaddresshistory"
	// GetAddressBalanceMethod returns the balance of a single address.
	GetAddressBalanceMethod Method = "getaddressbalance"
	// NotifyMethod registers (or clears) a callback URL for address changes.
	NotifyMethod Method = "notify"
	// SignTransactionMethod signs a raw transaction with the wallet keys.
	SignTransactionMethod Method = "signtransaction"
	// BroadcastMethod submits a signed transaction to the network.
	BroadcastMethod Method = "broadcast"
	// PayToMethod creates a transaction paying a single destination.
	PayToMethod Method = "payto"
	// PayToManyMethod creates a transaction paying multiple destinations.
	PayToManyMethod Method = "paytomany"
	// AddRequestMethod creates a payment request.
	AddRequestMethod Method = "add_request"
	// ListRequestsMethod lists payment requests, optionally filtered by state.
	ListRequestsMethod Method = "list_requests"
	// DeleteRequestMethod removes the payment request bound to an address.
	DeleteRequestMethod Method = "delete_request"
	// CloseWalletMethod closes the currently loaded wallet.
	CloseWalletMethod Method = "close_wallet"
	// HelpMethod lists the commands the daemon accepts.
	HelpMethod Method = "help"
	// EmptyMethod is the builder default before a method is selected.
	// Dispatching it is a daemon-side error, not a client-side one.
	EmptyMethod Method = ""
)

// String returns the wire-level name of the method.
func (m Method) String() string {
	return string(m)
}

// ============================================================================
// RPC Parameter Keys
// ============================================================================

// Param identifies a named request parameter. The daemon accepts parameters
// as a JSON object, so these are used only as map keys, never as values.
type Param string

const (
	// AddressParam is a wallet address (history, balance, notify, requests).
	AddressParam Param = "address"
	// DestinationParam is the recipient address of a payment.
	DestinationParam Param = "destination"
	// AmountParam is a monetary amount, sent as a decimal string.
	AmountParam Param = "amount"
	// FeeParam is an explicit transaction fee, sent as a decimal string.
	FeeParam Param = "fee"
	// OutputsParam is the list of [address, amount] pairs for paytomany.
	OutputsParam Param = "outputs"
	// MemoParam is a free-text note attached to a payment request.
	MemoParam Param = "memo"
	// PasswordParam is the wallet password.
	PasswordParam Param = "password"
	// WalletPathParam is the filesystem path of the wallet to operate on.
	WalletPathParam Param = "wallet_path"
	// URLParam is the callback URL for address change notifications.
	URLParam Param = "URL"
	// TextParam is the seed, key, or address text used by restore.
	TextParam Param = "text"
	// TxParam is a raw transaction in hex.
	TxParam Param = "tx"
	// PendingParam filters payment requests to pending ones.
	PendingParam Param = "pending"
	// ExpiredParam filters payment requests to expired ones.
	ExpiredParam Param = "expired"
	// PaidParam filters payment requests to paid ones.
	PaidParam Param = "paid"
)

// String returns the wire-level name of the parameter key.
func (p Param) String() string {
	return string(p)
}

// ============================================================================
// Operation Arguments
// ============================================================================

// LoadWalletRequest carries the optional arguments of load_wallet.
// Nil fields are omitted from the request entirely; the daemon then falls
// back to its own default wallet path and to prompting semantics.
type LoadWalletRequest struct {
	// WalletPath selects a wallet file other than the daemon's default.
	WalletPath *string
	// Password unlocks a password-protected wallet.
	Password *string
}

// CreateWalletRequest carries the optional arguments of create.
type CreateWalletRequest struct {
	// Password encrypts the new wallet when set.
	Password *string
}

// RestoreWalletRequest carries the arguments of restore.
type RestoreWalletRequest struct {
	// Text is the seed phrase, private key, or address list to restore from.
	Text string
	// Password encrypts the restored wallet when set.
	Password *string
}

// NotifyRequest carries the arguments of notify.
type NotifyRequest struct {
	// Address is the wallet address to watch.
	Address btc.Address
	// URL is the callback to invoke on changes. Nil clears the
	// registration at the daemon instead of updating it.
	URL *string
}

// SignTransactionRequest carries the arguments of signtransaction.
type SignTransactionRequest struct {
	// Tx is the raw transaction hex to sign.
	Tx string
	// Password unlocks the wallet keys when set.
	Password *string
}

// PayToRequest carries the arguments of payto.
type PayToRequest struct {
	// Destination is the recipient address.
	Destination btc.Address
	// Amount to send, serialized as a decimal string.
	Amount decimal.Decimal
	// Fee overrides the daemon's fee estimation when set.
	Fee *decimal.Decimal
	// Password unlocks the wallet keys when set.
	Password *string
}

// PayToManyRequest carries the arguments of paytomany.
type PayToManyRequest struct {
	// Outputs lists the recipients and their amounts.
	Outputs []Output
	// Fee overrides the daemon's fee estimation when set.
	Fee *decimal.Decimal
	// Password unlocks the wallet keys when set.
	Password *string
}

// AddRequestRequest carries the arguments of add_request.
type AddRequestRequest struct {
	// Amount requested, serialized as a decimal string.
	Amount decimal.Decimal
	// Memo is an optional note shown with the request.
	Memo *string
}

// ListRequestsRequest carries the state filters of list_requests.
// Only filters set to true are sent; the daemon treats absent filters
// as "do not restrict".
type ListRequestsRequest struct {
	Pending bool
	Expired bool
	Paid    bool
}

// Output is a single recipient of a multi-output payment.
//
// The daemon expects each output as a compact two-element array rather than
// an object, so Output carries custom JSON marshaling:
//
//	["bc1q5dyhfnkuwnzs0c2lrr3g6i7kae4nctrk4u7bcm", "0.00001"]
type Output struct {
	// Address of the recipient.
	Address btc.Address
	// Amount to send to the recipient.
	Amount decimal.Decimal
}

// MarshalJSON encodes the output in the daemon's [address, amount] array
// form, with the amount as a decimal string.
func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{
		o.Address.String(),
		o.Amount.String(),
	})
}

// UnmarshalJSON decodes the [address, amount] array form. Anything other
// than exactly two elements is rejected.
func (o *Output) UnmarshalJSON(data []byte) error {
	var rawArr []json.RawMessage
	if err := json.Unmarshal(data, &rawArr); err != nil {
		return fmt.Errorf("error reading output as array: %w", err)
	}
	if len(rawArr) != 2 {
		return errors.New("invalid output: expected 2 elements in array")
	}

	var addr string
	if err := json.Unmarshal(rawArr[0], &addr); err != nil {
		return fmt.Errorf("invalid output address: %w", err)
	}

	var amount decimal.Decimal
	if err := json.Unmarshal(rawArr[1], &amount); err != nil {
		return fmt.Errorf("invalid output amount: %w", err)
	}

	o.Address = btc.NewAddress(addr)
	o.Amount = amount
	return nil
}
