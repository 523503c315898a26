package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/satworks/electrum-jsonrpc/pkg/btc"
	"github.com/satworks/electrum-jsonrpc/pkg/log"
)

// Client issues authenticated JSON-RPC requests to an Electrum daemon.
// It exposes one method per remote procedure; every method builds a fresh
// request envelope, POSTs it, and hands back the raw *http.Response with
// the body unconsumed. Interpreting the JSON-RPC result or error member
// is the caller's job (ReadResponse helps with the common case).
//
// A Client is immutable after construction and safe for concurrent use:
// it holds the parsed daemon address and the precomputed Basic auth
// header, nothing per-call.
//
// Example usage:
//
//	client, err := rpc.New("user", "secret", "http://127.0.0.1:7000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.GetBalance(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	body, err := rpc.ReadResponse(res)
type Client struct {
	address    *url.URL
	authHeader string
	caller     Caller
	logger     log.Logger
	metrics    *Metrics
}

// ClientConfig contains the construction options for a Client.
// Login, Password, and Address mirror the daemon's --rpcuser, --rpcpassword,
// and --rpcport settings; the rest are optional collaborators.
type ClientConfig struct {
	// Login is the RPC user name.
	Login string
	// Password is the RPC password.
	Password string
	// Address is the daemon's base address and must be an absolute URI,
	// e.g. "http://127.0.0.1:7000". A bare host:port has no scheme and
	// is rejected.
	Address string

	// Caller dispatches the outgoing requests. Defaults to an HTTPCaller
	// with DefaultHTTPCallerConfig.
	Caller Caller
	// Logger receives a debug entry per exchange. Defaults to the noop
	// logger.
	Logger log.Logger
	// Metrics, when set, records a counter and duration sample per
	// exchange. Nil disables instrumentation.
	Metrics *Metrics
}

// New creates a Client with the default transport and no logging.
// It is the short form of NewClient for the common case.
func New(login, password, address string) (*Client, error) {
	return NewClient(ClientConfig{
		Login:    login,
		Password: password,
		Address:  address,
	})
}

// NewClient creates a Client from the given configuration.
// It fails with ErrParsingAddress when the address is not an absolute URI.
func NewClient(cfg ClientConfig) (*Client, error) {
	address, err := url.Parse(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingAddress, err)
	}
	if address.Scheme == "" || address.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute uri", ErrParsingAddress, cfg.Address)
	}

	if cfg.Caller == nil {
		cfg.Caller = NewHTTPCaller(DefaultHTTPCallerConfig)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(cfg.Login + ":" + cfg.Password))

	return &Client{
		address:    address,
		authHeader: "Basic " + credentials,
		caller:     cfg.Caller,
		logger:     cfg.Logger.WithName("electrum-rpc"),
		metrics:    cfg.Metrics,
	}, nil
}

// GetInfo requests network and daemon status information.
func (c *Client) GetInfo(ctx context.Context) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(GetInfoMethod).
		Build()

	return c.call(ctx, body)
}

// GetBalance requests the loaded wallet's confirmed and unconfirmed balance.
func (c *Client) GetBalance(ctx context.Context) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(GetBalanceMethod).
		Build()

	return c.call(ctx, body)
}

// ListWallets requests the wallets known to the daemon.
func (c *Client) ListWallets(ctx context.Context) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(ListWalletsMethod).
		Build()

	return c.call(ctx, body)
}

// LoadWallet asks the daemon to open a wallet. Both arguments are optional:
// with neither set the daemon opens its default wallet, prompting for no
// password.
//
// Example:
//
//	password := "hunter2"
//	res, err := client.LoadWallet(ctx, rpc.LoadWalletRequest{Password: &password})
func (c *Client) LoadWallet(ctx context.Context, req LoadWalletRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(LoadWalletMethod)
	if req.WalletPath != nil {
		builder.WithParam(WalletPathParam, *req.WalletPath)
	}
	if req.Password != nil {
		builder.WithParam(PasswordParam, *req.Password)
	}

	return c.call(ctx, builder.Build())
}

// CreateWallet asks the daemon to create a new wallet. The response carries
// the generated seed; treat it accordingly.
func (c *Client) CreateWallet(ctx context.Context, req CreateWalletRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(CreateWalletMethod)
	if req.Password != nil {
		builder.WithParam(PasswordParam, *req.Password)
	}

	return c.call(ctx, builder.Build())
}

// RestoreWallet asks the daemon to recreate a wallet from a seed phrase,
// a private key, or a list of addresses.
func (c *Client) RestoreWallet(ctx context.Context, req RestoreWalletRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(RestoreWalletMethod).
		WithParam(TextParam, req.Text)
	if req.Password != nil {
		builder.WithParam(PasswordParam, *req.Password)
	}

	return c.call(ctx, builder.Build())
}

// ListAddresses requests the loaded wallet's receiving addresses.
func (c *Client) ListAddresses(ctx context.Context) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(ListAddressesMethod).
		Build()

	return c.call(ctx, body)
}

// GetAddressHistory requests the transaction history of one address.
func (c *Client) GetAddressHistory(ctx context.Context, address btc.Address) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(GetAddressHistoryMethod).
		WithParam(AddressParam, address).
		Build()

	return c.call(ctx, body)
}

// GetAddressBalance requests the balance of one address.
func (c *Client) GetAddressBalance(ctx context.Context, address btc.Address) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(GetAddressBalanceMethod).
		WithParam(AddressParam, address).
		Build()

	return c.call(ctx, body)
}

// Notify registers a callback URL the daemon invokes whenever the address
// receives or spends funds. A nil URL clears the registration.
func (c *Client) Notify(ctx context.Context, req NotifyRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(NotifyMethod).
		WithParam(AddressParam, req.Address)
	if req.URL != nil {
		builder.WithParam(URLParam, *req.URL)
	}

	return c.call(ctx, builder.Build())
}

// SignTransaction asks the daemon to sign a raw transaction with the loaded
// wallet's keys.
func (c *Client) SignTransaction(ctx context.Context, req SignTransactionRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(SignTransactionMethod).
		WithParam(TxParam, req.Tx)
	if req.Password != nil {
		builder.WithParam(PasswordParam, *req.Password)
	}

	return c.call(ctx, builder.Build())
}

// Broadcast submits a signed raw transaction to the network.
func (c *Client) Broadcast(ctx context.Context, tx string) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(BroadcastMethod).
		WithParam(TxParam, tx).
		Build()

	return c.call(ctx, body)
}

// PayTo creates a transaction paying a single destination. The amount and
// the optional fee go on the wire as decimal strings, never binary floats.
//
// Example:
//
//	res, err := client.PayTo(ctx, rpc.PayToRequest{
//	    Destination: btc.NewAddress("bc1q5dyhfnkuwnzs0c2lrr3g6i7kae4nctrk4u7bcm"),
//	    Amount:      decimal.RequireFromString("0.00001"),
//	})
func (c *Client) PayTo(ctx context.Context, req PayToRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(PayToMethod).
		WithParam(DestinationParam, req.Destination).
		WithParam(AmountParam, req.Amount)
	if req.Fee != nil {
		builder.WithParam(FeeParam, *req.Fee)
	}
	if req.Password != nil {
		builder.WithParam(PasswordParam, *req.Password)
	}

	return c.call(ctx, builder.Build())
}

// PayToMany creates a transaction paying several destinations at once.
// Each output travels as an [address, amount] pair.
func (c *Client) PayToMany(ctx context.Context, req PayToManyRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(PayToManyMethod).
		WithParam(OutputsParam, req.Outputs)
	if req.Fee != nil {
		builder.WithParam(FeeParam, *req.Fee)
	}
	if req.Password != nil {
		builder.WithParam(PasswordParam, *req.Password)
	}

	return c.call(ctx, builder.Build())
}

// AddRequest creates a payment request for the given amount.
func (c *Client) AddRequest(ctx context.Context, req AddRequestRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(AddRequestMethod).
		WithParam(AmountParam, req.Amount)
	if req.Memo != nil {
		builder.WithParam(MemoParam, *req.Memo)
	}

	return c.call(ctx, builder.Build())
}

// ListRequests lists payment requests. Filters set to true restrict the
// listing to that state; absent filters leave the daemon's default in
// effect.
func (c *Client) ListRequests(ctx context.Context, req ListRequestsRequest) (*http.Response, error) {
	builder := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(ListRequestsMethod)
	if req.Pending {
		builder.WithParam(PendingParam, true)
	}
	if req.Expired {
		builder.WithParam(ExpiredParam, true)
	}
	if req.Paid {
		builder.WithParam(PaidParam, true)
	}

	return c.call(ctx, builder.Build())
}

// DeleteRequest removes the payment request bound to an address.
func (c *Client) DeleteRequest(ctx context.Context, address btc.Address) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(DeleteRequestMethod).
		WithParam(AddressParam, address).
		Build()

	return c.call(ctx, body)
}

// CloseWallet closes the currently loaded wallet.
func (c *Client) CloseWallet(ctx context.Context) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(CloseWalletMethod).
		Build()

	return c.call(ctx, body)
}

// Help requests the list of commands the daemon accepts.
func (c *Client) Help(ctx context.Context) (*http.Response, error) {
	body := NewBodyBuilder().
		WithID(newRequestID()).
		WithMethod(HelpMethod).
		Build()

	return c.call(ctx, body)
}

// call serializes the envelope, dispatches it, and returns the raw
// response. Each failure is wrapped in its category sentinel; the response
// body is never touched here.
func (c *Client) call(ctx context.Context, body Body) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshalingBody, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.address.String(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	started := time.Now()
	res, err := c.caller.Call(ctx, req)
	elapsed := time.Since(started)
	if err != nil {
		c.metrics.recordRequest(body.Method, 0, elapsed)
		return nil, fmt.Errorf("%w: %w", ErrSendingRequest, err)
	}

	c.metrics.recordRequest(body.Method, res.StatusCode, elapsed)
	c.logger.Debug("request dispatched",
		"method", body.Method,
		"id", body.ID,
		"status", res.StatusCode,
		"elapsed", elapsed)

	return res, nil
}

// newRequestID generates a request identifier for correlating a response
// with its request in logs and captures.
func newRequestID() uint64 {
	return uint64(uuid.New().ID())
}
