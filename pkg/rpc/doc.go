// Package rpc provides a typed JSON-RPC client for the Electrum wallet daemon.
//
// This package wraps the daemon's HTTP endpoint with strongly typed methods,
// parameters, and request envelopes, so wallet operations read as ordinary Go
// calls while the bytes on the wire stay byte-for-byte reproducible.
//
// # Wire Format
//
// Every exchange POSTs one JSON-RPC envelope. The envelope fields are emitted
// in declaration order and the params keys in sorted order, so building the
// same logical request twice produces identical bytes:
//
//	{"json_rpc":2.0,"id":1111,"method":"getinfo","params":{}}
//
// Note the version member: the daemon expects the literal 2.0, which is why
// Version is a json.Number and not a float (a float would render as 2).
//
// Monetary amounts travel as quoted decimal strings, never binary floats:
//
//	{"json_rpc":2.0,"id":7,"method":"payto","params":{"amount":"0.00001","destination":"bc1q..."}}
//
// Transaction outputs encode as [address, amount] pairs:
//
//	"outputs":[["bc1q...","0.00001"],["bc1q...","0.002"]]
//
// # Client Usage
//
// The Client exposes one method per daemon procedure. Methods build the
// envelope, dispatch it, and return the raw *http.Response with the body
// unconsumed:
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
// Optional arguments are pointer fields on the per-method request structs;
// nil fields are omitted from the wire entirely, never sent as null:
//
//	password := "hunter2"
//	res, err := client.LoadWallet(ctx, rpc.LoadWalletRequest{Password: &password})
//
// For collaborators beyond the defaults, construct through NewClient:
//
//	client, err := rpc.NewClient(rpc.ClientConfig{
//	    Login:    "user",
//	    Password: "secret",
//	    Address:  "http://127.0.0.1:7000",
//	    Logger:   logger,
//	    Metrics:  rpc.NewMetrics(),
//	})
//
// # Error Handling
//
// Every failure is wrapped in one of five sentinel errors, so callers branch
// with errors.Is instead of matching message text:
//
//	res, err := client.Broadcast(ctx, rawTx)
//	switch {
//	case errors.Is(err, rpc.ErrSendingRequest):
//	    // transport failure, retry may help
//	case errors.Is(err, rpc.ErrParsingAddress),
//	    errors.Is(err, rpc.ErrMarshalingBody),
//	    errors.Is(err, rpc.ErrBuildingRequest):
//	    // construction failure, retry will not help
//	}
//
// The underlying cause stays in the chain and is reachable with errors.Is
// and errors.As as usual.
//
// # Response Handling
//
// The Client never interprets the JSON-RPC result or error members; that
// belongs to the caller. ReadResponse covers the common case:
//
//	response, err := rpc.ReadResponse(res)
//	if err != nil {
//	    return err
//	}
//	if err := response.Err(); err != nil {
//	    return fmt.Errorf("daemon refused: %w", err)
//	}
//
//	var info GetInfoResult
//	if err := response.Translate(&info); err != nil {
//	    return err
//	}
//
// # Building Envelopes Manually
//
// Tooling that needs an envelope without a Client uses the builder directly:
//
//	body := rpc.NewBodyBuilder().
//	    WithID(1111).
//	    WithMethod(rpc.PayToMethod).
//	    WithParam(rpc.DestinationParam, address).
//	    WithParam(rpc.AmountParam, amount).
//	    Build()
//
//	data, _ := json.Marshal(body)
//
// # Configuration
//
// Config and LoadConfig read connection settings from the environment for
// the integration tests and the manual CLI:
//
//	ELECTRUM_DAEMON_ADDRESS  daemon base address (default http://127.0.0.1:7000)
//	ELECTRUM_USER            RPC user name       (default test)
//	ELECTRUM_PASSWORD        RPC password        (default test)
//
// A .env file in the working directory is loaded first when present. The
// Client constructors never touch the environment.
//
// # Metrics
//
// An optional Metrics value records a Prometheus counter and a duration
// histogram per exchange, labelled by method and HTTP status. Transport
// failures count under the status label "transport_error". A nil Metrics
// disables instrumentation entirely.
//
// # Testing
//
// The package includes a test suite with a stub daemon:
//
//   - body_test.go: envelope formatting, field order, and idempotence
//   - client_test.go: every client method against an httptest server
//   - client_internal_test.go: constructor validation and auth encoding
//   - client_manual_test.go: integration sweep against a live daemon
//
// The manual test runs only when pointed at a real daemon:
//
//	ELECTRUM_MANUAL_TEST=true ELECTRUM_DAEMON_ADDRESS=http://127.0.0.1:7000 go test -run TestManualClient
package rpc
