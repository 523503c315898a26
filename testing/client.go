// Command client is a manual testing tool for the Electrum daemon RPC
// interface. It builds a request envelope from command line flags, prints the
// dispatch plan, and optionally sends the request to a running daemon.
//
// Build the envelope without sending it:
//
//	go run ./testing -method getinfo
//
// Send a payment request against a named daemon profile:
//
//	go run ./testing -profile testnet -method payto \
//	    -params '{"destination":"tb1q...","amount":"0.001"}' -send
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/satworks/electrum-jsonrpc/pkg/rpc"
)

func main() {
	var (
		methodFlag   = flag.String("method", "", "RPC method name (e.g. getinfo, payto)")
		idFlag       = flag.Uint64("id", 0, "Request ID (random when omitted)")
		paramsFlag   = flag.String("params", "{}", "JSON object of wire parameters")
		sendFlag     = flag.Bool("send", false, "Send the request to the daemon")
		serverFlag   = flag.String("server", "http://127.0.0.1:7000", "Daemon URL (or set ELECTRUM_DAEMON_ADDRESS)")
		userFlag     = flag.String("user", "test", "RPC user name")
		passwordFlag = flag.String("password", "test", "RPC password")
		profileFlag  = flag.String("profile", "", "Named daemon entry from daemons.yaml")
		timeoutFlag  = flag.Duration("timeout", 30*time.Second, "Round-trip timeout")
	)

	flag.Parse()

	if addr := os.Getenv("ELECTRUM_DAEMON_ADDRESS"); addr != "" {
		*serverFlag = addr
	}

	if *methodFlag == "" {
		fmt.Println("Error: method is required")
		flag.Usage()
		os.Exit(1)
	}

	target := connection{Address: *serverFlag, User: *userFlag, Password: *passwordFlag}

	var profile *Profile
	if *profileFlag != "" {
		var err error
		profile, err = loadProfile("daemons.yaml", *profileFlag)
		if err != nil {
			log.Fatalf("Error loading profile: %v", err)
		}
		target = profile.connection()
	}

	var params map[string]any
	if err := json.Unmarshal([]byte(*paramsFlag), &params); err != nil {
		log.Fatalf("Error parsing params JSON: %v", err)
	}

	applyProfileDefaults(params, profile, rpc.Method(*methodFlag))

	id := *idFlag
	if id == 0 {
		id = uint64(uuid.New().ID())
	}

	builder := rpc.NewBodyBuilder().
		WithID(id).
		WithMethod(rpc.Method(*methodFlag))
	for key, value := range params {
		builder.WithParam(rpc.Param(key), value)
	}
	body := builder.Build()

	printEnvelope(body, target, *sendFlag)

	if *sendFlag {
		sendRequest(body, target, *timeoutFlag)
	}
}

// applyProfileDefaults fills the amount parameter of payment methods from the
// profile when the caller did not pass one.
func applyProfileDefaults(params map[string]any, profile *Profile, method rpc.Method) {
	if profile == nil || profile.DefaultAmount == nil {
		return
	}
	if method != rpc.PayToMethod && method != rpc.AddRequestMethod {
		return
	}
	if _, ok := params[string(rpc.AmountParam)]; ok {
		return
	}

	params[string(rpc.AmountParam)] = *profile.DefaultAmount
	fmt.Printf("Using profile default amount: %s\n", *profile.DefaultAmount)
}

// printEnvelope shows the request exactly as it would go over the wire, and
// the dispatch plan when the request is not being sent.
func printEnvelope(body rpc.Body, target connection, send bool) {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling envelope: %v", err)
	}

	fmt.Println("\nEnvelope:")
	fmt.Println(string(data))

	if send {
		return
	}

	fmt.Println("\nDescription:")
	fmt.Printf("  Target:  %s (user %s)\n", target.Address, target.User)
	fmt.Printf("  Method:  %s\n", body.Method)
	fmt.Printf("  ID:      %d\n", body.ID)
	if len(body.Params) == 0 {
		fmt.Println("  Params:  none")
	} else {
		fmt.Printf("  Params:  %d\n", len(body.Params))
	}

	fmt.Println("\nTo execute this plan, run with the -send flag")
}

// sendRequest dispatches the envelope to the daemon and pretty-prints the
// decoded response.
func sendRequest(body rpc.Body, target connection, timeout time.Duration) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("Error marshaling body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, target.Address, bytes.NewReader(data))
	if err != nil {
		log.Fatalf("Error building request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(target.User, target.Password)

	caller := rpc.NewHTTPCaller(rpc.HTTPCallerConfig{Timeout: timeout})
	res, err := caller.Call(context.Background(), req)
	if err != nil {
		log.Fatalf("Error sending request: %v", err)
	}

	fmt.Printf("\nHTTP status: %s\n", res.Status)

	response, err := rpc.ReadResponse(res)
	if err != nil {
		log.Fatalf("Error reading response: %v", err)
	}

	if err := response.Err(); err != nil {
		fmt.Printf("\nDaemon error: %v\n", err)
		return
	}

	var result any
	if err := response.Translate(&result); err != nil {
		log.Fatalf("Error decoding result: %v", err)
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling result: %v", err)
	}

	fmt.Println("\nResult:")
	fmt.Println(string(pretty))
}
