package rpc

import "fmt"

// Every failure in this package belongs to exactly one of these categories.
// Causes are chained with %w, so callers can branch with errors.Is on the
// category and still unwrap the underlying error.
var (
	// Construction errors
	ErrParsingAddress = fmt.Errorf("error parsing daemon address")

	// Request encoding errors
	ErrMarshalingBody  = fmt.Errorf("error marshaling request body")
	ErrBuildingRequest = fmt.Errorf("error building http request")

	// Transport errors
	ErrSendingRequest = fmt.Errorf("error sending http request")

	// Response errors
	ErrReadingResponse = fmt.Errorf("error reading response body")
)
