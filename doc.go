// Package withings is a typed client for the Withings Health API.
//
// The client performs the OAuth2 authorization-code flow, refreshes tokens
// transparently, and converts the loosely-typed JSON every endpoint returns
// into immutable domain records. Server-sent categorical codes the library
// does not recognize degrade to explicit Unknown enum members instead of
// failing, so new device models or measure types never break parsing.
//
// Typical use:
//
//	auth := withings.NewAuth(clientID, secret, redirectURL, []withings.AuthScope{withings.AuthScopeUserMetrics})
//	// send the user to auth.AuthorizeURL(state), receive code on the callback
//	creds, err := auth.GetCredentials(ctx, code)
//
//	source := withings.NewCredentialsSource(creds, persist)
//	client := withings.New(source)
//	meas, err := client.Measure.GetMeas(ctx, nil)
//	weight, ok := withings.GetMeasureValue(meas, withings.MeasureTypeWeight, nil)
package withings
