// Package authclient exchanges user credentials for a bearer token over
// HTTP.
//
// A Client posts a JSON body with username and password to a configured
// login endpoint. A 2xx response body IS the token, returned verbatim (a
// trailing newline is tolerated); any non-2xx response or network failure
// surfaces as ErrAuthenticationFailed with the server-provided detail
// passed through uninterpreted.
//
// There is deliberately no retry, no token refresh, and no response-body
// schema beyond "the body is the token". Cancellation is the caller's
// context; an abandoned call's result is simply discarded.
//
// # Usage
//
//	client, err := authclient.New("https://api.example.com/login")
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := client.Login(ctx, authclient.Credentials{
//	    Username: "jane",
//	    Password: "s3cret",
//	})
package authclient
