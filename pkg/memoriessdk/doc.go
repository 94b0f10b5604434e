/*
Package memoriessdk is a Go client for the memorylane HTTP API.

Sessions are cookie based: the client keeps a cookie jar, so after a
successful Login every later call carries the session cookie the server set.

	client, err := memoriessdk.NewSDKClient("http://localhost:4000")
	if err != nil {
		return err
	}

	login, err := client.Login(ctx, "admin@test.com", "AdminSecure2025!")
	if err != nil {
		var apiErr *memoriessdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			time.Sleep(apiErr.RetryAfter)
		}
		return err
	}

	status, err := client.Status(ctx)
	memories, err := client.ListMyMemories(ctx)

Call Logout to clear the session on both ends.

The response types in this package are also the wire models of the server,
so they are what the swagger documentation refers to.
*/
package memoriessdk
