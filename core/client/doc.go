// Package client is the request facade of oaikit. A Client validates a
// symbolic request, sends it on its own goroutine and hands back a
// [future.Future] that resolves once the call, and for images the download
// of every generated image, is complete.
//
// The primary entry point is [New], which accepts functional options such as
// [WithConfiguration], [WithHTTPClient] and [WithObserver]:
//
//	c := client.New(client.WithConfiguration(config.Configuration{APIKey: key}))
//	res, err := c.TextCompletion(ctx, "Say hi", catalog.GPT3).Await(ctx)
//	if err == nil && res.OK() {
//	    fmt.Println(res.Text())
//	}
//
// Keys without a wire string fail before any I/O: the future is already
// resolved with an error matching catalog.ErrUnknownModelKey. Transport
// failures are not errors; they resolve with a response whose Status tells
// what went wrong.
package client
