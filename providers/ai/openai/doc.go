// Package openai holds the wire shapes of the OpenAI completion, chat and
// image generation endpoints and the Executor that sends them.
//
// Requests carry symbolic catalog keys; encoding them with encoding/json
// emits the wire strings the endpoints expect. Responses carry a transport
// [Result] instead of an error: a call that did not succeed returns a zero
// response whose only populated field is its Status.
//
// [Post] is the single entry point used by the client facade:
//
//	exec := openai.NewExecutor(config.Default())
//	body, _ := openai.NewTextRequest("Say hi", catalog.GPT3).Encode()
//	res := openai.Post[openai.TextResponse](ctx, exec, openai.EndpointCompletions, body)
//	if res.Status == openai.Success {
//	    fmt.Println(res.Text())
//	}
package openai
