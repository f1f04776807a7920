// Package openai is a typed client for the OpenAI REST API.
//
// The [Client] composes the transport in package client with bearer-token
// authentication and error enrichment. Each operation serializes a typed
// payload, performs exactly one HTTP exchange and either decodes the JSON body
// or, for streaming requests, hands back the unread response.
//
//	c, err := openai.New(openai.Config{APIKey: os.Getenv("OPENAI_API_KEY")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mod, err := c.CreateModeration(ctx, openai.Text("hello"), nil)
//
// # Errors
//
// Failures with status 401, 429 or 500 and a well-formed error envelope come
// back as *apierr.APIError; any other non-2xx status is an *apierr.HTTPError.
//
//	var apiErr *apierr.APIError
//	if errors.As(err, &apiErr) {
//	    log.Printf("%s (code=%s)", apiErr, apiErr.Code)
//	}
//
// # Streaming
//
// CreateCompletion and CreateChatCompletion return a [Result]: when the
// request sets Stream the result carries the raw *http.Response, otherwise the
// decoded value. The caller owns (and must close) a streaming body. The
// CreateCompletionStream and CreateChatCompletionStream entry points wrap it
// in a [Stream] that decodes server-sent events.
package openai
