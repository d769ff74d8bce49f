// Package petite serves small HTML applications from a router that decides on path segments and handlers that
// return values instead of writing responses.
//
// # Overview
//
// A request goes through two phases. First a [Router] looks at the decoded path segments and either answers
// the request itself, or selects a handler. Only when a handler is selected is the query string parsed, into a
// parameter type the handler defines. The handler returns a [Result] or an error, and the server translates
// that into the HTTP response.
//
// A minimal example:
//
//	type GreetParams struct{ Name string }
//
//	func (p *GreetParams) Collect(key, value string) {
//	    if key == "name" {
//	        p.Name = value
//	    }
//	}
//
//	mux := petite.NewMux()
//	mux.Index(petite.Redirect{Path: "greet"})
//	mux.Delegate("greet", petite.HandleGet[GreetParams](petite.GetHandlerFunc[GreetParams](
//	    func(ctx context.Context, path []string, p GreetParams) (petite.Result, error) {
//	        return petite.HTML{Body: markup.NewTemplate(`<p>Hello {name}</p>`,
//	            markup.Bind("name", markup.Text(p.Name)))}, nil
//	    })))
//
//	srv := petite.NewServer(mux, baseURL)
//	http.ListenAndServe("localhost:8080", srv)
//
// # Routing
//
// [Router.Route] returns a [Decision]. [Resolve] and [Fail] answer the request directly, [Delegate] hands it to
// a [Dispatcher] together with the segments the router did not consume. [Decision.Dispatch] finishes the
// request: it is where the query string is parsed, and it only ever lets GET requests through.
//
// Handlers implement [GetHandler] for their own parameter type P, where *P implements [Collector].
// [HandleGet] turns such a handler into a [Dispatcher]. [Values] is available for handlers that are happy with
// a plain map.
//
// [Mux] covers the common case of routing on the leading segment. Anything more involved is a [RouterFunc].
//
// # Results and errors
//
// Handlers return one of [File], [HTML], [Chars], [Bytes] or [Redirect]. HTML bodies are built with package
// markup, which entity-encodes every value that is not explicitly marked as a literal.
//
// Errors are classified by [CodeOf]:
//
//   - [Invalid] and other [CodeInvalid] errors produce 400 "Invalid request"
//   - [NotFound] and other [CodeNotFound] errors produce 404 "Not found"
//   - every other error, including template errors, is logged and produces 500 "Server error"
//
// The text of an error is never sent to the client.
//
// # Buffered responses
//
// The response is staged in a [ResponseWriter] before it is sent. When rendering fails half-way the buffer is
// reset and replaced by the error response, so the client never sees a partial page. A buffer limit can be set
// with [NewServerWith].
//
// # Concurrency
//
// [Server] handles one request at a time. State owned by the router, such as a registry that handlers
// update, can therefore be used without further locking. A handler that blocks stalls the server.
package petite
