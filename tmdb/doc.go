// Package tmdb provides a client for interacting with TheMovieDB API.
//
// The package implements a thin, typed wrapper over the TMDb v3 REST
// endpoints: authenticated URL construction, JSON request/response mapping,
// and a single structured error type. It deliberately adds no policy of its
// own - no retries, no rate limiting, no caching.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client holding the key, base URL, and HTTP capability
//   - Types: value objects mirroring the remote JSON shapes
//   - API: interface definition for testability and modularity
//   - Error: the single error taxonomy with kind classification
//
// Every endpoint method is the same composition: build URL, perform one
// round trip, map the response. The mapper tolerates unknown JSON fields -
// TMDb versions its API independently of clients and adds fields routinely -
// logging them at warn level instead of failing the decode.
//
// # Usage
//
// Create a new client with your TMDb API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := tmdb.NewClient("your-api-key", logger,
//		tmdb.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	list, err := client.GetList(ctx, "509ec17b19c2950a0600050d")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Mutating operations (create/add/remove/delete list) require a session id
// obtained through the authentication flow:
//
//	token, _ := client.GetRequestToken(ctx)
//	// ... user approves the token at themoviedb.org ...
//	session, _ := client.GetSessionToken(ctx, token.Token)
//	status, _ := client.CreateList(ctx, session.SessionID, "Watchlist", "")
//
// # Error Handling
//
// All failures surface as *Error with a Kind field:
//
//   - KindConnectionFailed: the request never completed
//   - KindHTTPError: a non-2xx HTTP response, body attached
//   - KindMappingFailed: the response could not be decoded, raw text attached
//   - KindInvalidURL: the request URL could not be built
//
// Mapping failures carry the exact payload that failed:
//
//	var apiErr *tmdb.Error
//	if errors.As(err, &apiErr) && apiErr.IsMappingFailed() {
//		log.Printf("bad payload: %s", apiErr.Response)
//	}
//
// # Concurrency
//
// A Client holds no mutable state across calls; a single instance may be
// shared freely between goroutines. The underlying *http.Client is treated
// as an externally owned capability and is never mutated.
package tmdb
