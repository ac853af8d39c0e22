// Package apiclient is the typed HTTP client for the CastList platform API.
// It covers the endpoints the client applications consume: authentication,
// the community feed (posts, likes, comments, file uploads), actor profiles,
// worksheet downloads and industry news.
//
// The client holds the opaque bearer token issued at login and attaches it
// to every request. It never decodes or validates the token; presence is its
// only client-side meaning.
//
// Every response is normalized before it reaches callers: non-2xx statuses
// become *APIError carrying the backend's detail message, and the common
// failure mode of a proxy or dev server answering with an HTML page where
// JSON was expected is detected and reported as ErrHTMLResponse with a
// usable diagnostic instead of a raw decode error.
//
//	var cfg apiclient.Config
//	_ = config.Load(&cfg)
//	api := apiclient.New(cfg)
//
//	if _, err := api.Login(ctx, email, password); err != nil {
//	    // credentials rejected, backend unreachable, or HTML error page
//	}
//	me, err := api.Me(ctx)
package apiclient
