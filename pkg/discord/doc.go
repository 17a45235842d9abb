// Package discord provides the types shared between the resource tree and the
// transport that issues Discord REST API calls.
//
// # Overview
//
// A Request is a not-yet-executed API operation bound to one Route: the
// operation's name, HTTP method, path template and the identifiers that
// address it. Requests are produced by a Transport, which exposes one factory
// per (resource, action) pair. The resource package wraps a Transport in a tree
// of lightweight handles that mirrors the API's URL hierarchy; most consumers
// should construct that tree with the discordclient package and never touch a
// Transport directly.
//
//	root, err := discordclient.New(ctx, &discord.Config{BotToken: token})
//	if err != nil { log.Fatal(err) }
//
//	var msg map[string]interface{}
//	err = root.Channels().Messages(id.NewChannelID(123)).Get(id.NewMessageID(456)).Into(ctx, &msg)
//
// # Validated operations
//
// Some factories check their input before building a request, for example the
// length of a guild or webhook name. They return (*Request, error); the error is
// always a *ValidationError and no request is built when it is non-nil.
//
//	req, err := root.Channels().Webhooks(channelID).Post("")
//	if discord.IsValidation(err) { /* fix the input */ }
//
// # Errors
//
// Failures reported by the API are returned from Request.Exec as *APIError.
// IsNotFound, IsUnauthorized, IsForbidden and IsRateLimited branch on the
// common cases.
//
// # Interceptors
//
// RequestInterceptor and ResponseInterceptor hooks run around every executed
// request; LoggingInterceptor, LoggingResponseInterceptor and ReasonInterceptor
// cover the usual needs.
package discord
