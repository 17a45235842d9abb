// Package resource exposes the Discord REST API as a tree of addressing
// handles that mirrors the API's URL hierarchy.
//
// Every handle is a small value holding the shared Transport and the
// identifiers that address it. Child accessors return a new handle one level
// deeper; leaf operations return the *discord.Request built by the Transport.
// Handles never perform I/O, hold no mutable state and may be copied and used
// from any number of goroutines.
//
//	root := resource.NewRoot(transport)
//	messages := root.Channels().Messages(id.NewChannelID(123))
//
//	req := messages.Get(id.NewMessageID(456)) // GET /channels/123/messages/456
//
// Operations whose input can be checked locally return (*discord.Request,
// error). When the error is non-nil it is a *discord.ValidationError and no
// request was built.
package resource
