// Package discordclient is the entry point for building a Discord REST API
// resource tree.
//
// New normalises a discord.Config, picks a token manager (bot token, OAuth2
// bearer token or client credentials), builds the retrying HTTP transport and
// returns the root of the resource tree.
//
// Quick start
//
//	root, err := discordclient.New(ctx, &discord.Config{BotToken: os.Getenv("DISCORD_TOKEN")})
//	if err != nil { log.Fatal(err) }
//
//	var channel map[string]interface{}
//	err = root.Channels().Get(id.NewChannelID(123)).Into(ctx, &channel)
//
// Validated operations return an error before any request exists:
//
//	req, err := root.Guilds().Post("x") // name too short
//	if discord.IsValidation(err) { ... }
package discordclient
