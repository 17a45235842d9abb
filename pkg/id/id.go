// Package id defines the typed identifiers used to address Discord resources.
//
// Every resource kind owns its own identifier type. Although most of them share
// the same underlying snowflake representation, a ChannelID can never be passed
// where a GuildID is expected without an explicit conversion, so mixing up
// identifiers is a compile-time error rather than a runtime surprise.
package id

import "strconv"

// ChannelID identifies a channel.
type ChannelID uint64

// GuildID identifies a guild.
type GuildID uint64

// MessageID identifies a message.
type MessageID uint64

// UserID identifies a user.
type UserID uint64

// RoleID identifies a guild role.
type RoleID uint64

// WebhookID identifies a webhook.
type WebhookID uint64

// EmojiID identifies a custom guild emoji.
type EmojiID uint64

// IntegrationID identifies a guild integration.
type IntegrationID uint64

// NewChannelID creates a channel identifier from a raw snowflake.
func NewChannelID(v uint64) ChannelID { return ChannelID(v) }

// NewGuildID creates a guild identifier from a raw snowflake.
func NewGuildID(v uint64) GuildID { return GuildID(v) }

// NewMessageID creates a message identifier from a raw snowflake.
func NewMessageID(v uint64) MessageID { return MessageID(v) }

// NewUserID creates a user identifier from a raw snowflake.
func NewUserID(v uint64) UserID { return UserID(v) }

// NewRoleID creates a role identifier from a raw snowflake.
func NewRoleID(v uint64) RoleID { return RoleID(v) }

// NewWebhookID creates a webhook identifier from a raw snowflake.
func NewWebhookID(v uint64) WebhookID { return WebhookID(v) }

// NewEmojiID creates an emoji identifier from a raw snowflake.
func NewEmojiID(v uint64) EmojiID { return EmojiID(v) }

// NewIntegrationID creates an integration identifier from a raw snowflake.
func NewIntegrationID(v uint64) IntegrationID { return IntegrationID(v) }

// Uint64 returns the raw snowflake.
func (i ChannelID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i ChannelID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i ChannelID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i GuildID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i GuildID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i GuildID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i MessageID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i MessageID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i MessageID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i UserID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i UserID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i UserID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i RoleID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i RoleID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i RoleID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i WebhookID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i WebhookID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i WebhookID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i EmojiID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i EmojiID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i EmojiID) IsZero() bool { return i == 0 }

// Uint64 returns the raw snowflake.
func (i IntegrationID) Uint64() uint64 { return uint64(i) }

// String renders the snowflake as a path segment.
func (i IntegrationID) String() string { return strconv.FormatUint(uint64(i), 10) }

// IsZero reports whether the identifier is unset.
func (i IntegrationID) IsZero() bool { return i == 0 }
