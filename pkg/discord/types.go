package discord

import (
	"strconv"

	"github.com/fivetwenty-io/discord-resource/pkg/id"
)

// ReactionType is the emoji a reaction operation targets: either a unicode
// emoji or a custom guild emoji.
type ReactionType struct {
	name   string
	id     id.EmojiID
	custom bool
}

// UnicodeReaction targets a unicode emoji such as "👍".
func UnicodeReaction(emoji string) ReactionType {
	return ReactionType{name: emoji}
}

// CustomReaction targets a custom guild emoji.
func CustomReaction(name string, emojiID id.EmojiID) ReactionType {
	return ReactionType{name: name, id: emojiID, custom: true}
}

// Name returns the unicode emoji or the custom emoji's name.
func (r ReactionType) Name() string { return r.name }

// EmojiID returns the custom emoji's identifier; zero for unicode reactions.
func (r ReactionType) EmojiID() id.EmojiID { return r.id }

// IsCustom reports whether this is a custom emoji.
func (r ReactionType) IsCustom() bool { return r.custom }

// String renders the emoji the way the reactions endpoints expect it.
func (r ReactionType) String() string {
	if r.custom {
		return r.name + ":" + r.id.String()
	}

	return r.name
}

// OverwriteKind says whether a permission overwrite applies to a role or a member.
type OverwriteKind int

// Overwrite kinds, numbered as the API numbers them.
const (
	OverwriteRole   OverwriteKind = 0
	OverwriteMember OverwriteKind = 1
)

// OverwriteTarget is the role or member a channel permission overwrite applies to.
type OverwriteTarget struct {
	kind OverwriteKind
	id   uint64
}

// RoleTarget targets a role.
func RoleTarget(roleID id.RoleID) OverwriteTarget {
	return OverwriteTarget{kind: OverwriteRole, id: roleID.Uint64()}
}

// MemberTarget targets a guild member.
func MemberTarget(userID id.UserID) OverwriteTarget {
	return OverwriteTarget{kind: OverwriteMember, id: userID.Uint64()}
}

// Kind returns the target kind.
func (t OverwriteTarget) Kind() OverwriteKind { return t.kind }

// String renders the target's snowflake.
func (t OverwriteTarget) String() string { return strconv.FormatUint(t.id, 10) }

// Permissions is a permission bitfield.
type Permissions uint64

// String renders the bitfield as the API's decimal string.
func (p Permissions) String() string { return strconv.FormatUint(uint64(p), 10) }

// PermissionOverwrite allows and denies permissions for one role or member.
type PermissionOverwrite struct {
	Target OverwriteTarget
	Allow  Permissions
	Deny   Permissions
}

// ChannelPosition moves a guild channel.
type ChannelPosition struct {
	ID       id.ChannelID `json:"id"`
	Position int          `json:"position"`
}

// RolePosition moves a guild role.
type RolePosition struct {
	ID       id.RoleID `json:"id"`
	Position int       `json:"position"`
}
