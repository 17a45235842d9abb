package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured  = errors.New("no token configured, use 'dres login' or --token")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidConfigValue = errors.New("invalid configuration value")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrEmptyTokenProvided = errors.New("empty token provided")
)

// Argument errors.
var (
	ErrEmojiAndCustomEmoji = errors.New("use either --emoji or --custom-emoji, not both")
	ErrEmojiRequired       = errors.New("--emoji or --custom-emoji is required")
	ErrInvalidCustomEmoji  = errors.New("custom emoji must be NAME:ID")
)
