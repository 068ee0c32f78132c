package redis

// KeyAccount is the key holding one account's JSON document
const KeyAccount = "account:%s"

// Error messages
const (
	ErrMsgConnect       = "failed to connect to redis: %w"
	ErrMsgLoadAccount   = "failed to load account %s: %v"
	ErrMsgSaveAccount   = "failed to save account %s: %v"
	ErrMsgDecodeAccount = "failed to decode account %s: %v"
	ErrMsgEncodeAccount = "failed to encode account %s: %w"
)
