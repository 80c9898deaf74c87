package model

// BroadcastKind is the media kind of a captured broadcast payload.
type BroadcastKind string

const (
	BroadcastText     BroadcastKind = "text"
	BroadcastPhoto    BroadcastKind = "photo"
	BroadcastVideo    BroadcastKind = "video"
	BroadcastDocument BroadcastKind = "document"
	BroadcastAudio    BroadcastKind = "audio"
	BroadcastVoice    BroadcastKind = "voice"
)

// Broadcast is an admin message forwarded to every registered
// non-admin user. Media kinds are re-sent by Telegram file id.
type Broadcast struct {
	Kind    BroadcastKind
	Text    string // BroadcastText only
	FileID  string // all media kinds
	Caption string
}
