package model

// User is one registered chat. Administrator status is never stored
// here; it is a membership check against the configured admin id set.
type User struct {
	ChatID     int64  `json:"-"`
	NotifyTime string `json:"notifyTime"` // "HH:MM" local wall-clock time
}
