package model

// Entry is a single class in a day's list. Entries carry no identifier:
// identity within a day is the index in the ordered list, so every
// mutation must keep the order of the remaining entries stable.
type Entry struct {
	Time     string `json:"time"` // free-form, e.g. "09:00" or "09:00-10:20"
	Subject  string `json:"subject"`
	Room     string `json:"room"`
	Building string `json:"building"`
	Teacher  string `json:"teacher"` // optional
}
