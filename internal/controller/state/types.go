// Package state tracks each user's current conversation flow.
package state

import "github.com/bekzodov/jadval-bot/internal/model"

// Flow is the closed set of conversation states. Exactly one flow is
// active per user; flow-local data lives inside its variant, so
// impossible flag combinations cannot be represented.
type Flow interface{ flow() }

// Idle means no flow is active.
type Idle struct{}

// AwaitingNotifyTime waits for a strict HH:MM reminder time.
type AwaitingNotifyTime struct{}

// AwaitingUpload waits for an xlsx attachment or a spreadsheet link.
type AwaitingUpload struct{}

// AwaitingBroadcast waits for the next inbound message of any media
// kind to forward to all non-admin users.
type AwaitingBroadcast struct{}

// AddStep enumerates the manual-add dialog steps.
type AddStep int

const (
	AddChooseDay AddStep = iota
	AddTime
	AddSubject
	AddRoom
	AddBuilding
	AddTeacher
)

// ManualAdd accumulates a new entry field by field.
type ManualAdd struct {
	Step  AddStep
	Day   string
	Draft model.Entry
}

// RemoveStep enumerates the removal dialog steps.
type RemoveStep int

const (
	RemoveChooseDay RemoveStep = iota
	RemoveChooseItem
)

// Remove tracks the entry-removal dialog.
type Remove struct {
	Step RemoveStep
	Day  string
}

func (Idle) flow()               {}
func (AwaitingNotifyTime) flow() {}
func (AwaitingUpload) flow()     {}
func (AwaitingBroadcast) flow()  {}
func (ManualAdd) flow()          {}
func (Remove) flow()             {}
