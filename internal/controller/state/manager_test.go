package state

import (
	"testing"

	"github.com/bekzodov/jadval-bot/internal/model"
)

func TestGetDefaultsToIdle(t *testing.T) {
	m := NewManager()
	if _, ok := m.Get(1).(Idle); !ok {
		t.Fatalf("fresh manager Get = %T, want Idle", m.Get(1))
	}
}

func TestSetAndGetCarriesFlowData(t *testing.T) {
	m := NewManager()
	m.Set(1, ManualAdd{
		Step:  AddSubject,
		Day:   "Juma",
		Draft: model.Entry{Time: "09:00-10:20"},
	})

	flow, ok := m.Get(1).(ManualAdd)
	if !ok {
		t.Fatalf("Get = %T, want ManualAdd", m.Get(1))
	}
	if flow.Step != AddSubject || flow.Day != "Juma" || flow.Draft.Time != "09:00-10:20" {
		t.Fatalf("flow = %+v", flow)
	}
}

func TestFlowsAreIndependentPerUser(t *testing.T) {
	m := NewManager()
	m.Set(1, AwaitingNotifyTime{})
	m.Set(2, AwaitingUpload{})

	if _, ok := m.Get(1).(AwaitingNotifyTime); !ok {
		t.Fatalf("user 1 flow = %T", m.Get(1))
	}
	if _, ok := m.Get(2).(AwaitingUpload); !ok {
		t.Fatalf("user 2 flow = %T", m.Get(2))
	}
	if _, ok := m.Get(3).(Idle); !ok {
		t.Fatalf("user 3 flow = %T", m.Get(3))
	}
}

func TestClearReturnsToIdle(t *testing.T) {
	m := NewManager()
	m.Set(1, Remove{Step: RemoveChooseItem, Day: "Shanba"})
	m.Clear(1)
	m.Clear(1)

	if _, ok := m.Get(1).(Idle); !ok {
		t.Fatalf("after Clear, Get = %T", m.Get(1))
	}
}

func TestSettingIdleDropsRecord(t *testing.T) {
	m := NewManager()
	m.Set(1, AwaitingBroadcast{})
	m.Set(1, Idle{})

	if _, ok := m.Get(1).(Idle); !ok {
		t.Fatalf("after Set(Idle), Get = %T", m.Get(1))
	}
}
