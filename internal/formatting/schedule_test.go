package formatting

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bekzodov/jadval-bot/internal/model"
)

func TestDayMessagesEmptyWeekday(t *testing.T) {
	got := DayMessages("Dushanba", nil)
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	if !strings.Contains(got[0], "darslar mavjud emas") {
		t.Fatalf("unexpected notice: %q", got[0])
	}
}

func TestDayMessagesEmptyWeekendProducesNothing(t *testing.T) {
	if got := DayMessages("Shanba", nil); got != nil {
		t.Fatalf("empty weekend rendered %d messages", len(got))
	}
	if got := DayMessages("Yakshanba", []model.Entry{}); got != nil {
		t.Fatalf("empty weekend rendered %d messages", len(got))
	}
}

func TestDayMessagesOrdering(t *testing.T) {
	entries := []model.Entry{
		{Time: "14:00-15:20", Subject: "Fizika"},
		{Time: "9:00-10:20", Subject: "Matematika"},
		{Time: "11:00-12:20", Subject: "Tarix"},
	}
	got := DayMessages("Seshanba", entries)
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	text := got[0]
	a := strings.Index(text, "Matematika")
	b := strings.Index(text, "Tarix")
	c := strings.Index(text, "Fizika")
	if a < 0 || b < 0 || c < 0 || !(a < b && b < c) {
		t.Fatalf("entries not in time order:\n%s", text)
	}
	if !strings.HasPrefix(text, "📅 Seshanba jadvali:") {
		t.Fatalf("missing day header:\n%s", text)
	}
}

func TestDayMessagesUnparsableTimeKeepsInputOrder(t *testing.T) {
	entries := []model.Entry{
		{Time: "keyin", Subject: "Birinchi"},
		{Time: "noma'lum", Subject: "Ikkinchi"},
	}
	got := DayMessages("Chorshanba", entries)
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	if strings.Index(got[0], "Birinchi") > strings.Index(got[0], "Ikkinchi") {
		t.Fatalf("stable sort broke input order:\n%s", got[0])
	}
}

func TestDayMessagesChunking(t *testing.T) {
	var entries []model.Entry
	for i := 0; i < 120; i++ {
		entries = append(entries, model.Entry{
			Time:     fmt.Sprintf("%02d:%02d", i/60, i%60),
			Subject:  strings.Repeat("uzun fan nomi ", 5),
			Room:     "101",
			Building: "Bosh bino",
			Teacher:  "A. Karimov",
		})
	}
	got := DayMessages("Payshanba", entries)
	if len(got) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(got))
	}
	for i, chunk := range got {
		if len(chunk) > ChunkBudget {
			t.Fatalf("chunk %d is %d chars, budget is %d", i, len(chunk), ChunkBudget)
		}
	}
	joined := strings.Join(got, "\n")
	for i := 1; i <= len(entries); i++ {
		marker := fmt.Sprintf("%d. ", i)
		if !strings.Contains(joined, marker) {
			t.Fatalf("entry %d missing from chunked output", i)
		}
	}
}

func TestFormatEntryOptionalFields(t *testing.T) {
	full := formatEntry(1, model.Entry{
		Time: "09:00-10:20", Subject: "Matematika",
		Room: "204", Building: "A bino", Teacher: "B. Aliyeva",
	})
	if !strings.Contains(full, "A bino | Xona: 204") {
		t.Fatalf("location line wrong:\n%s", full)
	}
	if !strings.Contains(full, "👨‍🏫 B. Aliyeva") {
		t.Fatalf("teacher line missing:\n%s", full)
	}

	bare := formatEntry(2, model.Entry{Time: "11:00", Subject: "Tarix"})
	if strings.Contains(bare, "Xona") || strings.Contains(bare, "👨‍🏫") {
		t.Fatalf("optional lines rendered for empty fields:\n%s", bare)
	}
	if bare != "2. 11:00 | Tarix" {
		t.Fatalf("bare entry = %q", bare)
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	cases := map[string]int{
		"9:00-10:20":  540,
		"09.05":       545,
		"23:59":       1439,
		"14:00":       840,
		"hech narsa": 0,
		// "25:00" has no valid hour, but the scan finds "5:00" inside.
		"25:00-26:00": 300,
	}
	for in, want := range cases {
		if got := ParseTimeToMinutes(in); got != want {
			t.Fatalf("ParseTimeToMinutes(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestValidEntryTime(t *testing.T) {
	for _, ok := range []string{"12:00-13:20", "9:05", "09.30"} {
		if !ValidEntryTime(ok) {
			t.Fatalf("ValidEntryTime(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "ertalab", "2500"} {
		if ValidEntryTime(bad) {
			t.Fatalf("ValidEntryTime(%q) = true", bad)
		}
	}
}
