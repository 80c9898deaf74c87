// Package formatting renders schedule data into outbound content.
// Everything here is pure: the state machine uses it for on-demand
// views and the reminder scheduler for proactive reminders.
package formatting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bekzodov/jadval-bot/internal/model"
)

// ChunkBudget is the character budget per outbound message, kept
// strictly below Telegram's 4096 hard limit.
const ChunkBudget = 3800

// DayMessages renders one day's entries into ordered message chunks.
//
// An empty weekday produces a single "no classes" notice. An empty or
// absent weekend day produces nothing: absence of data is not the same
// as confirmed emptiness. Entries are stable-sorted by the parsed
// leading time and packed into header-prefixed chunks under ChunkBudget.
func DayMessages(day string, entries []model.Entry) []string {
	if len(entries) == 0 {
		if model.IsWeekend(day) {
			return nil
		}
		return []string{fmt.Sprintf("📅 %s: darslar mavjud emas.", day)}
	}

	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseTimeToMinutes(sorted[i].Time) < ParseTimeToMinutes(sorted[j].Time)
	})

	header := fmt.Sprintf("📅 %s jadvali:\n\n", day)
	var chunks []string
	chunk := header
	for i, e := range sorted {
		block := formatEntry(i+1, e) + "\n\n"
		if len(chunk)+len(block) > ChunkBudget {
			chunks = append(chunks, strings.TrimSpace(chunk))
			chunk = block
		} else {
			chunk += block
		}
	}
	if s := strings.TrimSpace(chunk); s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}

// formatEntry renders one class as a fixed multi-line block.
func formatEntry(index int, e model.Entry) string {
	lines := []string{fmt.Sprintf("%d. %s | %s", index, e.Time, e.Subject)}

	var location []string
	if e.Building != "" {
		location = append(location, e.Building)
	}
	if e.Room != "" {
		location = append(location, "Xona: "+e.Room)
	}
	if len(location) > 0 {
		lines = append(lines, strings.Join(location, " | "))
	}
	if e.Teacher != "" {
		lines = append(lines, "👨‍🏫 "+e.Teacher)
	}
	return strings.Join(lines, "\n")
}
