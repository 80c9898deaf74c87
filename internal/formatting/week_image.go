package formatting

import (
	"bytes"
	"fmt"
	"image/color"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/bekzodov/jadval-bot/internal/model"
)

// Layout constants for the weekly grid.
const (
	imageWidth   = 1400
	imageHeight  = 900
	headerHeight = 70
	dayPaddingX  = 10
	linePitch    = 16.0
	blockGap     = 10.0
)

// Colour scheme, muted like a printed timetable.
var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	headerColor   = color.RGBA{80, 85, 90, 255}
	evenDayColor  = color.NRGBA{240, 240, 240, 255}
	oddDayColor   = color.NRGBA{224, 226, 230, 255}
	todayBgColor  = color.NRGBA{255, 228, 196, 255}
	entryColor    = color.RGBA{20, 24, 28, 230}
	subtextColor  = color.RGBA{110, 115, 120, 255}
	columnBorder  = color.NRGBA{150, 150, 150, 120}
	noClassesGrey = color.RGBA{158, 158, 158, 255}
)

// WeekImage renders the week as a PNG grid, one column per canonical
// day, highlighting today's column. Days without data render an empty
// column; empty weekdays render a "-" marker.
func WeekImage(week model.Week, today string) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	colWidth := float64(imageWidth) / float64(len(model.Days))

	for i, day := range model.Days {
		x := float64(i) * colWidth

		colBg := evenDayColor
		if i%2 == 1 {
			colBg = oddDayColor
		}
		if day == today {
			colBg = todayBgColor
		}
		dc.SetColor(colBg)
		dc.DrawRectangle(x, headerHeight, colWidth, imageHeight-headerHeight)
		dc.Fill()

		dc.SetColor(columnBorder)
		dc.DrawLine(x, 0, x, imageHeight)
		dc.Stroke()

		dc.SetColor(headerColor)
		dc.DrawStringAnchored(day, x+colWidth/2, headerHeight/2, 0.5, 0.5)

		drawDayColumn(dc, week, day, x+dayPaddingX, colWidth-2*dayPaddingX)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawDayColumn(dc *gg.Context, week model.Week, day string, x, width float64) {
	entries, present := week[day]
	if len(entries) == 0 {
		if present && !model.IsWeekend(day) {
			dc.SetColor(noClassesGrey)
			dc.DrawString("-", x, headerHeight+linePitch*2)
		}
		return
	}

	sorted := make([]model.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseTimeToMinutes(sorted[i].Time) < ParseTimeToMinutes(sorted[j].Time)
	})

	y := float64(headerHeight) + linePitch*1.5
	for idx, e := range sorted {
		if y > imageHeight-linePitch*3 {
			dc.SetColor(subtextColor)
			dc.DrawString("...", x, y)
			return
		}
		dc.SetColor(entryColor)
		dc.DrawString(fit(fmt.Sprintf("%d. %s", idx+1, e.Time), width), x, y)
		y += linePitch
		dc.DrawString(fit(e.Subject, width), x, y)
		y += linePitch
		if e.Room != "" || e.Building != "" {
			dc.SetColor(subtextColor)
			dc.DrawString(fit(e.Building+" "+e.Room, width), x, y)
			y += linePitch
		}
		y += blockGap
	}
}

// fit truncates s to the column width for the fixed 7px glyph face.
// The face covers only Latin-1, so the truncation marker stays ASCII.
func fit(s string, width float64) string {
	max := int(width / 7)
	if max < 1 || len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "~"
}
