package formatting

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/bekzodov/jadval-bot/internal/model"
)

func TestWeekImageProducesValidPNG(t *testing.T) {
	week := model.NewWeek()
	week["Dushanba"] = []model.Entry{
		{Time: "09:00-10:20", Subject: "Matematika", Room: "204", Building: "A bino", Teacher: "B. Aliyeva"},
		{Time: "11:00-12:20", Subject: "Fizika"},
	}
	week["Shanba"] = []model.Entry{{Time: "10:00", Subject: "Sport"}}

	data, err := WeekImage(week, "Dushanba")
	if err != nil {
		t.Fatalf("WeekImage: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != imageWidth || bounds.Dy() != imageHeight {
		t.Fatalf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), imageWidth, imageHeight)
	}
}

func TestWeekImageHandlesEmptyWeek(t *testing.T) {
	if _, err := WeekImage(model.NewWeek(), "Juma"); err != nil {
		t.Fatalf("WeekImage on empty week: %v", err)
	}
}
