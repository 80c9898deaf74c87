package ingest

import (
	"errors"
	"testing"
)

func TestExportURL(t *testing.T) {
	got, err := ExportURL("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0")
	if err != nil {
		t.Fatalf("ExportURL: %v", err)
	}
	want := "https://docs.google.com/spreadsheets/d/1AbC-d_9/export?format=xlsx"
	if got != want {
		t.Fatalf("ExportURL = %q, want %q", got, want)
	}
}

func TestExportURLCarriesGid(t *testing.T) {
	got, err := ExportURL("https://docs.google.com/spreadsheets/d/1AbC/edit?gid=421#something")
	if err != nil {
		t.Fatalf("ExportURL: %v", err)
	}
	want := "https://docs.google.com/spreadsheets/d/1AbC/export?format=xlsx&gid=421"
	if got != want {
		t.Fatalf("ExportURL = %q, want %q", got, want)
	}
}

func TestExportURLRejectsLinkWithoutID(t *testing.T) {
	for _, raw := range []string{
		"https://docs.google.com/spreadsheets/",
		"https://example.com/file.xlsx",
		"not a url at all",
	} {
		if _, err := ExportURL(raw); !errors.Is(err, ErrBadSheetURL) {
			t.Fatalf("ExportURL(%q) = %v, want ErrBadSheetURL", raw, err)
		}
	}
}
