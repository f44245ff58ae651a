package scan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NYJC-Edtech/psutils/internal/fault"
)

var photoExts = []string{".jpg", ".jpeg", ".png"}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func names(files []Candidate) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestCandidatesSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "img2.jpg", "img1.png", "img3.jpeg")

	files, err := Candidates(dir, photoExts)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	got := names(files)
	want := []string{"img1.png", "img2.jpg", "img3.jpeg"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if files[0].Extension != ".png" {
		t.Errorf("Extension = %q, want .png", files[0].Extension)
	}
	if files[0].AbsolutePath != filepath.Join(dir, "img1.png") {
		t.Errorf("AbsolutePath = %q", files[0].AbsolutePath)
	}
}

func TestCandidatesEmptyDir(t *testing.T) {
	_, err := Candidates(t.TempDir(), photoExts)
	var ve *fault.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(ve.Error(), "no files") {
		t.Errorf("message = %q, want no-files wording", ve.Error())
	}
}

func TestCandidatesNamesEveryOffender(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "img1.png", "notes.txt", "report.pdf")

	_, err := Candidates(dir, photoExts)
	var ve *fault.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Details) != 2 {
		t.Fatalf("Details = %v, want both offenders", ve.Details)
	}
	for _, want := range []string{"notes.txt", "report.pdf"} {
		if !strings.Contains(ve.Error(), want) {
			t.Errorf("message %q missing offender %q", ve.Error(), want)
		}
	}
}

func TestCandidatesSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "img1.png")
	if err := os.Mkdir(filepath.Join(dir, "photo_backup"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := Candidates(dir, photoExts)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %v, directories must be skipped", names(files))
	}
}

func TestCandidatesSkipsNamedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "img1.png", "rename_manifest.csv")

	files, err := Candidates(dir, photoExts, "rename_manifest.csv")
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(files) != 1 || files[0].Name != "img1.png" {
		t.Errorf("got %v, manifest must be excluded", names(files))
	}
}

func TestCandidatesExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "IMG1.JPG")

	files, err := Candidates(dir, photoExts)
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	// Matching is case-insensitive but the original extension is preserved.
	if files[0].Extension != ".JPG" {
		t.Errorf("Extension = %q, want .JPG preserved", files[0].Extension)
	}
}
