package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NYJC-Edtech/psutils/internal/plan"
)

func mapping(dir, oldName, newName string) plan.Mapping {
	return plan.Mapping{
		OldName: oldName,
		NewName: newName,
		OldPath: filepath.Join(dir, oldName),
		NewPath: filepath.Join(dir, newName),
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestApplyRenamesAll(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "img1.png"))
	touch(t, filepath.Join(dir, "img2.jpg"))

	res := Apply([]plan.Mapping{
		mapping(dir, "img1.png", "7A_Ann Lee.png"),
		mapping(dir, "img2.jpg", "7A_Ben Ng.jpg"),
	})

	if res.SuccessCount() != 2 || res.ErrorCount() != 0 {
		t.Fatalf("success=%d errors=%d", res.SuccessCount(), res.ErrorCount())
	}
	for _, name := range []string{"7A_Ann Lee.png", "7A_Ben Ng.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestApplyContinuesPastItemFailure(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "img2.jpg"))
	// img1.png does not exist, so its rename fails.

	res := Apply([]plan.Mapping{
		mapping(dir, "img1.png", "7A_Ann Lee.png"),
		mapping(dir, "img2.jpg", "7A_Ben Ng.jpg"),
	})

	if res.SuccessCount() != 1 {
		t.Errorf("success = %d, want 1", res.SuccessCount())
	}
	if res.ErrorCount() != 1 {
		t.Fatalf("errors = %d, want 1", res.ErrorCount())
	}
	if res.Errors[0].Name != "img1.png" {
		t.Errorf("failing item = %q, want img1.png", res.Errors[0].Name)
	}
	if len(res.Applied) != 1 || res.Applied[0].OldName != "img2.jpg" {
		t.Errorf("Applied = %+v, want only the successful item", res.Applied)
	}
}

func TestRevertRestoresOriginals(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "7A_Ann Lee.png"))
	touch(t, filepath.Join(dir, "7A_Ben Ng.jpg"))

	res := Revert([]plan.Mapping{
		mapping(dir, "img1.png", "7A_Ann Lee.png"),
		mapping(dir, "img2.jpg", "7A_Ben Ng.jpg"),
	}, nil)

	if res.SuccessCount() != 2 || res.ErrorCount() != 0 || res.Skipped != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	for _, name := range []string{"img1.png", "img2.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s restored: %v", name, err)
		}
	}
}

func TestRevertSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "7A_Ben Ng.jpg"))
	// 7A_Ann Lee.png was already restored by hand.

	var warned []string
	res := Revert([]plan.Mapping{
		mapping(dir, "img1.png", "7A_Ann Lee.png"),
		mapping(dir, "img2.jpg", "7A_Ben Ng.jpg"),
	}, func(name string) { warned = append(warned, name) })

	if res.SuccessCount() != 1 || res.Skipped != 1 || res.ErrorCount() != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(warned) != 1 || warned[0] != "7A_Ann Lee.png" {
		t.Errorf("warned = %v", warned)
	}
	if _, err := os.Stat(filepath.Join(dir, "img2.jpg")); err != nil {
		t.Errorf("remainder must still be restored: %v", err)
	}
}
