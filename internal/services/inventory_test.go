package services

import (
	"errors"
	"reflect"
	"testing"

	"modscan/internal/domain"
)

func classifyAll(names ...string) []domain.ModFile {
	classifier := NewClassifier(DefaultClassifierNames())
	files := make([]domain.ModFile, 0, len(names))
	for _, name := range names {
		files = append(files, domain.ModFile{
			Entry:  domain.PathEntry{Name: name, Path: "/mods/" + name},
			Record: classifier.Classify(name),
		})
	}
	return files
}

func TestBuildInventoryMissingManifest(t *testing.T) {
	t.Parallel()

	files := classifyAll("foo_1.0.0.zip", "mod-settings.dat")
	_, err := BuildInventory(files, domain.EnabledMap{}, DefaultBuildOptions())
	if !errors.Is(err, ErrMissingManifest) {
		t.Fatalf("BuildInventory() error = %v, want ErrMissingManifest", err)
	}
}

func TestBuildInventoryGroupsAndMerges(t *testing.T) {
	t.Parallel()

	files := classifyAll(
		"mod-list.json",
		"foo_1.2.0.zip",
		"bar_0.9.0.zip",
		"foo_1.0.0.zip",
		"baz_2.0.0.zip",
		"mod-settings.dat",
		"random.txt",
	)
	enabled := domain.EnabledMap{"base": true, "foo": true, "bar": false, "ghost": true}

	inventory, err := BuildInventory(files, enabled, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildInventory() error = %v", err)
	}

	if got := inventory.GroupNames(); !reflect.DeepEqual(got, []string{"bar", "baz", "foo"}) {
		t.Errorf("GroupNames() = %v", got)
	}
	foo := inventory.Groups["foo"]
	if foo.Enabled != domain.Enabled {
		t.Errorf("foo enabled = %s, want enabled", foo.Enabled)
	}
	if got := foo.Latest().VersionString(); got != "1.2.0" {
		t.Errorf("foo latest = %s, want 1.2.0", got)
	}
	if got := foo.Files[0].Entry.Name; got != "foo_1.0.0.zip" {
		t.Errorf("foo first file = %s, want foo_1.0.0.zip", got)
	}
	if got := inventory.Groups["bar"].Enabled; got != domain.Disabled {
		t.Errorf("bar enabled = %s, want disabled", got)
	}
	if got := inventory.Groups["baz"].Enabled; got != domain.Unlisted {
		t.Errorf("baz enabled = %s, want unlisted", got)
	}
	if inventory.Manifest.Entry.Name != "mod-list.json" {
		t.Errorf("manifest = %q", inventory.Manifest.Entry.Name)
	}
	if inventory.Settings == nil || inventory.Settings.Entry.Name != "mod-settings.dat" {
		t.Errorf("settings = %+v", inventory.Settings)
	}
	if len(inventory.Unrecognized) != 1 || inventory.Unrecognized[0].Entry.Name != "random.txt" {
		t.Errorf("unrecognized = %+v", inventory.Unrecognized)
	}
	if got := inventory.ManifestOnly(); !reflect.DeepEqual(got, []string{"ghost"}) {
		t.Errorf("ManifestOnly() = %v, want [ghost]", got)
	}
	if got := inventory.PackageFiles(); got != 4 {
		t.Errorf("PackageFiles() = %d, want 4", got)
	}
}

func TestBuildInventoryExcludesBase(t *testing.T) {
	t.Parallel()

	files := classifyAll("mod-list.json", "base_1.1.0.zip", "foo_1.0.0.zip")
	enabled := domain.EnabledMap{"base": true, "foo": true}

	inventory, err := BuildInventory(files, enabled, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildInventory() error = %v", err)
	}
	if _, ok := inventory.Groups["base"]; ok {
		t.Error("base package was grouped")
	}
	if _, ok := inventory.Enabled["base"]; ok {
		t.Error("base kept in the enabled map")
	}
	if !reflect.DeepEqual(inventory.Excluded, []string{"base"}) {
		t.Errorf("Excluded = %v, want [base]", inventory.Excluded)
	}

	inventory, err = BuildInventory(files, enabled, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildInventory() error = %v", err)
	}
	if _, ok := inventory.Groups["base"]; !ok {
		t.Error("base package missing without exclusions")
	}
	if len(inventory.Excluded) != 0 {
		t.Errorf("Excluded = %v, want none", inventory.Excluded)
	}
}

func TestBuildInventoryDemotesDuplicates(t *testing.T) {
	t.Parallel()

	files := []domain.ModFile{
		{Entry: domain.PathEntry{Name: "mod-list.json", Path: "/a/mod-list.json"}, Record: domain.ListManifest{}},
		{Entry: domain.PathEntry{Name: "mod-list.json", Path: "/b/mod-list.json"}, Record: domain.ListManifest{}},
		{Entry: domain.PathEntry{Name: "mod-settings.dat", Path: "/a/mod-settings.dat"}, Record: domain.SettingsBlob{}},
		{Entry: domain.PathEntry{Name: "mod-settings.dat", Path: "/b/mod-settings.dat"}, Record: domain.SettingsBlob{}},
	}

	inventory, err := BuildInventory(files, domain.EnabledMap{}, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildInventory() error = %v", err)
	}
	if inventory.Manifest.Entry.Path != "/a/mod-list.json" {
		t.Errorf("manifest = %s, want the first one", inventory.Manifest.Entry.Path)
	}
	if inventory.Settings == nil || inventory.Settings.Entry.Path != "/a/mod-settings.dat" {
		t.Errorf("settings = %+v, want the first one", inventory.Settings)
	}
	if len(inventory.DuplicateManifests) != 1 || inventory.DuplicateManifests[0].Entry.Path != "/b/mod-list.json" {
		t.Errorf("DuplicateManifests = %+v", inventory.DuplicateManifests)
	}
	if len(inventory.Unrecognized) != 2 {
		t.Fatalf("Unrecognized = %+v, want 2 demoted entries", inventory.Unrecognized)
	}
	for _, file := range inventory.Unrecognized {
		if file.Kind() != domain.KindUnrecognized {
			t.Errorf("%s kind = %s, want unrecognized", file.Entry.Path, file.Kind())
		}
	}
}

func TestManifestFile(t *testing.T) {
	t.Parallel()

	if _, ok := ManifestFile(classifyAll("foo_1.0.0.zip")); ok {
		t.Error("ManifestFile() found a manifest in a folder without one")
	}
	file, ok := ManifestFile(classifyAll("a.txt", "mod-list.json"))
	if !ok || file.Entry.Name != "mod-list.json" {
		t.Errorf("ManifestFile() = %+v, %v", file, ok)
	}
}
