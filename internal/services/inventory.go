package services

import (
	"sort"

	"modscan/internal/domain"
)

// ManifestFile returns the first entry classified as the mod list, in
// enumeration order.
func ManifestFile(files []domain.ModFile) (domain.ModFile, bool) {
	index := manifestIndex(files)
	if index < 0 {
		return domain.ModFile{}, false
	}
	return files[index], true
}

// BuildInventory partitions classified files and merges package records
// with the manifest state. Only the first mod list counts; later ones are
// demoted to unrecognized and listed in DuplicateManifests. The same holds
// for the settings file.
func BuildInventory(files []domain.ModFile, enabled domain.EnabledMap, opts BuildOptions) (domain.Inventory, error) {
	selected := manifestIndex(files)
	if selected < 0 {
		return domain.Inventory{}, ErrMissingManifest
	}

	excluded := make(map[string]struct{}, len(opts.ExcludedPackages))
	for _, name := range opts.ExcludedPackages {
		excluded[name] = struct{}{}
	}
	excludedSeen := make(map[string]struct{})

	inventory := domain.Inventory{
		Enabled:  make(domain.EnabledMap, len(enabled)),
		Groups:   make(map[string]*domain.PackageGroup),
		Manifest: files[selected],
	}
	for name, value := range enabled {
		if _, skip := excluded[name]; skip {
			excludedSeen[name] = struct{}{}
			continue
		}
		inventory.Enabled[name] = value
	}

	for index, file := range files {
		switch record := file.Record.(type) {
		case domain.ListManifest:
			if index == selected {
				continue
			}
			inventory.DuplicateManifests = append(inventory.DuplicateManifests, file)
			inventory.Unrecognized = append(inventory.Unrecognized, file.Demote())
		case domain.SettingsBlob:
			if inventory.Settings == nil {
				settings := file
				inventory.Settings = &settings
				continue
			}
			inventory.Unrecognized = append(inventory.Unrecognized, file.Demote())
		case domain.Package:
			if _, skip := excluded[record.Name]; skip {
				excludedSeen[record.Name] = struct{}{}
				continue
			}
			group, ok := inventory.Groups[record.Name]
			if !ok {
				group = &domain.PackageGroup{
					Name:    record.Name,
					Enabled: domain.EnablementOf(inventory.Enabled, record.Name),
				}
				inventory.Groups[record.Name] = group
			}
			group.Add(file, record)
		default:
			inventory.Unrecognized = append(inventory.Unrecognized, file)
		}
	}

	for name := range excludedSeen {
		inventory.Excluded = append(inventory.Excluded, name)
	}
	sort.Strings(inventory.Excluded)
	return inventory, nil
}

func manifestIndex(files []domain.ModFile) int {
	for index, file := range files {
		if file.Kind() == domain.KindListManifest {
			return index
		}
	}
	return -1
}
