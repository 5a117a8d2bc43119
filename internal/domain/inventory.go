package domain

import "sort"

// EnabledMap maps package names to their manifest state.
type EnabledMap map[string]bool

type PackageGroup struct {
	Name     string
	Versions []Package
	Files    []ModFile
	Enabled  Enablement
}

func (group *PackageGroup) Add(file ModFile, pkg Package) {
	index := sort.Search(len(group.Versions), func(i int) bool {
		return ComparePackages(group.Versions[i], pkg) > 0
	})
	group.Versions = append(group.Versions, Package{})
	copy(group.Versions[index+1:], group.Versions[index:])
	group.Versions[index] = pkg

	group.Files = append(group.Files, ModFile{})
	copy(group.Files[index+1:], group.Files[index:])
	group.Files[index] = file
}

func (group *PackageGroup) Latest() Package {
	return group.Versions[len(group.Versions)-1]
}

func (group *PackageGroup) DistinctVersions() int {
	seen := make(map[string]struct{}, len(group.Versions))
	for _, pkg := range group.Versions {
		seen[pkg.VersionString()] = struct{}{}
	}
	return len(seen)
}

type Inventory struct {
	Enabled            EnabledMap
	Groups             map[string]*PackageGroup
	Manifest           ModFile
	Settings           *ModFile
	Unrecognized       []ModFile
	DuplicateManifests []ModFile
	Excluded           []string
}

func (inventory Inventory) GroupNames() []string {
	names := make([]string, 0, len(inventory.Groups))
	for name := range inventory.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (inventory Inventory) PackageFiles() int {
	count := 0
	for _, group := range inventory.Groups {
		count += len(group.Files)
	}
	return count
}

// ManifestOnly lists manifest names that have no package file on disk.
func (inventory Inventory) ManifestOnly() []string {
	names := make([]string, 0)
	for name := range inventory.Enabled {
		if _, ok := inventory.Groups[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
