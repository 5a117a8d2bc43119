package domain

import "github.com/Masterminds/semver/v3"

type Kind int

const (
	KindUnrecognized Kind = iota
	KindListManifest
	KindSettingsBlob
	KindPackage
)

func (kind Kind) String() string {
	switch kind {
	case KindListManifest:
		return "manifest"
	case KindSettingsBlob:
		return "settings"
	case KindPackage:
		return "package"
	default:
		return "unrecognized"
	}
}

// Record is the classification of a single directory entry. The set of
// implementations is closed: ListManifest, SettingsBlob, Package and
// Unrecognized.
type Record interface {
	Kind() Kind
	record()
}

type ListManifest struct{}

type SettingsBlob struct{}

type Package struct {
	Name    string
	Version *semver.Version
}

type Unrecognized struct{}

func (ListManifest) Kind() Kind { return KindListManifest }
func (SettingsBlob) Kind() Kind { return KindSettingsBlob }
func (Package) Kind() Kind      { return KindPackage }
func (Unrecognized) Kind() Kind { return KindUnrecognized }

func (ListManifest) record() {}
func (SettingsBlob) record() {}
func (Package) record()      {}
func (Unrecognized) record() {}

func (pkg Package) VersionString() string {
	if pkg.Version == nil {
		return ""
	}
	return pkg.Version.Original()
}

// ComparePackages orders by semantic version precedence. Versions of equal
// precedence (differing only in build metadata) fall back to their text so
// the order stays total.
func ComparePackages(left, right Package) int {
	if cmp := left.Version.Compare(right.Version); cmp != 0 {
		return cmp
	}
	switch l, r := left.VersionString(), right.VersionString(); {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
