package services

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"modscan/internal/domain"
)

const (
	DefaultManifestName = "mod-list.json"
	DefaultSettingsName = "mod-settings.dat"
	// BasePackage is the game itself; it is listed in the manifest but is
	// not user content.
	BasePackage = "base"

	packageDelimiter = "_"
	archiveExtension = ".zip"
)

// ClassifierNames holds the reserved file names of the host application.
type ClassifierNames struct {
	Manifest string
	Settings string
}

func DefaultClassifierNames() ClassifierNames {
	return ClassifierNames{
		Manifest: DefaultManifestName,
		Settings: DefaultSettingsName,
	}
}

type Classifier struct {
	names ClassifierNames
}

func NewClassifier(names ClassifierNames) Classifier {
	return Classifier{names: names}
}

// Classify decodes a directory entry name. It never fails: anything that is
// neither a reserved name nor <name>_<semver>[.zip] is Unrecognized.
func (classifier Classifier) Classify(name string) domain.Record {
	switch name {
	case classifier.names.Manifest:
		return domain.ListManifest{}
	case classifier.names.Settings:
		return domain.SettingsBlob{}
	}

	packageName, candidate := splitPackageName(name)
	if packageName == "" {
		return domain.Unrecognized{}
	}
	version, err := semver.StrictNewVersion(strings.TrimSuffix(candidate, archiveExtension))
	if err != nil {
		return domain.Unrecognized{}
	}
	return domain.Package{Name: packageName, Version: version}
}

func (classifier Classifier) Names() ClassifierNames {
	return classifier.names
}

// splitPackageName splits on every delimiter, then rejoins all but the last
// segment. Package names may contain the delimiter themselves; versions
// cannot.
func splitPackageName(name string) (string, string) {
	segments := strings.Split(name, packageDelimiter)
	last := len(segments) - 1
	return strings.Join(segments[:last], packageDelimiter), segments[last]
}
