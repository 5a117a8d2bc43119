package domain

// PathEntry is one directory entry. Path is the handle used to read the
// entry's bytes later on.
type PathEntry struct {
	Name string
	Path string
}

type ModFile struct {
	Entry  PathEntry
	Record Record
}

func (file ModFile) Kind() Kind {
	if file.Record == nil {
		return KindUnrecognized
	}
	return file.Record.Kind()
}

// AsPackage returns the package record when the file classified as one.
func (file ModFile) AsPackage() (Package, bool) {
	pkg, ok := file.Record.(Package)
	return pkg, ok
}

// Demote reclassifies the file as unrecognized, keeping its entry.
func (file ModFile) Demote() ModFile {
	return ModFile{Entry: file.Entry, Record: Unrecognized{}}
}
