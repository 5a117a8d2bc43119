package services

type ScanRequest struct {
	RootPath string
}

type CollectRequest struct {
	RootPath string
	Build    BuildOptions
}

type BuildOptions struct {
	// ExcludedPackages are built into the game and never reported.
	ExcludedPackages []string
}

func DefaultBuildOptions() BuildOptions {
	return BuildOptions{ExcludedPackages: []string{BasePackage}}
}
