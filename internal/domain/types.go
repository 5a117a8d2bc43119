package domain

type SortMode string

const (
	SortByState    SortMode = "state"
	SortByName     SortMode = "name"
	SortByVersions SortMode = "versions"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Enablement is the manifest state resolved for a package group. The zero
// value means the package name has no manifest entry.
type Enablement int

const (
	Unlisted Enablement = iota
	Disabled
	Enabled
)

func EnablementOf(enabled EnabledMap, name string) Enablement {
	value, ok := enabled[name]
	switch {
	case !ok:
		return Unlisted
	case value:
		return Enabled
	default:
		return Disabled
	}
}

func (state Enablement) String() string {
	switch state {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unlisted"
	}
}

// Marker is the fixed-width flag printed in front of report rows.
func (state Enablement) Marker() string {
	switch state {
	case Enabled:
		return "[x]"
	case Disabled:
		return "[ ]"
	default:
		return "[?]"
	}
}

// Bool returns the manifest value and whether the package was listed at all.
func (state Enablement) Bool() (bool, bool) {
	return state == Enabled, state != Unlisted
}
