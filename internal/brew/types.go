package brew

// Formula represents a Homebrew formula as reported by the local registry.
type Formula struct {
	Name         string
	FullName     string // e.g., "user/tap/name" for third-party taps
	Tap          string
	Desc         string // empty when the formula has no description
	Version      string
	Outdated     bool
	Installed    bool
	Path         string // formula definition file
	Dependencies []string
	RequiredBy   []string // formulae in the same listing that depend on this one
}

// Cask represents a Homebrew cask as reported by the local registry.
// Casks carry no formula-style dependency relations.
type Cask struct {
	Token     string
	FullToken string
	Tap       string
	Desc      string
	Version   string
	Outdated  bool
	Installed bool
	Path      string // cask definition file
}
