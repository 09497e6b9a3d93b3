package available

import "github.com/blackwell-systems/brew-available/internal/brew"

// FromFormula describes a formula. Dependencies and dependents are included
// only when includeDeps is set.
func FromFormula(f brew.Formula, includeDeps bool) (Descriptor, error) {
	if f.Name == "" {
		return Descriptor{}, &MalformedPackageError{
			Kind:       KindFormula,
			Identifier: firstNonEmpty(f.FullName, f.Path),
			Reason:     "missing name",
		}
	}

	d := Descriptor{
		Kind:      KindFormula,
		Name:      f.Name,
		Version:   f.Version,
		Info:      infoOrName(f.Desc, f.Name),
		Outdated:  f.Outdated,
		Installed: f.Installed,
		Path:      f.Path,
	}
	if includeDeps {
		d.Dependencies = Some(cloneList(f.Dependencies))
		d.Dependents = Some(cloneList(f.RequiredBy))
	}
	return d, nil
}

// FromCask describes a cask. Casks expose no dependency relations, so with
// includeDeps both lists are present and empty.
func FromCask(c brew.Cask, includeDeps bool) (Descriptor, error) {
	if c.Token == "" {
		return Descriptor{}, &MalformedPackageError{
			Kind:       KindCask,
			Identifier: firstNonEmpty(c.FullToken, c.Path),
			Reason:     "missing token",
		}
	}

	d := Descriptor{
		Kind:      KindCask,
		Name:      c.Token,
		Version:   c.Version,
		Info:      infoOrName(c.Desc, c.Token),
		Outdated:  c.Outdated,
		Installed: c.Installed,
		Path:      c.Path,
	}
	if includeDeps {
		d.Dependencies = Some([]string{})
		d.Dependents = Some([]string{})
	}
	return d, nil
}

func infoOrName(desc, name string) string {
	if desc == "" {
		return name
	}
	return desc
}

// cloneList copies s so descriptors never share backing arrays with the
// registry. The result is never nil.
func cloneList(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
