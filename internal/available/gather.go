// Package available turns registry listings into descriptors.
package available

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/brew-available/internal/brew"
	"github.com/blackwell-systems/brew-available/internal/log"
)

// FormulaRegistry enumerates formulae.
type FormulaRegistry interface {
	Formulae(ctx context.Context) ([]brew.Formula, error)
}

// CaskRegistry enumerates casks.
type CaskRegistry interface {
	Casks(ctx context.Context) ([]brew.Cask, error)
}

// Registry enumerates both kinds. *brew.Client satisfies it.
type Registry interface {
	FormulaRegistry
	CaskRegistry
}

// SelectKinds applies the kind filter. Casks win when both flags are set;
// with neither set, formulae come before casks.
func SelectKinds(casks, formulae bool) []Kind {
	switch {
	case casks:
		return []Kind{KindCask}
	case formulae:
		return []Kind{KindFormula}
	default:
		return []Kind{KindFormula, KindCask}
	}
}

// Gather enumerates each kind in order and describes every item. It returns
// the complete list or the first error; never a partial list.
func Gather(ctx context.Context, reg Registry, kinds []Kind, includeDeps bool) ([]Descriptor, error) {
	items := []Descriptor{}

	for _, kind := range kinds {
		var (
			described []Descriptor
			err       error
		)
		switch kind {
		case KindFormula:
			described, err = gatherFormulae(ctx, reg, includeDeps)
		case KindCask:
			described, err = gatherCasks(ctx, reg, includeDeps)
		default:
			return nil, fmt.Errorf("unknown package kind %q", kind)
		}
		if err != nil {
			return nil, err
		}

		log.Debug("described packages", "kind", kind, "count", len(described))
		items = append(items, described...)
	}

	return items, nil
}

func gatherFormulae(ctx context.Context, reg FormulaRegistry, includeDeps bool) ([]Descriptor, error) {
	formulae, err := reg.Formulae(ctx)
	if err != nil {
		return nil, &RegistryAccessError{Kind: KindFormula, Err: err}
	}

	items := make([]Descriptor, 0, len(formulae))
	for _, f := range formulae {
		d, err := FromFormula(f, includeDeps)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}

func gatherCasks(ctx context.Context, reg CaskRegistry, includeDeps bool) ([]Descriptor, error) {
	casks, err := reg.Casks(ctx)
	if err != nil {
		return nil, &RegistryAccessError{Kind: KindCask, Err: err}
	}

	items := make([]Descriptor, 0, len(casks))
	for _, c := range casks {
		d, err := FromCask(c, includeDeps)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, nil
}
