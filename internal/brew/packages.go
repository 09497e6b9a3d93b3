package brew

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/brew-available/internal/log"
)

// DefaultBrew is the brew executable looked up on PATH when none is configured.
const DefaultBrew = "brew"

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args and returns stdout. Failures include stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%s %s failed: %w (stderr: %s)",
				name, strings.Join(args, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return output, nil
}

// brewInfoOutput represents the structure of `brew info --json=v2` output
type brewInfoOutput struct {
	Formulae []brewFormula `json:"formulae"`
	Casks    []brewCask    `json:"casks"`
}

// brewFormula represents a Homebrew formula in JSON output
type brewFormula struct {
	Name           string                 `json:"name"`
	FullName       string                 `json:"full_name"`
	Tap            string                 `json:"tap"`
	Desc           *string                `json:"desc"`
	Versions       brewVersions           `json:"versions"`
	Installed      []brewInstalledVersion `json:"installed"`
	Outdated       bool                   `json:"outdated"`
	Dependencies   []string               `json:"dependencies"`
	RubySourcePath string                 `json:"ruby_source_path"`
}

type brewVersions struct {
	Stable string `json:"stable"`
	Head   string `json:"head"`
}

// brewInstalledVersion represents an installed version
type brewInstalledVersion struct {
	Version string `json:"version"`
}

// brewCask represents a Homebrew cask in JSON output.
// Installed is null unless the cask is installed.
type brewCask struct {
	Token          string  `json:"token"`
	FullToken      string  `json:"full_token"`
	Tap            string  `json:"tap"`
	Desc           *string `json:"desc"`
	Version        string  `json:"version"`
	Installed      *string `json:"installed"`
	Outdated       bool    `json:"outdated"`
	RubySourcePath string  `json:"ruby_source_path"`
}

// Options configures a Client.
type Options struct {
	// Brew is the brew executable. Defaults to DefaultBrew.
	Brew string
	// InstalledOnly restricts listings to installed packages instead of
	// every formula and cask known to the registry.
	InstalledOnly bool
	// Runner overrides command execution. Defaults to ExecRunner.
	Runner Runner
}

// Client reads formulae and casks from the local Homebrew registry.
type Client struct {
	brew          string
	installedOnly bool
	runner        Runner

	repository string
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		brew:          opts.Brew,
		installedOnly: opts.InstalledOnly,
		runner:        opts.Runner,
	}
	if c.brew == "" {
		c.brew = DefaultBrew
	}
	if c.runner == nil {
		c.runner = ExecRunner{}
	}
	return c
}

// Formulae returns every formula in registry order. Each formula's
// RequiredBy lists the formulae of the same listing that depend on it.
func (c *Client) Formulae(ctx context.Context) ([]Formula, error) {
	info, err := c.info(ctx, "--formula")
	if err != nil {
		return nil, err
	}

	repo, err := c.Repository(ctx)
	if err != nil {
		return nil, err
	}

	formulae := make([]Formula, 0, len(info.Formulae))
	for _, f := range info.Formulae {
		formulae = append(formulae, Formula{
			Name:         f.Name,
			FullName:     f.FullName,
			Tap:          f.Tap,
			Desc:         deref(f.Desc),
			Version:      f.Versions.version(),
			Outdated:     f.Outdated,
			Installed:    len(f.Installed) > 0,
			Path:         definitionPath(repo, f.Tap, f.RubySourcePath),
			Dependencies: nonNil(f.Dependencies),
		})
	}

	linkDependents(formulae)

	log.Debug("listed formulae", "count", len(formulae))
	return formulae, nil
}

// Casks returns every cask in registry order.
func (c *Client) Casks(ctx context.Context) ([]Cask, error) {
	info, err := c.info(ctx, "--cask")
	if err != nil {
		return nil, err
	}

	repo, err := c.Repository(ctx)
	if err != nil {
		return nil, err
	}

	casks := make([]Cask, 0, len(info.Casks))
	for _, cask := range info.Casks {
		casks = append(casks, Cask{
			Token:     cask.Token,
			FullToken: cask.FullToken,
			Tap:       cask.Tap,
			Desc:      deref(cask.Desc),
			Version:   cask.Version,
			Outdated:  cask.Outdated,
			Installed: cask.Installed != nil,
			Path:      definitionPath(repo, cask.Tap, cask.RubySourcePath),
		})
	}

	log.Debug("listed casks", "count", len(casks))
	return casks, nil
}

// Repository returns the Homebrew repository path. The first successful
// lookup is cached for the lifetime of the client.
func (c *Client) Repository(ctx context.Context) (string, error) {
	if c.repository != "" {
		return c.repository, nil
	}

	output, err := c.runner.Run(ctx, c.brew, "--repository")
	if err != nil {
		return "", fmt.Errorf("failed to locate brew repository: %w", err)
	}

	c.repository = strings.TrimSpace(string(output))
	return c.repository, nil
}

func (c *Client) info(ctx context.Context, kindFlag string) (*brewInfoOutput, error) {
	scope := "--eval-all"
	if c.installedOnly {
		scope = "--installed"
	}

	args := []string{"info", "--json=v2", scope, kindFlag}
	log.Debug("running brew", "brew", c.brew, "args", strings.Join(args, " "))

	output, err := c.runner.Run(ctx, c.brew, args...)
	if err != nil {
		return nil, err
	}

	var info brewInfoOutput
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("failed to parse brew info output: %w", err)
	}
	return &info, nil
}

func (v brewVersions) version() string {
	if v.Stable != "" {
		return v.Stable
	}
	return v.Head
}

// linkDependents fills RequiredBy by inverting Dependencies across the
// listing. Dependents appear in listing order.
func linkDependents(formulae []Formula) {
	index := make(map[string]int, 2*len(formulae))
	for i := range formulae {
		formulae[i].RequiredBy = []string{}
		if formulae[i].Name != "" {
			index[formulae[i].Name] = i
		}
		if formulae[i].FullName != "" {
			index[formulae[i].FullName] = i
		}
	}

	for _, f := range formulae {
		seen := make(map[int]bool, len(f.Dependencies))
		for _, dep := range f.Dependencies {
			i, ok := index[dep]
			if !ok || seen[i] {
				continue
			}
			seen[i] = true
			formulae[i].RequiredBy = append(formulae[i].RequiredBy, f.Name)
		}
	}
}

// definitionPath resolves a ruby_source_path against the tap checkout.
// Example: homebrew/core + Formula/g/git.rb ->
// <repo>/Library/Taps/homebrew/homebrew-core/Formula/g/git.rb
func definitionPath(repo, tap, sourcePath string) string {
	if sourcePath == "" {
		return ""
	}
	if filepath.IsAbs(sourcePath) {
		return sourcePath
	}

	user, name, ok := strings.Cut(tap, "/")
	if !ok || repo == "" || user == "" || name == "" {
		return sourcePath
	}

	return filepath.Join(repo, "Library", "Taps", user, "homebrew-"+name, sourcePath)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
