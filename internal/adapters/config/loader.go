// Package config provides the configuration loader for fanout.
package config

import (
	"os"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML groupfile.
type FileConfigLoader struct{}

// Load reads the manifest from the given path.
func (l *FileConfigLoader) Load(path string) (*domain.Manifest, error) {
	return Load(path)
}

// Load reads a groupfile and returns the validated build manifest.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read groupfile")
	}

	var gf Groupfile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, zerr.Wrap(err, "failed to parse groupfile")
	}

	groups := domain.NewGroupSet()
	groupNames := make(map[string]bool, len(gf.Groups))

	// First pass: collect names so parent references can be verified.
	for name := range gf.Groups {
		groupNames[name] = true
	}

	// Second pass: build the group set.
	for name, dto := range gf.Groups {
		for _, parent := range dto.DependsOn {
			if !groupNames[parent] {
				return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownGroup, "undeclared parent group"), "group", parent), "declared_by", name)
			}
		}

		g := &domain.SourceGroup{
			Name:    domain.NewInternedString(name),
			Parents: internStrings(dto.DependsOn),
		}
		if err := groups.AddGroup(g); err != nil {
			return nil, err
		}
	}

	// A cyclic hierarchy is a configuration bug in the orchestrator input,
	// surfaced here rather than tolerated by traversal guards.
	if err := groups.Validate(); err != nil {
		return nil, err
	}

	passes := make(map[string]domain.CompilationPass, len(gf.Passes))
	for name, dto := range gf.Passes {
		if !groupNames[dto.DefaultGroup] {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownGroup, "undeclared default group"), "group", dto.DefaultGroup), "pass", name)
		}
		passes[name] = domain.CompilationPass{
			PassName:     name,
			TargetID:     dto.Target,
			PlatformKind: dto.Platform,
			IsTestPass:   dto.Test,
			DefaultGroup: dto.DefaultGroup,
		}
	}

	return &domain.Manifest{
		Groups: groups,
		Passes: passes,
	}, nil
}

func internStrings(strs []string) []domain.InternedString {
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
