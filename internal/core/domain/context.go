package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	toolName         = "fanout"
	artifactsSegment = "sources"

	mainOutputSegment = "main"
	testOutputSegment = "test"
)

// GroupRef is the serializable form of a source group: its name and the
// names of its direct parents, sorted.
type GroupRef struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents,omitempty"`
}

// CompilationContext is the immutable description of one compilation pass,
// built once at configuration time, serialized across the process boundary
// and consumed once downstream. AllSourceGroups always contains
// DefaultSourceGroup and equals the closure of DefaultSourceGroup, with no
// duplicate names.
type CompilationContext struct {
	CompilationName    string     `json:"compilationName"`
	TargetName         string     `json:"targetName"`
	PlatformKind       string     `json:"platformKind"`
	IsTest             bool       `json:"isTest"`
	DefaultSourceGroup GroupRef   `json:"defaultSourceGroup"`
	AllSourceGroups    []GroupRef `json:"allSourceGroups"`
	OutputDirectory    string     `json:"outputDirectory"`
}

// BuildContext builds the CompilationContext for one pass. It is a pure
// function: directory creation is the caller's responsibility. A pass
// referencing a default group absent from the group set is a fatal
// configuration error in the upstream orchestrator.
func BuildContext(pass CompilationPass, groups *GroupSet, buildRoot string) (CompilationContext, error) {
	closure, err := groups.Closure(NewInternedString(pass.DefaultGroup))
	if err != nil {
		return CompilationContext{}, zerr.With(err, "pass", pass.PassName)
	}

	all := make([]GroupRef, len(closure))
	for i, g := range closure {
		all[i] = toGroupRef(g)
	}

	roleSegment := mainOutputSegment
	if pass.IsTestPass {
		roleSegment = testOutputSegment
	}

	return CompilationContext{
		CompilationName:    pass.PassName,
		TargetName:         pass.TargetID,
		PlatformKind:       pass.PlatformKind,
		IsTest:             pass.IsTestPass,
		DefaultSourceGroup: all[0],
		AllSourceGroups:    all,
		OutputDirectory:    filepath.Join(buildRoot, "generated", toolName, roleSegment, artifactsSegment),
	}, nil
}

// DefaultContext returns the degraded fallback context used when a
// transported context cannot be decoded. Affects only which work gets
// reused, not correctness, so callers log and proceed.
func DefaultContext() CompilationContext {
	common := GroupRef{Name: "commonMain"}
	return CompilationContext{
		CompilationName:    "unknown",
		TargetName:         "unknown",
		PlatformKind:       "unknown",
		DefaultSourceGroup: common,
		AllSourceGroups:    []GroupRef{common},
	}
}

func toGroupRef(g SourceGroup) GroupRef {
	ref := GroupRef{Name: g.Name.String()}
	if len(g.Parents) > 0 {
		ref.Parents = make([]string, len(g.Parents))
		for i, p := range g.Parents {
			ref.Parents[i] = p.String()
		}
	}
	return ref
}
