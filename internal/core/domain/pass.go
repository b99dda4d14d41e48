package domain

// CompilationPass describes one discrete unit of the build: the analysis of
// a coherent set of source groups for one target/platform/variant. It is
// supplied per pass by the build orchestrator; IsTestPass is computed by an
// upstream classifier and is opaque input here.
type CompilationPass struct {
	PassName     string
	TargetID     string
	PlatformKind string
	IsTestPass   bool
	DefaultGroup string
}
