package resolve

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/errors"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/fragment"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/logging"
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/pathmatch"
)

// Options configures a Run.
type Options struct {
	// FragmentName is the fixed file name identifying configuration
	// fragments. Defaults to fragment.DefaultFileName.
	FragmentName string

	// ArtifactAt reports whether the generated scaffold already exists
	// directly under a candidate root. A module whose roots already host
	// the artifact is excluded from the decision set, which is what makes
	// re-running on a migrated tree a no-op. Defaults to "never".
	ArtifactAt func(root string) bool
}

// Run owns all per-run state. Multiple independent runs may coexist; there
// is no process-wide state.
type Run struct {
	mu        sync.Mutex
	committed bool

	fragmentName string
	artifactAt   func(root string) bool

	// phase 1 accumulators, append-only
	paths     map[string]struct{}
	fragments map[string]string

	// phase 2 results, written once at commit
	overrides   *fragment.OverrideSet
	diags       []fragment.Diagnostic
	modules     map[string]string              // path -> module prefix
	detected    map[string]map[string]struct{} // module -> detected patterns
	hasArtifact map[string]bool
	decisions   map[string]string // module -> chosen root

	logger zerolog.Logger
}

// NewRun creates a run in its accumulating state.
func NewRun(opts Options) *Run {
	if opts.FragmentName == "" {
		opts.FragmentName = fragment.DefaultFileName
	}
	if opts.ArtifactAt == nil {
		opts.ArtifactAt = func(string) bool { return false }
	}
	return &Run{
		fragmentName: opts.FragmentName,
		artifactAt:   opts.ArtifactAt,
		paths:        make(map[string]struct{}),
		fragments:    make(map[string]string),
		overrides:    fragment.NewOverrideSet(),
		modules:      make(map[string]string),
		detected:     make(map[string]map[string]struct{}),
		hasArtifact:  make(map[string]bool),
		decisions:    make(map[string]string),
		logger:       logging.GetLogger("resolve.run"),
	}
}

// AddPath ingests one file path. Ingestion after commit is a contract
// violation and returns ErrRunCommitted.
func (r *Run) AddPath(p string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.committed {
		return errors.Newf(errors.ErrRunCommitted, "path %q ingested after commit", p)
	}
	p = pathmatch.Normalize(p)
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "empty path")
	}
	r.paths[p] = struct{}{}
	return nil
}

// AddFragment ingests a configuration fragment's verbatim text, keyed by its
// own path. The content is not interpreted until commit.
func (r *Run) AddFragment(p, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.committed {
		return errors.Newf(errors.ErrRunCommitted, "fragment %q ingested after commit", p)
	}
	p = pathmatch.Normalize(p)
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "empty fragment path")
	}
	r.fragments[p] = content
	r.paths[p] = struct{}{}
	return nil
}

// Commit transitions the run from accumulation to its resolved, read-only
// state. The first call does all the work; later calls are no-ops.
func (r *Run) Commit() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.committed {
		return nil
	}
	r.committed = true

	done := logging.LogOperationStart(r.logger, "commit")
	defer done()

	r.loadOverrides()
	r.classifyPaths()
	r.probeArtifacts()
	r.selectTargets()

	r.logger.Info().
		Int("paths", len(r.paths)).
		Int("fragments", len(r.fragments)).
		Int("modules", len(r.detected)).
		Int("decisions", len(r.decisions)).
		Int("diagnostics", len(r.diags)).
		Msg("Run committed")
	return nil
}

// loadOverrides parses all pending fragments. Fragments are visited in
// sorted path order so that map iteration never leaks into the results.
func (r *Run) loadOverrides() {
	fragPaths := make([]string, 0, len(r.fragments))
	for p := range r.fragments {
		fragPaths = append(fragPaths, p)
	}
	sort.Strings(fragPaths)

	for _, p := range fragPaths {
		module := r.resolvePrefix(p)
		items := fragment.Parse(r.fragments[p])
		for _, raw := range items {
			pattern, reason := fragment.Sanitize(raw)
			if reason != "" {
				r.diags = append(r.diags, fragment.Diagnostic{Fragment: p, Entry: raw, Reason: reason})
				r.logger.Warn().
					Str("fragment", p).
					Str("entry", raw).
					Str("reason", reason).
					Msg("Rejected override entry")
				continue
			}
			if r.overrides.Add(module, pattern) {
				r.logger.Debug().
					Str("module", module).
					Str("pattern", pattern).
					Str("fragment", p).
					Msg("Registered override")
			}
		}
		if len(items) == 0 {
			r.logger.Debug().Str("fragment", p).Msg("Fragment contributed no entries")
		}
	}
}

// classifyPaths assigns every ingested path its module prefix and records the
// detected source roots. Results are keyed by path and module, so iteration
// order does not matter here.
func (r *Run) classifyPaths() {
	for p := range r.paths {
		module := r.resolvePrefix(p)
		r.modules[p] = module
		if pattern, ok := r.detectPattern(p, module); ok {
			set, exists := r.detected[module]
			if !exists {
				set = make(map[string]struct{})
				r.detected[module] = set
			}
			set[pattern] = struct{}{}
		}
	}
}

// probeArtifacts computes the per-module already-has-artifact set by asking
// the caller-supplied predicate about every detected root.
func (r *Run) probeArtifacts() {
	for module, patterns := range r.detected {
		for _, pattern := range sortedKeys(patterns) {
			if r.artifactAt(joinPrefix(module, pattern)) {
				r.hasArtifact[module] = true
				break
			}
		}
	}
}

// Committed reports whether the run has passed its commit barrier.
func (r *Run) Committed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.committed
}

// ModulePrefix returns the owning module prefix for a path. It may be called
// at any time but is authoritative only after commit, when all overrides are
// known.
func (r *Run) ModulePrefix(p string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	p = pathmatch.Normalize(p)
	if m, ok := r.modules[p]; ok {
		return m
	}
	return r.resolvePrefix(p)
}

// Decisions returns the final target-decision map, module prefix to chosen
// root. It is nil before commit.
func (r *Run) Decisions() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.committed {
		return nil
	}
	out := make(map[string]string, len(r.decisions))
	for m, root := range r.decisions {
		out[m] = root
	}
	return out
}

// DetectedRoots returns, per module, the sorted list of detected roots.
func (r *Run) DetectedRoots() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]string, len(r.detected))
	for module, patterns := range r.detected {
		roots := make([]string, 0, len(patterns))
		for pattern := range patterns {
			roots = append(roots, joinPrefix(module, pattern))
		}
		sort.Strings(roots)
		out[module] = roots
	}
	return out
}

// Diagnostics returns the advisory diagnostics collected at commit.
func (r *Run) Diagnostics() []fragment.Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]fragment.Diagnostic(nil), r.diags...)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
