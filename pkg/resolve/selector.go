package resolve

import (
	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/catalog"
)

// selectTargets reduces each module's detected roots to a single placement
// decision. Override declaration order beats the built-in ranking; modules
// whose roots already host the artifact are skipped entirely.
func (r *Run) selectTargets() {
	for _, module := range r.allModules() {
		if r.hasArtifact[module] {
			r.logger.Debug().Str("module", module).Msg("Artifact already present, skipping module")
			continue
		}
		root, ok := r.selectTarget(module)
		if !ok {
			continue
		}
		r.decisions[module] = root
		r.logger.Debug().Str("module", module).Str("root", root).Msg("Selected target root")
	}

	r.applyGlobalDefault()
}

// selectTarget picks one root for a module with at least one detected root.
// Overrides are honored in their declared order, not alphabetically, because
// that order expresses explicit user intent. Without an override hit, the
// built-in ranking decides, with lexicographic root order breaking ties.
func (r *Run) selectTarget(module string) (string, bool) {
	detected := r.detected[module]
	if len(detected) == 0 {
		return "", false
	}

	for _, pattern := range r.overrides.Patterns(module) {
		if _, ok := detected[pattern]; ok {
			return joinPrefix(module, pattern), true
		}
	}

	var best string
	bestPriority := 0
	for pattern := range detected {
		priority := catalog.PriorityOf(pattern)
		root := joinPrefix(module, pattern)
		if best == "" || priority < bestPriority || (priority == bestPriority && root < best) {
			best = root
			bestPriority = priority
		}
	}
	return best, true
}

// applyGlobalDefault covers the degenerate tree with no recognizable layout:
// when exactly one module is still missing the artifact and that module has
// no detected root at all, it receives the global default root.
func (r *Run) applyGlobalDefault() {
	var withoutArtifact []string
	for _, module := range r.allModules() {
		if !r.hasArtifact[module] {
			withoutArtifact = append(withoutArtifact, module)
		}
	}
	if len(withoutArtifact) != 1 {
		return
	}
	module := withoutArtifact[0]
	if _, decided := r.decisions[module]; decided || len(r.detected[module]) > 0 {
		return
	}
	root := joinPrefix(module, catalog.DefaultRoot)
	r.decisions[module] = root
	r.logger.Debug().Str("module", module).Str("root", root).Msg("No root detected, using global default")
}

// allModules returns every module observed in the run, sorted. Modules arise
// from classified paths; a module known only through its fragment still
// appears because fragment paths are part of the inventory.
func (r *Run) allModules() []string {
	seen := make(map[string]struct{})
	for _, module := range r.modules {
		seen[module] = struct{}{}
	}
	return sortedKeys(seen)
}
