// Package resolve classifies file paths into (module, source-root) pairs and
// picks, per module, the single source root that should receive a generated
// Spring scaffold.
//
// The engine is a two-phase state machine. While a Run is accumulating, paths
// and configuration fragments may arrive in any order; nothing is interpreted.
// Commit is the one-way barrier: it parses all pending fragments, classifies
// every ingested path and reduces each module's detected roots to one target
// decision. After commit the results are read-only and further ingestion is a
// contract violation. Deferring all resolution behind the barrier is what
// makes the outcome independent of scan order.
package resolve
