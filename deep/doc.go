// Package deep implements the structural traversal engines: cycle-safe deep
// cloning, deep equality, in-place recursive merging, and defaults
// application over the graph value model.
//
// All operations are synchronous and stateless between calls: visited
// bookkeeping lives for exactly one top-level call. The only shared mutable
// resource is the source argument when a shallow key-path option is
// supplied to CloneWith or ApplyToDefaults: those calls transiently detach
// and reattach the listed paths on the source itself, so callers must not
// access that source concurrently during the call. Everything else only
// reads its inputs and is safe to call concurrently on shared inputs.
package deep
