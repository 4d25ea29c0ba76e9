// Package traversal provides a pluggable step pipeline for walking data.
//
// A traversal is built from a Source and an ordered chain of steps. Each step
// transforms, expands or filters the traversers flowing through it, and the
// chain is evaluated lazily: nothing runs until the terminus is pulled, and
// each pull advances the chain just far enough to produce one result. This
// keeps memory flat regardless of how many items the source can offer.
//
// Steps are plain values implementing one of the transform capabilities (Map,
// FlatMap, Filter), so a host engine can register its own step variants next
// to the built-in graph steps. Steps accepting runtime configuration
// additionally implement Configuring; their parameters are frozen when the
// traversal starts.
//
// Errors raised inside a step are terminal: the failing Next call surfaces a
// TransformError and the traversal is left closed. Exhaustion is not an
// error; Next simply reports that there is nothing left.
package traversal
