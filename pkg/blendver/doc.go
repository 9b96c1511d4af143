// Package blendver snapshots a single document together with the
// external files it references into a per-document git repository, and
// supports listing, inspecting, reverting and restoring those
// snapshots.
//
// It is a policy layer on top of the git executable: it owns staging,
// dependency filtering and deterministic commit construction, and
// treats everything below that (object store, diff, merge) as the
// backend's business.
package blendver
