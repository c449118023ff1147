// Package pbr models a Playback/Record (PBR) session: the raw session buffer,
// the ordered tag records captured in it, and the playback cursor.
//
// Invariants:
// - Tag indices follow recording order and are used for both display and resolution.
// - A CLI-signed tag has at most one pass-through partition.
// - Every value handed out by the Store is an owned copy of backend data.
// - A playback offset of zero always resolves to tag 0.
//
// Usage:
//
//	store := pbr.NewStore(backend)
//	listing, _ := pbr.Show(store)
//	exported, _ := pbr.Export(store)
//	_, _ = listing, exported
package pbr
