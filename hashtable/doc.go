// SPDX-License-Identifier: MIT
// Package hashtable implements an open-addressing hash table with linear
// probing, tombstone deletion and capacity doubling.
//
// What
//
//   - Table[K, V] maps comparable keys to values with O(1) amortized Insert,
//     Get, Update and Delete.
//   - Hashing is explicit: the caller supplies a Hasher[K] (see Integer,
//     Float, String) so probe sequences are reproducible run to run.
//
// Slots
//
//	Every slot is in exactly one of three states: empty, occupied or
//	tombstone. Delete turns an occupied slot into a tombstone so that probe
//	chains running through it stay intact; Insert may reclaim the first
//	tombstone on its probe path. Only an empty slot ends a probe.
//
// Probing
//
//	The probe sequence for key k is (hash(k) + i) mod capacity for
//	i = 0 … capacity−1. Every walk is bounded by capacity, and the resize
//	policy keeps at least one non-occupied slot in the table.
//
// Resizing
//
//	Before an insertion that would push Len above capacity × loadFactor the
//	table doubles its capacity and re-inserts every occupied slot in storage
//	order. Tombstones are not carried over, so a resize also compacts.
//
// Errors
//
//   - ErrKeyNotFound:   Get, Update or Delete on an absent key.
//   - ErrBadCapacity:   WithCapacity(n) with n < 1.
//   - ErrBadLoadFactor: WithLoadFactor(f) outside the open interval (0, 1).
//
// Concurrency
//
//	A Table is not safe for concurrent use.
package hashtable
