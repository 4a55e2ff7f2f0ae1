/*
 * Graph datastore engine
 *
 * Copyright 2026 Graph Datastore Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package memstore

import "github.com/krotik/graphdb"

/*
indexState models the lifecycle of a single indexed property name:
Undeclared, Scanning, Ready. The in-memory backend resolves concurrent
queries against a name being scanned by blocking: IndexProperty holds
the Store's write lock for its entire scan, so no reader ever
observes the Scanning state - it either sees Undeclared (and fails
NotIndexed) or Ready (and gets a fully populated index). Scanning is kept as
an explicit state anyway, rather than collapsed away, so a future backend
with finer-grained locking has a documented state to key off instead of
inventing one.
*/
type indexState int

const (
	indexUndeclared indexState = iota
	indexScanning
	indexReady
)

/*
propertyIndex is the presence/value index for one property name and one
owner kind. O is uuid.UUID for vertex indexes and data.EdgeKey for edge
indexes - both are comparable, so they work directly as map keys without any
boxing.
*/
type propertyIndex[O comparable] struct {
	state    indexState
	presence map[O]struct{}
	byValue  map[string]map[O]graphdb.Value
}

func newPropertyIndex[O comparable]() *propertyIndex[O] {
	return &propertyIndex[O]{
		state:    indexScanning,
		presence: make(map[O]struct{}),
		byValue:  make(map[string]map[O]graphdb.Value),
	}
}

/*
set records that owner currently holds value for this index's property
name, replacing whatever value it held before - no partial decrements on
overwrite.
*/
func (idx *propertyIndex[O]) set(owner O, value graphdb.Value) {
	idx.unset(owner)
	idx.presence[owner] = struct{}{}

	key := value.IndexKey()
	bucket, ok := idx.byValue[key]
	if !ok {
		bucket = make(map[O]graphdb.Value)
		idx.byValue[key] = bucket
	}
	bucket[owner] = value
}

/*
unset removes owner from this index entirely, wherever its prior value
bucket was.
*/
func (idx *propertyIndex[O]) unset(owner O) {
	if _, ok := idx.presence[owner]; !ok {
		return
	}

	delete(idx.presence, owner)

	for key, bucket := range idx.byValue {
		if _, ok := bucket[owner]; ok {
			delete(bucket, owner)
			if len(bucket) == 0 {
				delete(idx.byValue, key)
			}
			return
		}
	}
}

/*
owners returns every owner currently present in the index, in no particular
order - callers that need a stable order re-sort against the authoritative
data maps.
*/
func (idx *propertyIndex[O]) owners() []O {
	out := make([]O, 0, len(idx.presence))
	for o := range idx.presence {
		out = append(out, o)
	}
	return out
}

/*
ownersWithValue returns every owner whose current value equals value.
*/
func (idx *propertyIndex[O]) ownersWithValue(value graphdb.Value) []O {
	bucket, ok := idx.byValue[value.IndexKey()]
	if !ok {
		return nil
	}

	out := make([]O, 0, len(bucket))
	for o := range bucket {
		out = append(out, o)
	}
	return out
}

/*
clone deep-copies this index, used when a transaction snapshots the engine
state it was opened from.
*/
func (idx *propertyIndex[O]) clone() *propertyIndex[O] {
	out := &propertyIndex[O]{
		state:    idx.state,
		presence: make(map[O]struct{}, len(idx.presence)),
		byValue:  make(map[string]map[O]graphdb.Value, len(idx.byValue)),
	}

	for o := range idx.presence {
		out.presence[o] = struct{}{}
	}
	for k, bucket := range idx.byValue {
		nb := make(map[O]graphdb.Value, len(bucket))
		for o, v := range bucket {
			nb[o] = v
		}
		out.byValue[k] = nb
	}

	return out
}
