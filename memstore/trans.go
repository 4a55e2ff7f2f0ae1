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

import (
	"context"
	"sync"

	"github.com/krotik/graphdb/graphutil"
	"github.com/krotik/graphdb/store"
)

/*
txn is the handle returned by Store.Transaction. It embeds a private Store
built from a snapshot of the parent's engine at the moment the transaction
was opened, so every Datastore method is available on it for free and
operates against the private copy - nothing is visible to the parent until
Commit swaps the parent's engine pointer for this one. Dropping the handle
without calling Commit simply lets the private copy become garbage, so an
abandoned transaction aborts on its own.
*/
type txn struct {
	*Store

	parent *Store
	mu     sync.Mutex
	done   bool
}

var _ store.Transaction = (*txn)(nil)

/*
Commit swaps the parent's engine for this transaction's private copy under
the parent's write lock - a single pointer assignment, so from the parent's
perspective the whole transaction becomes visible atomically.
*/
func (t *txn) Commit(ctx context.Context) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return graphutil.New(graphutil.ErrBackend, "transaction already closed")
	}

	t.parent.mu.Lock()
	t.parent.e = t.Store.e
	t.parent.mu.Unlock()

	t.done = true

	return nil
}

/*
Rollback discards this transaction's private copy. It is always safe to
call, including after Commit has already run or failed.
*/
func (t *txn) Rollback(ctx context.Context) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.done = true

	return nil
}
