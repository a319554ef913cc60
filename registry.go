// Copyright (c) 2026 - The Event Horizon authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eventemitter

// Listener is an owner together with its handler chain for an event type.
type Listener struct {
	Owner Owner
	Chain HandlerChain
}

// ownerTable keeps the chains of one event type in the order their owners
// were first added.
type ownerTable struct {
	owners []Owner
	chains map[Owner]HandlerChain
}

func newOwnerTable() *ownerTable {
	return &ownerTable{
		chains: map[Owner]HandlerChain{},
	}
}

func (t *ownerTable) add(h Handler) {
	owner := h.Owner()
	if c, ok := t.chains[owner]; ok {
		t.chains[owner] = c.Add(h)
		return
	}

	t.owners = append(t.owners, owner)
	t.chains[owner] = HandlerChain{h}
}

func (t *ownerTable) remove(h Handler) {
	owner := h.Owner()
	c, ok := t.chains[owner]
	if !ok {
		return
	}

	c, ok = c.Remove(h)
	if !ok {
		return
	}
	if len(c) > 0 {
		t.chains[owner] = c
		return
	}

	// An owner without handlers is never kept.
	delete(t.chains, owner)
	owners := make([]Owner, 0, len(t.owners)-1)
	for _, o := range t.owners {
		if o != owner {
			owners = append(owners, o)
		}
	}
	t.owners = owners
}

func (t *ownerTable) listeners() []Listener {
	ls := make([]Listener, 0, len(t.owners))
	for _, o := range t.owners {
		c := t.chains[o]
		ls = append(ls, Listener{
			Owner: o,
			Chain: append(HandlerChain(nil), c...),
		})
	}

	return ls
}

// registry maps event types to their owner tables.
type registry map[EventType]*ownerTable

func (r registry) add(t EventType, h Handler) {
	table, ok := r[t]
	if !ok {
		table = newOwnerTable()
		r[t] = table
	}

	table.add(h)
}

func (r registry) remove(t EventType, h Handler) {
	if table, ok := r[t]; ok {
		table.remove(h)
	}
}

func (r registry) removeAll(t EventType) {
	if table, ok := r[t]; ok {
		table.owners = nil
		table.chains = map[Owner]HandlerChain{}
	}
}

func (r registry) listeners(t EventType) []Listener {
	table, ok := r[t]
	if !ok {
		return nil
	}

	return table.listeners()
}
