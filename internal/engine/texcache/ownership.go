package texcache

import (
	"cmp"
	"slices"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/zerr"
)

type ownerState struct {
	fingerprint domain.Fingerprint
	keys        map[domain.ContentKey]struct{}
}

// ownership tracks which owner references which key, and the reverse.
// A key whose user set is present but empty is unused and will be swept.
type ownership struct {
	owners map[string]*ownerState
	users  map[domain.ContentKey]map[string]struct{}
}

func newOwnership() *ownership {
	return &ownership{
		owners: make(map[string]*ownerState),
		users:  make(map[domain.ContentKey]map[string]struct{}),
	}
}

func (o *ownership) register(ownerID string, fp domain.Fingerprint) error {
	if ownerID == "" || len(fp) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidOwner, "owner needs an id and a fingerprint"), "owner_id", ownerID)
	}
	if _, ok := o.owners[ownerID]; ok {
		return zerr.With(zerr.Wrap(domain.ErrOwnerAlreadyRegistered, "owner is already registered"), "owner_id", ownerID)
	}

	o.owners[ownerID] = &ownerState{
		fingerprint: append(domain.Fingerprint(nil), fp...),
		keys:        make(map[domain.ContentKey]struct{}),
	}
	return nil
}

func (o *ownership) owner(ownerID string, fp domain.Fingerprint) (*ownerState, error) {
	state, ok := o.owners[ownerID]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrOwnerNotFound, "owner is not registered"), "owner_id", ownerID)
	}
	if !state.fingerprint.Equal(fp) {
		return nil, zerr.With(zerr.Wrap(domain.ErrFingerprintMismatch, "owner fingerprint does not match"), "owner_id", ownerID)
	}
	return state, nil
}

func (o *ownership) link(state *ownerState, ownerID string, key domain.ContentKey) bool {
	if _, ok := state.keys[key]; ok {
		return false
	}
	state.keys[key] = struct{}{}

	set, ok := o.users[key]
	if !ok {
		set = make(map[string]struct{})
		o.users[key] = set
	}
	set[ownerID] = struct{}{}
	return true
}

// unregister removes the owner and returns how many keys it released.
func (o *ownership) unregister(ownerID string, fp domain.Fingerprint) (int, error) {
	state, err := o.owner(ownerID, fp)
	if err != nil {
		return 0, err
	}

	for key := range state.keys {
		delete(o.users[key], ownerID)
	}
	delete(o.owners, ownerID)
	return len(state.keys), nil
}

func (o *ownership) unused() []domain.ContentKey {
	var keys []domain.ContentKey
	for key, set := range o.users {
		if len(set) == 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

func (o *ownership) referenced(key domain.ContentKey) bool {
	return len(o.users[key]) > 0
}

func (o *ownership) forget(key domain.ContentKey) {
	delete(o.users, key)
}

func (o *ownership) summaries() []domain.OwnerSummary {
	out := make([]domain.OwnerSummary, 0, len(o.owners))
	for id, state := range o.owners {
		out = append(out, domain.OwnerSummary{
			ID:          id,
			Fingerprint: state.fingerprint,
			Keys:        len(state.keys),
		})
	}
	slices.SortFunc(out, func(a, b domain.OwnerSummary) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
