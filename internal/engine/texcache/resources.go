package texcache

import (
	"time"

	"go.trai.ch/texcache/internal/core/domain"
)

type entry struct {
	id        domain.HandleID
	key       domain.ContentKey
	image     domain.Image
	info      domain.TextureInfo
	createdAt time.Time
	linked    bool
}

func (e *entry) view() domain.Texture {
	return domain.Texture{ID: e.id, Key: e.key, Info: e.info}
}

// resources owns the decoded textures and the handle aliases recorded for them.
// It is not synchronized; the Cache holds its lock around every call.
type resources struct {
	textures map[domain.ContentKey]*entry
	handles  map[domain.HandleID]domain.ContentKey

	aliases   map[domain.HandleID]domain.ContentKey
	aliasedBy map[domain.ContentKey]map[domain.HandleID]struct{}

	pixelBytes int64
}

func newResources() *resources {
	return &resources{
		textures:  make(map[domain.ContentKey]*entry),
		handles:   make(map[domain.HandleID]domain.ContentKey),
		aliases:   make(map[domain.HandleID]domain.ContentKey),
		aliasedBy: make(map[domain.ContentKey]map[domain.HandleID]struct{}),
	}
}

func (r *resources) get(key domain.ContentKey) (*entry, bool) {
	e, ok := r.textures[key]
	return e, ok
}

// put stores e unless a texture already exists under its key.
// It returns the entry that is live for the key afterwards and whether e was stored.
func (r *resources) put(e *entry) (*entry, bool) {
	if existing, ok := r.textures[e.key]; ok {
		return existing, false
	}
	r.textures[e.key] = e
	r.handles[e.id] = e.key
	r.pixelBytes += int64(e.image.Size())
	return e, true
}

func (r *resources) resolve(id domain.HandleID) (*entry, bool) {
	key, ok := r.handles[id]
	if !ok {
		key, ok = r.aliases[id]
	}
	if !ok {
		return nil, false
	}
	return r.get(key)
}

func (r *resources) alias(id domain.HandleID, key domain.ContentKey) {
	if prev, ok := r.aliases[id]; ok {
		if prev == key {
			return
		}
		r.unlinkAlias(id, prev)
	}
	r.aliases[id] = key

	set, ok := r.aliasedBy[key]
	if !ok {
		set = make(map[domain.HandleID]struct{})
		r.aliasedBy[key] = set
	}
	set[id] = struct{}{}
}

func (r *resources) unlinkAlias(id domain.HandleID, key domain.ContentKey) {
	set := r.aliasedBy[key]
	delete(set, id)
	if len(set) == 0 {
		delete(r.aliasedBy, key)
	}
}

func (r *resources) lookup(id domain.HandleID) (domain.ContentKey, bool) {
	key, ok := r.aliases[id]
	return key, ok
}

// remove drops the texture stored under key together with its info and every alias
// pointing at it.
func (r *resources) remove(key domain.ContentKey) (*entry, bool) {
	e, ok := r.textures[key]
	if !ok {
		return nil, false
	}

	delete(r.textures, key)
	delete(r.handles, e.id)
	for id := range r.aliasedBy[key] {
		delete(r.aliases, id)
	}
	delete(r.aliasedBy, key)
	r.pixelBytes -= int64(e.image.Size())

	return e, true
}

// unlinkedBefore returns the keys of textures never linked to an owner and created
// before cutoff.
func (r *resources) unlinkedBefore(cutoff time.Time) []domain.ContentKey {
	var keys []domain.ContentKey
	for key, e := range r.textures {
		if !e.linked && e.createdAt.Before(cutoff) {
			keys = append(keys, key)
		}
	}
	return keys
}
