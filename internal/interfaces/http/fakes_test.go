package http_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/gallery-api/internal/domain/entity"
	"github.com/jhoicas/gallery-api/internal/domain/repository"
	"github.com/jhoicas/gallery-api/internal/domain/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y blob store.
// recorder registra el orden de escrituras para verificar "blob primero,
// registro después".
// ──────────────────────────────────────────────────────────────────────────────

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

type fakeCategoryRepo struct {
	mu    sync.Mutex
	items []*entity.Category
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *category
	f.items = append(f.items, &c)
	return nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Category(nil), f.items...), nil
}

var _ repository.TemplateRepository = (*fakeTemplateRepo)(nil)

type fakeTemplateRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Template
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{items: map[string]*entity.Template{}}
}

// Upsert emula el insert-or-overwrite del store: en la sobreescritura se
// preserva created_at y solo avanza updated_at.
func (f *fakeTemplateRepo) Upsert(template *entity.Template) (*entity.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := *template
	if existing, ok := f.items[t.TemplateID]; ok {
		t.CreatedAt = existing.CreatedAt
	}
	f.items[t.TemplateID] = &t
	out := t
	return &out, nil
}

func (f *fakeTemplateRepo) GetByID(id string) (*entity.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	out := *t
	return &out, nil
}

func (f *fakeTemplateRepo) List() ([]*entity.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]*entity.Template, 0, len(f.items))
	for _, t := range f.items {
		out := *t
		list = append(list, &out)
	}
	return list, nil
}

var _ repository.MediaRepository = (*fakeMediaRepo)(nil)

type fakeMediaRepo struct {
	mu         sync.Mutex
	items      []*entity.MediaItem
	rec        *recorder
	failCreate error // si no es nil, Create falla (simula caída del store)
}

func (f *fakeMediaRepo) Create(item *entity.MediaItem) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rec != nil {
		f.rec.add("record:" + item.MediaID)
	}
	m := *item
	f.items = append(f.items, &m)
	return nil
}

func (f *fakeMediaRepo) ListByCategory(categoryID string) ([]*entity.MediaItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.MediaItem
	for _, m := range f.items {
		if m.CategoryID == categoryID {
			out := *m
			list = append(list, &out)
		}
	}
	return list, nil
}

var _ storage.BlobStore = (*fakeBlobStore)(nil)

// fakeBlobStore guarda los blobs en memoria y firma URLs con un contador para
// que cada generación sea distinta, como las URLs firmadas reales.
type fakeBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	rec   *recorder
	signs int
}

func newFakeBlobStore(rec *recorder) *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}, rec: rec}
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rec != nil {
		f.rec.add("blob:" + key)
	}
	f.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (f *fakeBlobStore) SignedGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signs++
	return fmt.Sprintf("https://blobs.test/%s?sig=%d&exp=%d", key, f.signs, int(expires.Seconds())), nil
}

func (f *fakeBlobStore) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.blobs[key]
	return ok
}
