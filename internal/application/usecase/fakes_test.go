package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	mu        sync.Mutex
	items     map[string]*entity.Category
	err       error // si está seteado, toda operación falla con este error
	deleteErr error // falla solo Delete
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetWithProducts(ctx context.Context, id string) (*entity.Category, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeCategoryRepo) List(_ context.Context, f repository.CategoryFilter) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Category
	for _, c := range r.items {
		if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) {
			continue
		}
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, f.Limit, f.Offset), nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context, f repository.CategoryFilter) (int, error) {
	full := f
	full.Limit = len(r.items)
	full.Offset = 0
	list, err := r.List(ctx, full)
	return len(list), err
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Product
	err   error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetWithCategory(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Product
	for _, p := range r.items {
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, f.Limit, f.Offset), nil
}

func (r *fakeProductRepo) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	full := f
	full.Limit = len(r.items)
	full.Offset = 0
	list, err := r.List(ctx, full)
	return len(list), err
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[string]*entity.User
	roles map[string]map[string]bool // userID -> set de roleIDs
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		items: map[string]*entity.User{},
		roles: map[string]map[string]bool{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetWithRelations(ctx context.Context, id string) (*entity.User, error) {
	u, err := r.GetByID(ctx, id)
	if u == nil || err != nil {
		return u, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for roleID := range r.roles[id] {
		ids = append(ids, roleID)
	}
	sort.Strings(ids)
	for _, roleID := range ids {
		u.Roles = append(u.Roles, entity.Role{ID: roleID, Name: roleID})
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.User
	for _, u := range r.items {
		if f.Search != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(f.Search)) {
			continue
		}
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, f.Limit, f.Offset), nil
}

func (r *fakeUserRepo) Count(ctx context.Context, f repository.UserFilter) (int, error) {
	full := f
	full.Limit = len(r.items)
	full.Offset = 0
	list, err := r.List(ctx, full)
	return len(list), err
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	delete(r.roles, id)
	return nil
}

func (r *fakeUserRepo) AssignRoles(_ context.Context, userID string, roleIDs []string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.roles[userID]
	if set == nil {
		set = map[string]bool{}
		r.roles[userID] = set
	}
	for _, id := range roleIDs {
		set[id] = true
	}
	return nil
}

func (r *fakeUserRepo) RemoveRoles(_ context.Context, userID string, roleIDs []string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range roleIDs {
		delete(r.roles[userID], id)
	}
	return nil
}

func (r *fakeUserRepo) rolesOf(userID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id := range r.roles[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type fakeDepartmentRepo struct {
	items map[string]*entity.Department
}

func newFakeDepartmentRepo(depts ...*entity.Department) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{items: map[string]*entity.Department{}}
	for _, d := range depts {
		r.items[d.ID] = d
	}
	return r
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*entity.Department, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

type fakeRoleRepo struct {
	items map[string]*entity.Role
}

func newFakeRoleRepo(roles ...*entity.Role) *fakeRoleRepo {
	r := &fakeRoleRepo{items: map[string]*entity.Role{}}
	for _, ro := range roles {
		r.items[ro.ID] = ro
	}
	return r
}

func (r *fakeRoleRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Role, error) {
	var found []*entity.Role
	for _, id := range ids {
		if ro, ok := r.items[id]; ok {
			found = append(found, ro)
		}
	}
	return found, nil
}

// fakeTxRunner ejecuta el bloque directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	users *fakeUserRepo
	roles *fakeRoleRepo
}

func (r *fakeTxRunner) RunRoles(ctx context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
) error) error {
	return fn(r.users, r.roles)
}

// fakeImageStore registra las rutas borradas.
type fakeImageStore struct {
	mu      sync.Mutex
	deleted []string
	err     error
}

func (s *fakeImageStore) Delete(pathOrURL string) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, pathOrURL)
	return nil
}

func paginate[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
