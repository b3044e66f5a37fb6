package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/entity"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

type testCatalog struct {
	entity.Catalog
}

type mockCatalogRepo struct {
	byID map[id.ID]*testCatalog

	created  []*testCatalog
	updated  []*testCatalog
	inactive []id.ID

	createErr error
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{byID: make(map[id.ID]*testCatalog)}
}

func (m *mockCatalogRepo) Create(ctx context.Context, e *testCatalog) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, e)
	m.byID[e.ID] = e
	return nil
}

func (m *mockCatalogRepo) GetByID(ctx context.Context, entityID id.ID) (*testCatalog, error) {
	e, ok := m.byID[entityID]
	if !ok {
		return nil, apperror.NewNotFound("entity", entityID.String())
	}
	return e, nil
}

func (m *mockCatalogRepo) Update(ctx context.Context, e *testCatalog) error {
	m.updated = append(m.updated, e)
	return nil
}

func (m *mockCatalogRepo) SetActive(ctx context.Context, entityID id.ID, active bool) error {
	if !active {
		m.inactive = append(m.inactive, entityID)
	}
	return nil
}

func (m *mockCatalogRepo) List(ctx context.Context, filter ListFilter) (ListResult[*testCatalog], error) {
	items := make([]*testCatalog, 0, len(m.byID))
	for _, e := range m.byID {
		items = append(items, e)
	}
	return ListResult[*testCatalog]{Items: items, TotalCount: int64(len(items))}, nil
}

func (m *mockCatalogRepo) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	_, ok := m.byID[entityID]
	return ok, nil
}

func (m *mockCatalogRepo) ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	for _, e := range m.byID {
		if e.Name == name && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *mockCatalogRepo) *CatalogService[*testCatalog] {
	return NewCatalogService(CatalogServiceConfig[*testCatalog]{
		Repo:       repo,
		TxManager:  noopTx{},
		EntityName: "widget",
	})
}

func TestCatalogServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid entity is stored", func(t *testing.T) {
		repo := newMockCatalogRepo()
		svc := newTestService(repo)

		e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
		require.NoError(t, svc.Create(ctx, e))
		assert.Len(t, repo.created, 1)
	})

	t.Run("invalid entity is rejected before storage", func(t *testing.T) {
		repo := newMockCatalogRepo()
		svc := newTestService(repo)

		e := &testCatalog{Catalog: entity.NewCatalog("")}
		err := svc.Create(ctx, e)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
		assert.Empty(t, repo.created)
	})

	t.Run("before-create hook can veto", func(t *testing.T) {
		repo := newMockCatalogRepo()
		svc := newTestService(repo)
		svc.Hooks().OnBeforeCreate(func(ctx context.Context, e *testCatalog) error {
			return apperror.NewDuplicate("widget", "name", e.Name)
		})

		e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
		err := svc.Create(ctx, e)
		assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))
		assert.Empty(t, repo.created)
	})

	t.Run("failing after-create hook does not fail the call", func(t *testing.T) {
		repo := newMockCatalogRepo()
		svc := newTestService(repo)
		svc.Hooks().OnAfterCreate(func(ctx context.Context, e *testCatalog) error {
			return errors.New("cache refresh failed")
		})

		e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
		assert.NoError(t, svc.Create(ctx, e))
		assert.Len(t, repo.created, 1)
	})
}

func TestCatalogServiceGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newMockCatalogRepo()
	svc := newTestService(repo)

	e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
	require.NoError(t, svc.Create(ctx, e))

	got, err := svc.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	// not-found carries the service's entity name
	_, err = svc.GetByID(ctx, id.New())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, "widget")
}

func TestCatalogServiceUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newMockCatalogRepo()
	svc := newTestService(repo)

	e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
	require.NoError(t, svc.Create(ctx, e))

	e.Name = "Acme Corp"
	require.NoError(t, svc.Update(ctx, e))
	assert.Len(t, repo.updated, 1)

	e.Name = ""
	err := svc.Update(ctx, e)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestCatalogServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMockCatalogRepo()
	svc := newTestService(repo)

	e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
	require.NoError(t, svc.Create(ctx, e))

	require.NoError(t, svc.Delete(ctx, e.ID))
	assert.Equal(t, []id.ID{e.ID}, repo.inactive)

	err := svc.Delete(ctx, id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCatalogServiceDeleteHookVeto(t *testing.T) {
	ctx := context.Background()
	repo := newMockCatalogRepo()
	svc := newTestService(repo)
	svc.Hooks().On(BeforeDelete, func(ctx context.Context, e *testCatalog) error {
		return apperror.NewBusinessRule("IN_USE", "widget is referenced")
	})

	e := &testCatalog{Catalog: entity.NewCatalog("Acme")}
	require.NoError(t, svc.Create(ctx, e))

	err := svc.Delete(ctx, e.ID)
	require.Error(t, err)
	assert.Empty(t, repo.inactive)
}
