package stocktaking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
	"github.com/Haarizz/inventory-registries/internal/domain"
	"github.com/Haarizz/inventory-registries/internal/domain/audit"
	"github.com/Haarizz/inventory-registries/internal/domain/catalogs/product"
	"github.com/Haarizz/inventory-registries/internal/domain/notification"
)

// --- Mocks ---

type mockRepo struct {
	records map[id.ID]*StockTaking

	openDraft      bool
	createErr      error
	transitionMove bool
	transitionErr  error
	deleteRemoved  bool

	// reloadStatus overrides the status returned by GetByID calls after
	// reloadAfter reads, simulating a concurrent writer.
	reloadStatus *Status
	reloadAfter  int
	gets         int

	created   []*StockTaking
	updated   []*StockTaking
	inactive  []id.ID
	casCalled int
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[id.ID]*StockTaking), transitionMove: true, deleteRemoved: true}
}

func (m *mockRepo) Create(ctx context.Context, record *StockTaking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, record)
	m.records[record.ID] = record
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, recordID id.ID) (*StockTaking, error) {
	record, ok := m.records[recordID]
	if !ok {
		return nil, apperror.NewNotFound("stock count", recordID.String())
	}
	m.gets++
	copied := *record
	if m.reloadStatus != nil && m.gets > m.reloadAfter {
		copied.Status = *m.reloadStatus
	}
	return &copied, nil
}

func (m *mockRepo) Update(ctx context.Context, record *StockTaking) error {
	m.updated = append(m.updated, record)
	m.records[record.ID] = record
	return nil
}

func (m *mockRepo) TransitionStatus(ctx context.Context, recordID id.ID, from, to Status) (bool, error) {
	m.casCalled++
	if m.transitionErr != nil {
		return false, m.transitionErr
	}
	return m.transitionMove, nil
}

func (m *mockRepo) ExistsOpenDraft(ctx context.Context, productID id.ID) (bool, error) {
	return m.openDraft, nil
}

func (m *mockRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*StockTaking], error) {
	items := make([]*StockTaking, 0, len(m.records))
	for _, r := range m.records {
		items = append(items, r)
	}
	return domain.ListResult[*StockTaking]{Items: items, TotalCount: int64(len(items))}, nil
}

func (m *mockRepo) DeleteDraft(ctx context.Context, recordID id.ID) (bool, error) {
	if !m.deleteRemoved {
		return false, nil
	}
	m.inactive = append(m.inactive, recordID)
	return true, nil
}

type mockProductRepo struct {
	product.Repository

	products map[id.ID]*product.Product
	stocks   map[id.ID]int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products: make(map[id.ID]*product.Product),
		stocks:   make(map[id.ID]int),
	}
}

func (m *mockProductRepo) add(name string, stock int) *product.Product {
	p := product.NewProduct("P-"+name, name, id.New(), id.New(), id.New())
	p.Stock = stock
	m.products[p.ID] = p
	return p
}

func (m *mockProductRepo) FindActiveByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	p, ok := m.products[productID]
	if !ok || !p.Active {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return p, nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return p, nil
}

func (m *mockProductRepo) SetStock(ctx context.Context, productID id.ID, stock int) error {
	m.stocks[productID] = stock
	return nil
}

// passthroughTx runs the callback without a database.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockDispatcher struct {
	batches [][]*notification.Notification
}

func (m *mockDispatcher) Dispatch(ctx context.Context, items []*notification.Notification) {
	m.batches = append(m.batches, items)
}

func (m *mockDispatcher) all() []*notification.Notification {
	var out []*notification.Notification
	for _, b := range m.batches {
		out = append(out, b...)
	}
	return out
}

type mockApprovers struct {
	usernames []string
	err       error
}

func (m *mockApprovers) ApproverUsernames(ctx context.Context) ([]string, error) {
	return m.usernames, m.err
}

type mockAuditor struct {
	entries []*audit.Entry
}

func (m *mockAuditor) Record(ctx context.Context, entry *audit.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditor) actions() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Action
	}
	return out
}

type fixture struct {
	repo       *mockRepo
	products   *mockProductRepo
	dispatcher *mockDispatcher
	approvers  *mockApprovers
	auditor    *mockAuditor
	service    *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:       newMockRepo(),
		products:   newMockProductRepo(),
		dispatcher: &mockDispatcher{},
		approvers:  &mockApprovers{usernames: []string{"manager", "boss"}},
		auditor:    &mockAuditor{},
	}
	f.service = NewService(f.repo, f.products, passthroughTx{}, f.dispatcher, f.approvers, f.auditor)
	return f
}

// --- Create ---

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots system stock and variance", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)

		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 95}, "alice")
		require.NoError(t, err)

		assert.Equal(t, 100, record.SystemStock)
		assert.Equal(t, 95, record.PhysicalStock)
		assert.Equal(t, -5, record.Variance)
		assert.Equal(t, StatusDraft, record.Status)
		assert.Equal(t, "alice", record.CreatedBy)
		assert.Len(t, f.repo.created, 1)
		assert.Equal(t, []string{"create"}, f.auditor.actions())
	})

	t.Run("notifies approvers but not the creator", func(t *testing.T) {
		f := newFixture()
		f.approvers.usernames = []string{"manager", "alice"}
		prod := f.products.add("Widget", 10)

		_, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 12}, "alice")
		require.NoError(t, err)

		notices := f.dispatcher.all()
		require.Len(t, notices, 1)
		assert.Equal(t, "manager", notices[0].Recipient)
		assert.Equal(t, notification.CategoryApproval, notices[0].Category)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Create(ctx, CreateInput{ProductID: id.New(), PhysicalStock: 5}, "alice")
		assert.True(t, apperror.IsNotFound(err))
		assert.Empty(t, f.repo.created)
	})

	t.Run("open draft blocks a second one", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 10)
		f.repo.openDraft = true

		_, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 5}, "alice")
		assert.True(t, apperror.HasCode(err, apperror.CodeConflictingDraft))
	})

	t.Run("storage conflict from a concurrent draft", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 10)
		f.repo.createErr = apperror.NewConflictingDraft(prod.ID.String())

		_, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 5}, "bob")
		assert.True(t, apperror.HasCode(err, apperror.CodeConflictingDraft))
		assert.Empty(t, f.dispatcher.batches)
	})

	t.Run("negative physical stock", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 10)

		_, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: -1}, "alice")
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	})
}

// --- Approve / Reject ---

func TestServiceApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("draft approved", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)
		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 95}, "alice")
		require.NoError(t, err)

		approved, err := f.service.Approve(ctx, record.ID, "manager")
		require.NoError(t, err)

		assert.Equal(t, StatusApproved, approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, "manager", *approved.ApprovedBy)
		assert.Contains(t, f.auditor.actions(), "approve")

		// submitter gets an info notice
		last := f.dispatcher.batches[len(f.dispatcher.batches)-1]
		require.Len(t, last, 1)
		assert.Equal(t, "alice", last[0].Recipient)
		assert.Equal(t, notification.CategoryInfo, last[0].Category)
	})

	t.Run("approving twice fails", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)
		record, _ := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 90}, "alice")

		_, err := f.service.Approve(ctx, record.ID, "manager")
		require.NoError(t, err)

		_, err = f.service.Approve(ctx, record.ID, "boss")
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
	})

	t.Run("unknown record", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.Approve(ctx, id.New(), "manager")
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestServiceReject(t *testing.T) {
	ctx := context.Background()

	f := newFixture()
	prod := f.products.add("Widget", 100)
	record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 120}, "alice")
	require.NoError(t, err)

	rejected, err := f.service.Reject(ctx, record.ID, "manager")
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, rejected.Status)
	assert.Nil(t, rejected.ApprovedBy)
	assert.Contains(t, f.auditor.actions(), "reject")

	// rejection reaches the submitter with a warning
	last := f.dispatcher.batches[len(f.dispatcher.batches)-1]
	require.Len(t, last, 1)
	assert.Equal(t, "alice", last[0].Recipient)
	assert.Equal(t, notification.CategoryWarning, last[0].Category)

	// rejected records are terminal
	_, err = f.service.Approve(ctx, record.ID, "manager")
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
}

// --- Apply ---

func TestServiceApply(t *testing.T) {
	ctx := context.Background()

	setup := func(f *fixture) (*product.Product, *StockTaking) {
		prod := f.products.add("Widget", 100)
		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 95}, "alice")
		require.NoError(t, err)
		_, err = f.service.Approve(ctx, record.ID, "manager")
		require.NoError(t, err)
		return prod, record
	}

	t.Run("writes the counted quantity to the ledger", func(t *testing.T) {
		f := newFixture()
		prod, record := setup(f)

		applied, err := f.service.Apply(ctx, record.ID, "manager")
		require.NoError(t, err)

		assert.Equal(t, StatusApplied, applied.Status)
		assert.Equal(t, 95, f.products.stocks[prod.ID])
		assert.Equal(t, 1, f.repo.casCalled)
		assert.Contains(t, f.auditor.actions(), "apply")
	})

	t.Run("notifies the submitter but not the applier", func(t *testing.T) {
		f := newFixture()
		_, record := setup(f)

		_, err := f.service.Apply(ctx, record.ID, "manager")
		require.NoError(t, err)

		last := f.dispatcher.batches[len(f.dispatcher.batches)-1]
		require.Len(t, last, 1)
		assert.Equal(t, "alice", last[0].Recipient)
	})

	t.Run("draft cannot be applied", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)
		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 90}, "alice")
		require.NoError(t, err)

		_, err = f.service.Apply(ctx, record.ID, "manager")
		assert.True(t, apperror.HasCode(err, apperror.CodeNotApproved))
		assert.Empty(t, f.products.stocks)
	})

	t.Run("concurrent apply loser sees already applied", func(t *testing.T) {
		f := newFixture()
		prod, record := setup(f)

		// the record still reads approved, but another worker wins the
		// compare-and-set; the reload shows the applied row
		applied := StatusApplied
		f.repo.transitionMove = false
		f.repo.reloadStatus = &applied
		f.repo.reloadAfter = f.repo.gets + 1

		_, err := f.service.Apply(ctx, record.ID, "boss")
		assert.True(t, apperror.HasCode(err, apperror.CodeAlreadyApplied))
		assert.Equal(t, 1, f.repo.casCalled)
		assert.NotContains(t, f.products.stocks, prod.ID)
	})

	t.Run("already applied record fails fast", func(t *testing.T) {
		f := newFixture()
		_, record := setup(f)

		_, err := f.service.Apply(ctx, record.ID, "manager")
		require.NoError(t, err)

		casBefore := f.repo.casCalled
		stored := f.repo.records[record.ID]
		stored.Status = StatusApplied

		_, err = f.service.Apply(ctx, record.ID, "boss")
		assert.True(t, apperror.HasCode(err, apperror.CodeAlreadyApplied))
		assert.Equal(t, casBefore, f.repo.casCalled)
	})

	t.Run("cas miss on a rejected row reports not approved", func(t *testing.T) {
		f := newFixture()
		_, record := setup(f)

		rejected := StatusRejected
		f.repo.transitionMove = false
		f.repo.reloadStatus = &rejected
		f.repo.reloadAfter = f.repo.gets + 1

		_, err := f.service.Apply(ctx, record.ID, "boss")
		assert.True(t, apperror.HasCode(err, apperror.CodeNotApproved))
	})
}

// --- Delete ---

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("draft is soft deleted", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)
		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 90}, "alice")
		require.NoError(t, err)

		require.NoError(t, f.service.Delete(ctx, record.ID, "alice"))
		assert.Equal(t, []id.ID{record.ID}, f.repo.inactive)
		assert.Contains(t, f.auditor.actions(), "delete")
	})

	t.Run("approved record is kept", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)
		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 90}, "alice")
		require.NoError(t, err)
		_, err = f.service.Approve(ctx, record.ID, "manager")
		require.NoError(t, err)

		err = f.service.Delete(ctx, record.ID, "alice")
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
		assert.Empty(t, f.repo.inactive)
	})

	t.Run("concurrent approval keeps the record", func(t *testing.T) {
		f := newFixture()
		prod := f.products.add("Widget", 100)
		record, err := f.service.Create(ctx, CreateInput{ProductID: prod.ID, PhysicalStock: 90}, "alice")
		require.NoError(t, err)

		// The first load still sees a draft; the guarded update loses
		// to an approval committed in between.
		approved := StatusApproved
		f.repo.deleteRemoved = false
		f.repo.reloadStatus = &approved
		f.repo.reloadAfter = f.repo.gets + 1

		err = f.service.Delete(ctx, record.ID, "alice")
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidTransition))
		assert.Empty(t, f.repo.inactive)
		assert.NotContains(t, f.auditor.actions(), "delete")
	})
}
