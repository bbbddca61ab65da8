package listview

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	serverError "github.com/supakorn-kn/travel-admin/errors"
)

const (
	pageWindowSize = 5
	persistTimeout = 2 * time.Second
)

type Option[T Item] func(m *ListViewModel[T])

// WithStore saves the view state on every change and restores it when the
// model is created.
func WithStore[T Item](store StateStore) Option[T] {
	return func(m *ListViewModel[T]) {
		m.store = store
	}
}

func WithLogger[T Item](logger *slog.Logger) Option[T] {
	return func(m *ListViewModel[T]) {
		m.logger = logger
	}
}

// ListViewModel owns one list: the records loaded from its Source and the
// filtered, sorted and paginated view over them. It is safe for concurrent
// use; calls to the Source run without holding the lock.
type ListViewModel[T Item] struct {
	mu sync.Mutex

	cfg          Config[T]
	fields       map[string]Field[T]
	searchFields []Field[T]
	source       Source[T]
	store        StateStore
	logger       *slog.Logger

	records  []T
	flags    map[string]*rowFlags
	view     ViewState
	filtered []T
	page     []T

	status    Status
	loadSeq   uint64
	notices   []Notice
	noticeSeq int
}

func New[T Item](ctx context.Context, cfg Config[T], source Source[T], opts ...Option[T]) (*ListViewModel[T], error) {

	cfg = cfg.withDefaults()
	fields, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	m := &ListViewModel[T]{
		cfg:          cfg,
		fields:       fields,
		searchFields: cfg.searchFields(fields),
		source:       source,
		flags:        map[string]*rowFlags{},
		status:       StatusIdle,
		view: ViewState{
			SortField:   cfg.DefaultSortField,
			SortOrder:   cfg.DefaultSortOrder,
			CurrentPage: 1,
			PageSize:    cfg.PageSize,
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.Default()
	}
	m.logger = m.logger.With("list", cfg.Name)

	m.restoreView(ctx)
	m.recompute()

	return m, nil
}

func (m *ListViewModel[T]) Name() string {
	return m.cfg.Name
}

func (m *ListViewModel[T]) stateKey() string {
	return "filter:" + m.cfg.Name
}

// restoreView takes search, sort and page size from the store. The page
// itself always starts at 1 since there are no records yet.
func (m *ListViewModel[T]) restoreView(ctx context.Context) {

	if m.store == nil {
		return
	}

	var saved ViewState
	found, err := m.store.Get(ctx, m.stateKey(), &saved)
	if err != nil {
		m.logger.Warn("Restoring list view state failed", "error", err)
		return
	}

	if !found {
		return
	}

	m.view.SearchTerm = saved.SearchTerm
	if m.cfg.canSortBy(m.fields, saved.SortField) && saved.SortOrder.valid() {
		m.view.SortField = saved.SortField
		m.view.SortOrder = saved.SortOrder
	}

	if saved.PageSize > 0 {
		m.view.PageSize = saved.PageSize
	}
}

func (m *ListViewModel[T]) persistView(view ViewState) {

	if m.store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := m.store.Set(ctx, m.stateKey(), view); err != nil {
		m.logger.Warn("Saving list view state failed", "error", err)
	}
}

// SetRecords replaces the collection. The view state is kept and the page
// is clamped to the new range.
func (m *ListViewModel[T]) SetRecords(records []T) {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.setRecords(records)
}

func (m *ListViewModel[T]) setRecords(records []T) {

	m.records = slices.Clone(records)

	// Rows keep their deleting flag so that a reload can not let a second
	// delete through while the first is still running.
	flags := make(map[string]*rowFlags, len(m.records))
	for _, record := range m.records {

		id := record.GetID()
		if old, ok := m.flags[id]; ok && old.deleting {
			flags[id] = &rowFlags{deleting: true}
			continue
		}

		flags[id] = &rowFlags{}
	}

	m.flags = flags
	m.recompute()
}

func (m *ListViewModel[T]) SetSearchTerm(term string) {

	m.mu.Lock()
	m.view.SearchTerm = term
	m.view.CurrentPage = 1
	m.recompute()
	view := m.view
	m.mu.Unlock()

	m.persistView(view)
}

func (m *ListViewModel[T]) ClearSearch() {
	m.SetSearchTerm("")
}

// SetSort sorts by field. An empty order toggles the current order when
// the field is unchanged and falls back to the default order otherwise.
func (m *ListViewModel[T]) SetSort(field string, order SortOrder) error {

	if order != "" && !order.valid() {
		return serverError.SortOrderInvalidError.New(order)
	}

	m.mu.Lock()

	if !m.cfg.canSortBy(m.fields, field) {
		m.mu.Unlock()
		return serverError.SortFieldInvalidError.New(field)
	}

	switch {
	case order != "":
		m.view.SortOrder = order
	case field == m.view.SortField:
		m.view.SortOrder = m.view.SortOrder.toggle()
	default:
		m.view.SortOrder = m.cfg.DefaultSortOrder
	}

	m.view.SortField = field
	m.recompute()
	view := m.view
	m.mu.Unlock()

	m.persistView(view)
	return nil
}

func (m *ListViewModel[T]) ToggleSortOrder() {

	m.mu.Lock()
	field := m.view.SortField
	m.mu.Unlock()

	// The current sort field is always sortable.
	_ = m.SetSort(field, "")
}

func (m *ListViewModel[T]) SetPageSize(pageSize int) error {

	if pageSize < 1 {
		return serverError.PageSizeInvalidError.New(pageSize)
	}

	m.mu.Lock()
	m.view.PageSize = pageSize
	m.view.CurrentPage = 1
	m.recompute()
	view := m.view
	m.mu.Unlock()

	m.persistView(view)
	return nil
}

// SetPage moves to page. It reports false and changes nothing when page is
// outside the current range.
func (m *ListViewModel[T]) SetPage(page int) bool {

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.setPage(page)
}

func (m *ListViewModel[T]) setPage(page int) bool {

	if page < 1 || page > lastPage(len(m.filtered), m.view.PageSize) {
		return false
	}

	m.view.CurrentPage = page
	m.page = paginate(m.filtered, page, m.view.PageSize)

	return true
}

func (m *ListViewModel[T]) NextPage() bool {

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.setPage(m.view.CurrentPage + 1)
}

func (m *ListViewModel[T]) PreviousPage() bool {

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.setPage(m.view.CurrentPage - 1)
}

// Recompute runs filter, sort and paginate over the current records.
func (m *ListViewModel[T]) Recompute() {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.recompute()
}

func (m *ListViewModel[T]) recompute() {

	filtered := filterItems(m.records, m.view.SearchTerm, m.searchFields)
	sortItems(filtered, m.fields[m.view.SortField], m.view.SortOrder)

	m.filtered = filtered
	m.view.CurrentPage = clampPage(m.view.CurrentPage, len(filtered), m.view.PageSize)
	m.page = paginate(filtered, m.view.CurrentPage, m.view.PageSize)
}

// Load fetches the whole collection from the source. When loads overlap
// only the one started last is applied; earlier results are dropped. A
// failed load keeps the records already shown.
func (m *ListViewModel[T]) Load(ctx context.Context) error {

	m.mu.Lock()
	m.loadSeq++
	seq := m.loadSeq
	m.status = StatusLoading
	m.mu.Unlock()

	records, err := m.source.FetchAll(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq != m.loadSeq {
		m.logger.Debug("Dropping stale load result", "sequence", seq, "latest", m.loadSeq)
		return nil
	}

	if err != nil {
		m.status = StatusError
		fetchErr := serverError.FetchFailedError.Wrap(err, m.cfg.Name, err)
		m.addNotice(FetchFailedNotice, fetchErr.Message)
		m.logger.Error("Loading list failed", "error", err)
		return fetchErr
	}

	m.status = StatusIdle
	m.setRecords(records)
	m.logger.Debug("List loaded", "count", len(records))

	return nil
}

func (m *ListViewModel[T]) Status() Status {

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

// Delete removes the record with itemID from the source and then from the
// list. Only one delete may run per record; a failed delete leaves the
// record in place.
func (m *ListViewModel[T]) Delete(ctx context.Context, itemID string) error {

	m.mu.Lock()

	flags, ok := m.flags[itemID]
	if !ok {
		m.mu.Unlock()
		return serverError.ObjectIDNotFoundError.New(itemID)
	}

	if flags.deleting {
		m.mu.Unlock()
		return serverError.DeleteInProgressError.New(itemID)
	}

	flags.deleting = true
	m.mu.Unlock()

	err := m.source.DeleteOne(ctx, itemID)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {

		if flags, ok := m.flags[itemID]; ok {
			flags.deleting = false
		}

		deleteErr := serverError.DeleteFailedError.Wrap(err, itemID, err)
		m.addNotice(DeleteFailedNotice, deleteErr.Message)
		m.logger.Error("Deleting item failed", "item_id", itemID, "error", err)

		return deleteErr
	}

	m.records = slices.DeleteFunc(m.records, func(record T) bool {
		return record.GetID() == itemID
	})
	delete(m.flags, itemID)
	m.recompute()

	m.logger.Info("Item deleted", "item_id", itemID)
	return nil
}

// ToggleExpanded flips the expanded flag of a row and returns the new value.
func (m *ListViewModel[T]) ToggleExpanded(itemID string) (bool, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	flags, ok := m.flags[itemID]
	if !ok {
		return false, serverError.ObjectIDNotFoundError.New(itemID)
	}

	flags.expanded = !flags.expanded
	return flags.expanded, nil
}

func (m *ListViewModel[T]) Row(itemID string) (Row[T], bool) {

	m.mu.Lock()
	defer m.mu.Unlock()

	index := slices.IndexFunc(m.records, func(record T) bool {
		return record.GetID() == itemID
	})
	if index < 0 {
		return Row[T]{}, false
	}

	return m.row(m.records[index]), true
}

func (m *ListViewModel[T]) row(record T) Row[T] {

	row := Row[T]{Record: record}
	if flags, ok := m.flags[record.GetID()]; ok {
		row.Expanded = flags.expanded
		row.Deleting = flags.deleting
	}

	return row
}

func (m *ListViewModel[T]) View() ViewState {

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.view
}

// Records returns the whole collection in load order.
func (m *ListViewModel[T]) Records() []T {

	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.records)
}

// Filtered returns every record that passes the search, in sort order.
func (m *ListViewModel[T]) Filtered() []T {

	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.filtered)
}

// CurrentPage returns the records of the current page.
func (m *ListViewModel[T]) CurrentPage() []T {

	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.page)
}

func (m *ListViewModel[T]) Snapshot() PageData[T] {

	m.mu.Lock()
	defer m.mu.Unlock()

	count := len(m.filtered)
	total := totalPages(count, m.view.PageSize)
	start := (m.view.CurrentPage - 1) * m.view.PageSize

	rows := make([]Row[T], 0, len(m.page))
	for _, record := range m.page {
		rows = append(rows, m.row(record))
	}

	return PageData[T]{
		Page:       m.view.CurrentPage,
		TotalPages: total,
		Count:      count,
		Total:      len(m.records),
		PageSize:   m.view.PageSize,
		StartIndex: min(start, count),
		EndIndex:   min(start+m.view.PageSize, count),
		Pages:      pageWindow(m.view.CurrentPage, total, pageWindowSize),
		SearchTerm: m.view.SearchTerm,
		SortField:  m.view.SortField,
		SortOrder:  m.view.SortOrder,
		Status:     m.status,
		Data:       rows,
	}
}

// ExportCSV renders every filtered record, not only the current page. No
// fields means the list's export fields.
func (m *ListViewModel[T]) ExportCSV(fieldNames ...string) (string, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(fieldNames) == 0 {
		fieldNames = m.cfg.exportFieldNames()
	}

	fields := make([]Field[T], 0, len(fieldNames))
	for _, name := range fieldNames {

		field, ok := m.fields[name]
		if !ok {
			return "", serverError.ExportFieldInvalidError.New(name)
		}

		fields = append(fields, field)
	}

	return writeCSV(m.filtered, fields, m.cfg.Delimiter), nil
}

func (m *ListViewModel[T]) addNotice(kind NoticeKind, message string) {

	m.noticeSeq++
	m.notices = append(m.notices, Notice{
		ID:        m.noticeSeq,
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

func (m *ListViewModel[T]) Notices() []Notice {

	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.notices)
}

// Dismiss removes a notice and reports whether it existed.
func (m *ListViewModel[T]) Dismiss(noticeID int) bool {

	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.notices)
	m.notices = slices.DeleteFunc(m.notices, func(n Notice) bool {
		return n.ID == noticeID
	})

	return len(m.notices) != before
}
