package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	AddTransaction(ctx context.Context, params CreateParams) (int64, error)
	UpdateTransaction(ctx context.Context, id int64, params UpdateParams) (bool, error)
	DeleteTransactions(ctx context.Context, ids []int64) error
	GetTransaction(ctx context.Context, id int64) (*Transaction, error)
	AllTransactions(ctx context.Context) ([]*Transaction, error)
	TransactionsBetween(ctx context.Context, start, end time.Time) ([]*Transaction, error)
	ExpensesInRange(ctx context.Context, start, end time.Time, allowed []string) ([]CategoryAmount, error)
	NetBalanceBefore(ctx context.Context, date time.Time) (decimal.Decimal, error)
	TotalCashSavings(ctx context.Context) (decimal.Decimal, error)

	WeeklyLimitForWeek(ctx context.Context, monday time.Time) (WeeklyLimit, bool, error)
	SetWeeklyLimitForWeek(ctx context.Context, limit WeeklyLimit) error
	WeeklyConfig(ctx context.Context) (WeeklyConfig, error)
	SaveWeeklyConfig(ctx context.Context, cfg WeeklyConfig) error
	IsWeeklySystemEnabled(ctx context.Context) (bool, error)
	SetWeeklySystemEnabled(ctx context.Context, enabled bool) error
	BackupConfig(ctx context.Context) (BackupConfig, error)
	SaveBackupConfig(ctx context.Context, cfg BackupConfig) error

	Categories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string, currentMonday time.Time) error
	DeleteCategory(ctx context.Context, name string) error
	People(ctx context.Context) ([]string, error)
	AddPerson(ctx context.Context, name string) error
	Shops(ctx context.Context) ([]string, error)
	AddShop(ctx context.Context, name string) error

	Goals(ctx context.Context) ([]Goal, error)
	AddGoal(ctx context.Context, name string, target decimal.Decimal) (int64, error)
	DeleteGoal(ctx context.Context, id int64) error
	Liabilities(ctx context.Context) ([]Liability, error)
	AddLiability(ctx context.Context, l Liability) (int64, error)
	DeleteLiability(ctx context.Context, id int64) error
	HistoricalCreditors(ctx context.Context) ([]string, error)

	IsMonthLocked(ctx context.Context, month string) (bool, error)
	LockMonth(ctx context.Context, month string) error
	UnlockMonth(ctx context.Context, month string) error
	LockedMonths(ctx context.Context) ([]string, error)

	BeginImport(ctx context.Context) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, params []CreateParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, params []CreateParams) ([]*Transaction, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	labels Labels
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, used to resolve "the current week".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, labels Labels, opts ...Option) *Service {
	s := &Service{repo: repo, labels: labels, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Labels() Labels { return s.labels }

// Repository exposes the underlying store for read-only collaborators such as the aggregator.
func (s *Service) Repository() Repository { return s.repo }

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if !params.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, params.Kind)
	}

	params.Date = Day(params.Date)
	if err := s.ensureUnlocked(ctx, params.Date); err != nil {
		return nil, err
	}

	if params.Kind != KindExpense {
		params.ExcludeFromWeekly = false
	}

	id, err := s.repo.AddTransaction(ctx, params)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		ID:                id,
		Date:              params.Date,
		Kind:              params.Kind,
		Category:          params.Category,
		Description:       params.Description,
		Amount:            params.Amount,
		Currency:          s.labels.Currency,
		ExcludeFromWeekly: params.ExcludeFromWeekly,
	}, nil
}

// AddIncome records income for a person and registers the person.
func (s *Service) AddIncome(ctx context.Context, date time.Time, person, description string, amount decimal.Decimal) (*Transaction, error) {
	person = strings.TrimSpace(person)
	if person != "" {
		if err := s.repo.AddPerson(ctx, person); err != nil {
			return nil, err
		}
	}

	return s.Create(ctx, CreateParams{
		Date:        date,
		Kind:        KindIncome,
		Category:    person,
		Description: description,
		Amount:      amount,
	})
}

func (s *Service) AddExpense(ctx context.Context, date time.Time, category, description string, amount decimal.Decimal, excludeFromWeekly bool) (*Transaction, error) {
	return s.Create(ctx, CreateParams{
		Date:              date,
		Kind:              KindExpense,
		Category:          category,
		Description:       description,
		Amount:            amount,
		ExcludeFromWeekly: excludeFromWeekly,
	})
}

// AddSavings deposits into (or, with withdraw set, takes from) a goal or the cash savings.
func (s *Service) AddSavings(ctx context.Context, date time.Time, target, description string, amount decimal.Decimal, withdraw bool) (*Transaction, error) {
	amount = amount.Abs()
	if withdraw {
		amount = amount.Neg()
	}

	return s.Create(ctx, CreateParams{
		Date:        date,
		Kind:        KindSavings,
		Category:    target,
		Description: description,
		Amount:      amount,
	})
}

func (s *Service) AddRepayment(ctx context.Context, date time.Time, creditor, description string, amount decimal.Decimal) (*Transaction, error) {
	return s.Create(ctx, CreateParams{
		Date:        date,
		Kind:        KindLiabilityRepayment,
		Category:    creditor,
		Description: description,
		Amount:      amount,
	})
}

// TransferSavings moves amount between two savings targets as a withdrawal
// from one and a deposit into the other, written together.
func (s *Service) TransferSavings(ctx context.Context, date time.Time, from, to string, amount decimal.Decimal) ([]*Transaction, error) {
	amount = amount.Abs()
	desc := fmt.Sprintf("%s → %s", from, to)

	return s.CreateBatch(ctx, []CreateParams{
		{Date: date, Kind: KindSavings, Category: from, Description: desc, Amount: amount.Neg()},
		{Date: date, Kind: KindSavings, Category: to, Description: desc, Amount: amount},
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) All(ctx context.Context) ([]*Transaction, error) {
	return s.repo.AllTransactions(ctx)
}

func (s *Service) Between(ctx context.Context, start, end time.Time) ([]*Transaction, error) {
	return s.repo.TransactionsBetween(ctx, Day(start), Day(end))
}

// Update replaces the editable fields of a transaction. An id that no longer
// exists is ignored.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) error {
	existing, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			slog.DebugContext(ctx, "update of missing transaction ignored", "id", id)
			return nil
		}

		return err
	}

	params.Date = Day(params.Date)

	if err := s.ensureUnlocked(ctx, existing.Date); err != nil {
		return err
	}

	if err := s.ensureUnlocked(ctx, params.Date); err != nil {
		return err
	}

	updated, err := s.repo.UpdateTransaction(ctx, id, params)
	if err != nil {
		return err
	}

	if !updated {
		slog.DebugContext(ctx, "update matched no rows", "id", id)
	}

	return nil
}

// Delete removes the given transactions. Unknown ids are skipped.
func (s *Service) Delete(ctx context.Context, ids ...int64) error {
	existing := make([]int64, 0, len(ids))

	for _, id := range ids {
		tx, err := s.repo.GetTransaction(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}

			return err
		}

		if err := s.ensureUnlocked(ctx, tx.Date); err != nil {
			return err
		}

		existing = append(existing, id)
	}

	if len(existing) == 0 {
		return nil
	}

	return s.repo.DeleteTransactions(ctx, existing)
}

func (s *Service) ensureUnlocked(ctx context.Context, date time.Time) error {
	month := MonthKey(date)

	locked, err := s.repo.IsMonthLocked(ctx, month)
	if err != nil {
		return fmt.Errorf("checking month lock: %w", err)
	}

	if locked {
		return fmt.Errorf("%w: %s", ErrMonthLocked, month)
	}

	return nil
}

func (s *Service) IsMonthLocked(ctx context.Context, year int, month time.Month) (bool, error) {
	return s.repo.IsMonthLocked(ctx, MonthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *Service) LockMonth(ctx context.Context, year int, month time.Month) error {
	return s.repo.LockMonth(ctx, MonthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *Service) UnlockMonth(ctx context.Context, year int, month time.Month) error {
	return s.repo.UnlockMonth(ctx, MonthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *Service) LockedMonths(ctx context.Context) ([]string, error) {
	return s.repo.LockedMonths(ctx)
}

// WeekSettings is what the weekly settings form edits for one week.
type WeekSettings struct {
	Enabled    bool
	Monday     time.Time
	Amount     decimal.Decimal
	Categories []string
	// Configured is false when the values were seeded from the global defaults.
	Configured bool
}

// WeekSettings loads the record for the week containing day, or seeds an
// unconfigured week with a zero amount and the default categories.
func (s *Service) WeekSettings(ctx context.Context, day time.Time) (WeekSettings, error) {
	monday := MondayOf(day)

	cfg, err := s.repo.WeeklyConfig(ctx)
	if err != nil {
		return WeekSettings{}, err
	}

	limit, found, err := s.repo.WeeklyLimitForWeek(ctx, monday)
	if err != nil {
		return WeekSettings{}, err
	}

	if !found {
		return WeekSettings{
			Enabled:    cfg.Enabled,
			Monday:     monday,
			Amount:     decimal.Zero,
			Categories: cfg.Categories,
		}, nil
	}

	return WeekSettings{
		Enabled:    cfg.Enabled,
		Monday:     monday,
		Amount:     limit.Amount,
		Categories: limit.Categories,
		Configured: true,
	}, nil
}

// SaveWeekSettings stores the enabled switch and, when enabled, the week's record.
func (s *Service) SaveWeekSettings(ctx context.Context, settings WeekSettings) error {
	if err := s.repo.SetWeeklySystemEnabled(ctx, settings.Enabled); err != nil {
		return err
	}

	if !settings.Enabled {
		return nil
	}

	return s.SetWeeklyLimit(ctx, settings.Monday, settings.Amount, settings.Categories)
}

func (s *Service) SetWeeklyLimit(ctx context.Context, day time.Time, amount decimal.Decimal, categories []string) error {
	return s.repo.SetWeeklyLimitForWeek(ctx, WeeklyLimit{
		Monday:     MondayOf(day),
		Amount:     amount,
		Categories: categories,
	})
}

func (s *Service) WeeklyLimit(ctx context.Context, day time.Time) (WeeklyLimit, bool, error) {
	return s.repo.WeeklyLimitForWeek(ctx, MondayOf(day))
}

func (s *Service) WeeklyConfig(ctx context.Context) (WeeklyConfig, error) {
	return s.repo.WeeklyConfig(ctx)
}

func (s *Service) SaveWeeklyConfig(ctx context.Context, cfg WeeklyConfig) error {
	return s.repo.SaveWeeklyConfig(ctx, cfg)
}

func (s *Service) SetWeeklyEnabled(ctx context.Context, enabled bool) error {
	return s.repo.SetWeeklySystemEnabled(ctx, enabled)
}

// NeedsWeekSetup reports whether the weekly system is on but the current
// week has no limit yet.
func (s *Service) NeedsWeekSetup(ctx context.Context) (bool, error) {
	enabled, err := s.repo.IsWeeklySystemEnabled(ctx)
	if err != nil || !enabled {
		return false, err
	}

	_, found, err := s.repo.WeeklyLimitForWeek(ctx, MondayOf(s.now()))
	if err != nil {
		return false, err
	}

	return !found, nil
}

func (s *Service) BackupConfig(ctx context.Context) (BackupConfig, error) {
	return s.repo.BackupConfig(ctx)
}

func (s *Service) SaveBackupConfig(ctx context.Context, cfg BackupConfig) error {
	return s.repo.SaveBackupConfig(ctx, cfg)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// AddCategory registers a category and adds it to the weekly defaults and
// to the current week's limit when one exists.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	return s.repo.AddCategory(ctx, name, MondayOf(s.now()))
}

// DeleteCategory moves the category's expenses to the fallback category first.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if name == s.labels.Fallback {
		return fmt.Errorf("%w: %s", ErrProtectedCategory, name)
	}

	return s.repo.DeleteCategory(ctx, name)
}

func (s *Service) People(ctx context.Context) ([]string, error) {
	return s.repo.People(ctx)
}

func (s *Service) AddPerson(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	return s.repo.AddPerson(ctx, name)
}

func (s *Service) Shops(ctx context.Context) ([]string, error) {
	return s.repo.Shops(ctx)
}

func (s *Service) AddShop(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	return s.repo.AddShop(ctx, name)
}

func (s *Service) Goals(ctx context.Context) ([]Goal, error) {
	return s.repo.Goals(ctx)
}

// SavingsTargets lists the cash savings label followed by every goal name.
func (s *Service) SavingsTargets(ctx context.Context) ([]string, error) {
	goals, err := s.repo.Goals(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]string, 0, len(goals)+1)
	targets = append(targets, s.labels.CashSavings)

	for _, g := range goals {
		targets = append(targets, g.Name)
	}

	return targets, nil
}

func (s *Service) AddGoal(ctx context.Context, name string, target decimal.Decimal) (*Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("goal: %w", ErrEmptyName)
	}

	id, err := s.repo.AddGoal(ctx, name, target)
	if err != nil {
		return nil, err
	}

	return &Goal{ID: id, Name: name, Target: target}, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	return s.repo.DeleteGoal(ctx, id)
}

func (s *Service) Liabilities(ctx context.Context) ([]Liability, error) {
	return s.repo.Liabilities(ctx)
}

func (s *Service) AddLiability(ctx context.Context, name string, total decimal.Decimal, deadline *time.Time) (*Liability, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("liability: %w", ErrEmptyName)
	}

	l := Liability{Name: name, Total: total, Deadline: deadline}

	id, err := s.repo.AddLiability(ctx, l)
	if err != nil {
		return nil, err
	}

	l.ID = id

	return &l, nil
}

func (s *Service) DeleteLiability(ctx context.Context, id int64) error {
	return s.repo.DeleteLiability(ctx, id)
}

func (s *Service) HistoricalCreditors(ctx context.Context) ([]string, error) {
	return s.repo.HistoricalCreditors(ctx)
}

type ImportResult struct {
	Imported  []*Transaction
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Transaction
}

type dupKey struct {
	Date        string
	Kind        Kind
	Amount      string
	Description string
}

func paramsKey(p CreateParams) dupKey {
	return dupKey{
		Date:        p.Date.Format(DateLayout),
		Kind:        p.Kind,
		Amount:      p.Amount.StringFixed(2),
		Description: p.Description,
	}
}

func transactionKey(t *Transaction) dupKey {
	return dupKey{
		Date:        t.Date.Format(DateLayout),
		Kind:        t.Kind,
		Amount:      t.Amount.StringFixed(2),
		Description: t.Description,
	}
}

// ImportBatch writes params unless some of them duplicate existing rows, in
// which case nothing is written and the conflicts are returned for review.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	if err := s.validateBatch(ctx, params); err != nil {
		return nil, err
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[transactionKey(d)] = d
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		existing, found := lookup[paramsKey(p)]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	txs, err := itx.CreateTransactions(ctx, newParams)
	if err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: txs}, nil
}

// CreateBatch writes every param in one database transaction.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	if err := s.validateBatch(ctx, params); err != nil {
		return nil, err
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	txs, err := itx.CreateTransactions(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return txs, nil
}

func (s *Service) validateBatch(ctx context.Context, params []CreateParams) error {
	checked := make(map[string]bool)

	for i := range params {
		if !params[i].Kind.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidKind, params[i].Kind)
		}

		params[i].Date = Day(params[i].Date)

		if params[i].Kind != KindExpense {
			params[i].ExcludeFromWeekly = false
		}

		month := MonthKey(params[i].Date)
		if checked[month] {
			continue
		}

		if err := s.ensureUnlocked(ctx, params[i].Date); err != nil {
			return err
		}

		checked[month] = true
	}

	return nil
}
