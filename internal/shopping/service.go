package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shopping
type Repository interface {
	CreateList(ctx context.Context, name string, createdAt time.Time) (int64, error)
	// Lists returns lists newest first. An empty status returns every list.
	Lists(ctx context.Context, status Status) ([]List, error)
	GetList(ctx context.Context, id int64) (*List, error)
	SetListStatus(ctx context.Context, id int64, status Status) error
	// DeleteList removes the list together with its items.
	DeleteList(ctx context.Context, id int64) error
	// Items are ordered by store, then product.
	Items(ctx context.Context, listID int64) ([]Item, error)
	AddItem(ctx context.Context, listID int64, params ItemParams) (int64, error)
	UpdateItem(ctx context.Context, id int64, params ItemParams) error
	ToggleItem(ctx context.Context, id int64) error
	DeleteItem(ctx context.Context, id int64) error
}

// ShopRegistry records store names so they can be offered again.
type ShopRegistry interface {
	AddShop(ctx context.Context, name string) error
}

type Service struct {
	repo  Repository
	shops ShopRegistry
	now   func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, shops ShopRegistry, opts ...Option) *Service {
	s := &Service{repo: repo, shops: shops, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create opens a new list. An empty name gets a dated default.
func (s *Service) Create(ctx context.Context, name string) (*List, error) {
	now := s.now().Truncate(time.Second)

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Zakupy " + now.Format("2006-01-02")
	}

	id, err := s.repo.CreateList(ctx, name, now)
	if err != nil {
		return nil, err
	}

	return &List{ID: id, Name: name, CreatedAt: now, Status: StatusOpen}, nil
}

func (s *Service) Lists(ctx context.Context, status Status) ([]List, error) {
	return s.repo.Lists(ctx, status)
}

func (s *Service) Get(ctx context.Context, id int64) (*List, error) {
	return s.repo.GetList(ctx, id)
}

func (s *Service) Items(ctx context.Context, listID int64) ([]Item, error) {
	if _, err := s.repo.GetList(ctx, listID); err != nil {
		return nil, err
	}

	return s.repo.Items(ctx, listID)
}

// AddItem appends a product to an open list and remembers its store.
func (s *Service) AddItem(ctx context.Context, listID int64, params ItemParams) (*Item, error) {
	params, err := normaliseItem(params)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}

	if list.Status == StatusClosed {
		return nil, ErrListClosed
	}

	if params.Store != "" {
		if err := s.shops.AddShop(ctx, params.Store); err != nil {
			return nil, fmt.Errorf("registering shop: %w", err)
		}
	}

	id, err := s.repo.AddItem(ctx, listID, params)
	if err != nil {
		return nil, err
	}

	return &Item{
		ID:       id,
		ListID:   listID,
		Product:  params.Product,
		Quantity: params.Quantity,
		Store:    params.Store,
	}, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, params ItemParams) error {
	params, err := normaliseItem(params)
	if err != nil {
		return err
	}

	if params.Store != "" {
		if err := s.shops.AddShop(ctx, params.Store); err != nil {
			return fmt.Errorf("registering shop: %w", err)
		}
	}

	return s.repo.UpdateItem(ctx, id, params)
}

func (s *Service) ToggleItem(ctx context.Context, id int64) error {
	return s.repo.ToggleItem(ctx, id)
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) Close(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, StatusClosed)
}

func (s *Service) Reopen(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, StatusOpen)
}

func (s *Service) setStatus(ctx context.Context, id int64, status Status) error {
	if err := s.repo.SetListStatus(ctx, id, status); err != nil {
		return err
	}

	slog.DebugContext(ctx, "shopping list status changed", "list_id", id, "status", status)

	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteList(ctx, id)
}

// Text renders the list as plain text grouped by store, ready to paste into a
// message.
func Text(list List, items []Item, unassigned string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "LISTA: %s\n", list.Name)

	for _, group := range GroupByStore(items, unassigned) {
		fmt.Fprintf(&sb, "\n--- %s ---\n", group.Store)

		for _, item := range group.Items {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}

			fmt.Fprintf(&sb, "%s %s (%s)\n", box, strings.ToUpper(item.Product), strings.ToLower(item.Quantity))
		}
	}

	return sb.String()
}

// normaliseItem trims the fields and turns the quantity into "N szt.",
// defaulting to one piece.
func normaliseItem(params ItemParams) (ItemParams, error) {
	params.Product = strings.TrimSpace(params.Product)
	params.Store = strings.TrimSpace(params.Store)

	if params.Product == "" {
		return params, ErrEmptyName
	}

	qty := strings.ToLower(strings.TrimSpace(params.Quantity))
	qty = strings.TrimSpace(strings.NewReplacer("szt.", "", "szt", "").Replace(qty))

	if qty == "" {
		qty = "1"
	}

	params.Quantity = qty + " szt."

	return params, nil
}
