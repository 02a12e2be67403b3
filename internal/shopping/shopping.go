package shopping

import (
	"errors"
	"sort"
	"time"
)

// CreatedAtLayout is how list creation times are persisted.
const CreatedAtLayout = time.DateTime

var (
	ErrNotFound     = errors.New("shopping list not found")
	ErrItemNotFound = errors.New("shopping item not found")
	ErrEmptyName    = errors.New("name must not be empty")
	ErrListClosed   = errors.New("shopping list is closed")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type List struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Status    Status
}

type Item struct {
	ID       int64
	ListID   int64
	Product  string
	Quantity string
	Store    string
	Checked  bool
}

type ItemParams struct {
	Product  string
	Quantity string
	Store    string
}

// StoreGroup is the items bought in one store.
type StoreGroup struct {
	Store string
	Items []Item
}

// GroupByStore buckets items by store, sorted by store name. Items without a
// store land under unassigned, which always comes last.
func GroupByStore(items []Item, unassigned string) []StoreGroup {
	index := make(map[string]int)

	var groups []StoreGroup

	for _, item := range items {
		name := item.Store
		if name == "" {
			name = unassigned
		}

		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, StoreGroup{Store: name})
		}

		groups[i].Items = append(groups[i].Items, item)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if (groups[a].Store == unassigned) != (groups[b].Store == unassigned) {
			return groups[b].Store == unassigned
		}

		return groups[a].Store < groups[b].Store
	})

	return groups
}
