package shop

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/store"
	"storefront/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Publisher receives a snapshot after every change.
type Publisher interface {
	Publish(Snapshot)
}

type Options struct {
	Logger    zerolog.Logger
	Now       func() time.Time
	NewID     func() string
	Publisher Publisher
}

// Storefront runs State operations one at a time, writes the keys each
// operation touched and publishes the resulting snapshot.
type Storefront struct {
	mu      sync.Mutex
	state   *State
	store   store.Store
	version uint64

	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
	publisher Publisher
}

func NewStorefront(st store.Store, opts Options) *Storefront {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Storefront{
		state:     NewState(),
		store:     st,
		log:       opts.Logger,
		now:       opts.Now,
		newID:     opts.NewID,
		publisher: opts.Publisher,
	}
}

// SetPublisher swaps the snapshot subscriber.
func (f *Storefront) SetPublisher(p Publisher) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.publisher = p
}

// Restore reloads session, cart and ledger from the store. Unreadable keys
// start empty and are reported as persistence warnings.
func (f *Storefront) Restore(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	var session models.SessionUser
	if ok, err := store.Load(ctx, f.store, store.KeyCurrentUser, &session); err != nil {
		errs = append(errs, &PersistenceError{Key: store.KeyCurrentUser, Err: err})
	} else if ok && session.ID != "" {
		f.state.Session = &session
	}
	if _, err := store.Load(ctx, f.store, store.KeyCart, &f.state.Cart); err != nil {
		f.state.Cart = nil
		errs = append(errs, &PersistenceError{Key: store.KeyCart, Err: err})
	}
	if _, err := store.Load(ctx, f.store, store.KeyPurchases, &f.state.Purchases); err != nil {
		f.state.Purchases = nil
		errs = append(errs, &PersistenceError{Key: store.KeyPurchases, Err: err})
	}

	f.log.Info().
		Bool("signed_in", f.state.Session != nil).
		Int("cart_lines", len(f.state.Cart)).
		Int("purchases", len(f.state.Purchases)).
		Msg("storefront state restored")
	return errors.Join(errs...)
}

// LoadCatalog fetches the catalog once and publishes the first full snapshot.
// On failure the catalog stays empty.
func (f *Storefront) LoadCatalog(ctx context.Context, source string, client *http.Client) error {
	c, err := catalog.Load(ctx, source, client)
	if err != nil {
		f.log.Error().Err(err).Str("source", source).Msg("catalog load failed")
		return err
	}
	for _, rejected := range c.Rejected() {
		f.log.Warn().Err(rejected).Str("source", source).Msg("product left out of catalog")
	}
	f.SetCatalog(c)
	f.log.Info().Str("source", source).Int("products", c.Len()).Msg("catalog loaded")
	return nil
}

func (f *Storefront) SetCatalog(c *catalog.Catalog) Snapshot {
	return f.view(func(s *State) { s.SetCatalog(c) })
}

// view runs a non-persistent operation and publishes the result.
func (f *Storefront) view(op func(*State)) Snapshot {
	f.mu.Lock()
	op(f.state)
	f.version++
	snap := f.snapshotLocked()
	pub := f.publisher
	f.mu.Unlock()

	if pub != nil {
		pub.Publish(snap)
	}
	return snap
}

// mutate runs op and, when op reports a change, persists keys and publishes.
// An op may report a change together with an error; that error is a warning
// and is returned alongside any persistence failures.
func (f *Storefront) mutate(ctx context.Context, op func(*State) (bool, error), keys ...string) (Snapshot, error) {
	f.mu.Lock()
	changed, err := op(f.state)
	if changed {
		err = errors.Join(err, f.persist(ctx, keys...))
		f.version++
	}
	snap := f.snapshotLocked()
	pub := f.publisher
	f.mu.Unlock()

	if changed && pub != nil {
		pub.Publish(snap)
	}
	return snap, err
}

// persist writes keys from the current state. Callers hold f.mu.
func (f *Storefront) persist(ctx context.Context, keys ...string) error {
	var errs []error
	for _, key := range keys {
		var err error
		switch key {
		case store.KeyCart:
			err = store.Save(ctx, f.store, key, nonNil(f.state.Cart))
		case store.KeyPurchases:
			err = store.Save(ctx, f.store, key, nonNil(f.state.Purchases))
		case store.KeyCurrentUser:
			if f.state.Session == nil {
				err = f.store.Delete(ctx, key)
			} else {
				err = store.Save(ctx, f.store, key, f.state.Session)
			}
		}
		if err != nil {
			f.log.Warn().Err(err).Str("key", key).Msg("state not persisted")
			errs = append(errs, &PersistenceError{Key: key, Err: err})
		}
	}
	return errors.Join(errs...)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (f *Storefront) loadDirectory(ctx context.Context) (Directory, error) {
	var d Directory
	if _, err := store.Load(ctx, f.store, store.KeyUsers, &d); err != nil {
		f.log.Error().Err(err).Msg("user directory not readable")
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	return d, nil
}

func (f *Storefront) saveDirectory(ctx context.Context, d Directory) error {
	if err := store.Save(ctx, f.store, store.KeyUsers, d); err != nil {
		f.log.Warn().Err(err).Msg("user directory not persisted")
		return &PersistenceError{Key: store.KeyUsers, Err: err}
	}
	return nil
}

// Snapshot returns the current renderer view.
func (f *Storefront) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Storefront) snapshotLocked() Snapshot {
	snap := f.state.Snapshot()
	snap.Version = f.version
	return snap
}

// Session returns a copy of the current identity, nil when anonymous.
func (f *Storefront) Session() *models.SessionUser {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Session == nil {
		return nil
	}
	cp := *f.state.Session
	return &cp
}

func (f *Storefront) Product(id int) (models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Catalog.Get(id)
}

func (f *Storefront) Categories() []models.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return catalog.Categories(f.state.Catalog.Products())
}

func (f *Storefront) FlashSale() []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return catalog.FlashSale(f.state.Catalog.Products())
}

func (f *Storefront) Suggestions(term string) []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return catalog.Suggestions(f.state.Catalog.Products(), term)
}

func (f *Storefront) Cart() models.CartSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.CartSummary()
}

func (f *Storefront) Ledger() models.LedgerSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.LedgerSummary()
}

// Browsing intents. None of them are persisted.

func (f *Storefront) SetCategory(category string) Snapshot {
	return f.view(func(s *State) { s.SetCategory(category) })
}

func (f *Storefront) SetFilters(c catalog.FilterCriteria) Snapshot {
	return f.view(func(s *State) { s.SetFilters(c) })
}

func (f *Storefront) SetSearchTerm(term string) Snapshot {
	return f.view(func(s *State) { s.SetSearchTerm(term) })
}

func (f *Storefront) ResetFilters() Snapshot {
	return f.view(func(s *State) { s.ResetFilters() })
}

func (f *Storefront) SortProducts(key catalog.SortKey) Snapshot {
	return f.view(func(s *State) { s.SortProducts(key) })
}

func (f *Storefront) SetCurrentPage(page int) Snapshot {
	return f.view(func(s *State) { s.SetCurrentPage(page) })
}

// Cart and ledger.

// AddToCart returns ErrProductNotFound when the id is not in the catalog.
func (f *Storefront) AddToCart(ctx context.Context, productID, quantity int) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		if !s.AddToCart(productID, quantity) {
			return false, ErrProductNotFound
		}
		return true, nil
	}, store.KeyCart)
}

func (f *Storefront) RemoveFromCart(ctx context.Context, productID int) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		return s.RemoveFromCart(productID), nil
	}, store.KeyCart)
}

func (f *Storefront) UpdateQuantity(ctx context.Context, productID, quantity int) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		return s.UpdateQuantity(productID, quantity), nil
	}, store.KeyCart)
}

// Checkout moves the selected lines to the ledger in one step.
func (f *Storefront) Checkout(ctx context.Context, productIDs []int) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		records := s.Checkout(productIDs, f.now())
		if len(records) == 0 {
			return false, nil
		}
		amount := decimal.Zero
		for _, r := range records {
			amount = amount.Add(r.Amount())
		}
		f.log.Info().Int("lines", len(records)).Str("amount", amount.String()).Msg("checkout")
		return true, nil
	}, store.KeyCart, store.KeyPurchases)
}

func (f *Storefront) BuyNow(ctx context.Context, productID, quantity int) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		if _, err := s.BuyNow(productID, quantity, f.now()); err != nil {
			return false, err
		}
		return true, nil
	}, store.KeyPurchases)
}

func (f *Storefront) ClearPurchases(ctx context.Context) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		s.ClearPurchases()
		return true, nil
	}, store.KeyPurchases)
}

// Session.

// Register creates an account and signs it in.
func (f *Storefront) Register(ctx context.Context, r Registration) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		d, err := f.loadDirectory(ctx)
		if err != nil {
			return false, err
		}
		next, account, err := Register(d, r, f.newID(), f.now())
		if err != nil {
			return false, err
		}
		s.SignIn(account)
		f.log.Info().Str("user_id", account.ID).Msg("account registered")
		return true, f.saveDirectory(ctx, next)
	}, store.KeyCurrentUser)
}

// Login replaces the session on success and leaves it untouched on failure.
func (f *Storefront) Login(ctx context.Context, email, password string) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		d, err := f.loadDirectory(ctx)
		if err != nil {
			return false, err
		}
		account, err := Login(d, email, password)
		if err != nil {
			return false, err
		}
		s.SignIn(account)
		return true, nil
	}, store.KeyCurrentUser)
}

// Logout always succeeds in memory; the persisted identity is removed.
func (f *Storefront) Logout(ctx context.Context) (Snapshot, error) {
	return f.mutate(ctx, func(s *State) (bool, error) {
		s.SignOut()
		return true, nil
	}, store.KeyCurrentUser)
}

// UpdateProfile edits the signed-in account. Reading AvatarFile is the only
// step that may block and it runs without holding the storefront lock.
func (f *Storefront) UpdateProfile(ctx context.Context, u ProfileUpdate) (Snapshot, error) {
	if f.Session() == nil {
		return f.Snapshot(), ErrNotAuthenticated
	}
	if shortPassword(u.Password) {
		return f.Snapshot(), ErrPasswordTooShort
	}
	if u.AvatarFile != nil {
		avatar, err := ReadAvatar(ctx, u.AvatarFile, u.AvatarType)
		if err != nil {
			return f.Snapshot(), err
		}
		u.Avatar, u.AvatarFile = avatar, nil
	}

	return f.mutate(ctx, func(s *State) (bool, error) {
		if s.Session == nil {
			return false, ErrNotAuthenticated
		}
		d, err := f.loadDirectory(ctx)
		if err != nil {
			return false, err
		}
		next, account, err := ApplyProfile(d, s.Session.ID, u)
		if err != nil {
			return false, err
		}
		s.SignIn(account)
		return true, f.saveDirectory(ctx, next)
	}, store.KeyCurrentUser)
}
