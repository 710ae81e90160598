// Package memory keeps all records in process, optionally snapshotting them
// to a JSON file so a restart does not lose data.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/clique360/backend/internal/entity"
)

type Store struct {
	l    *slog.Logger
	file string

	mu             sync.Mutex
	clients        map[uuid.UUID]entity.Client
	clientOrder    []uuid.UUID
	products       map[uuid.UUID]entity.Product
	productOrder   []uuid.UUID
	invoices       map[uuid.UUID]entity.Invoice
	paymentMethods entity.PaymentMethods
}

// snapshot is the on-disk layout. Slices keep insertion order, which the maps
// cannot.
type snapshot struct {
	Clients        []entity.Client       `json:"clients"`
	Products       []entity.Product      `json:"products"`
	Invoices       []entity.Invoice      `json:"invoices"`
	PaymentMethods entity.PaymentMethods `json:"payment_methods"`
}

// New builds a store from the snapshot file. When file is empty the store is
// purely in-memory. An absent or unreadable snapshot is replaced by the seed
// dataset rather than failing startup.
func New(l *slog.Logger, file string) *Store {
	s := &Store{
		l:        l.WithGroup("memory"),
		file:     file,
		clients:  make(map[uuid.UUID]entity.Client),
		products: make(map[uuid.UUID]entity.Product),
		invoices: make(map[uuid.UUID]entity.Invoice),
	}

	if file != "" {
		err := s.load()
		if err == nil {
			return s
		}

		if !errors.Is(err, fs.ErrNotExist) {
			s.l.Error(fmt.Sprintf("load snapshot, falling back to seed data: %s", err))
		}
	}

	s.apply(seed())
	s.persist()

	return s
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.file)
	if err != nil {
		return err
	}

	var snap snapshot

	err = json.Unmarshal(b, &snap)
	if err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}

	s.apply(snap)

	return nil
}

func (s *Store) apply(snap snapshot) {
	for _, c := range snap.Clients {
		s.clients[c.ID] = c
		s.clientOrder = append(s.clientOrder, c.ID)
	}

	for _, p := range snap.Products {
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}

	for _, i := range snap.Invoices {
		s.invoices[i.ID] = i
	}

	s.paymentMethods = snap.PaymentMethods
}

// persist rewrites the snapshot file. Callers hold s.mu. Write failures are
// logged and never surfaced: the in-memory state stays authoritative.
func (s *Store) persist() {
	if s.file == "" {
		return
	}

	snap := snapshot{
		Clients:        s.clientList(),
		Products:       s.productList(),
		Invoices:       s.invoiceList(),
		PaymentMethods: s.paymentMethods,
	}

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.l.Error(fmt.Sprintf("marshal snapshot: %s", err))
		return
	}

	err = os.WriteFile(s.file, b, 0o644)
	if err != nil {
		s.l.Error(fmt.Sprintf("write snapshot: %s", err))
	}
}

func (s *Store) clientList() []entity.Client {
	list := make([]entity.Client, 0, len(s.clientOrder))
	for _, id := range s.clientOrder {
		list = append(list, s.clients[id])
	}

	return list
}

func (s *Store) productList() []entity.Product {
	list := make([]entity.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		list = append(list, s.products[id])
	}

	return list
}

// invoiceList returns invoices newest first.
func (s *Store) invoiceList() []entity.Invoice {
	list := make([]entity.Invoice, 0, len(s.invoices))
	for _, i := range s.invoices {
		list = append(list, i)
	}

	sort.Slice(list, func(a, b int) bool {
		if !list[a].Date.Equal(list[b].Date) {
			return list[a].Date.After(list[b].Date)
		}

		return list[a].ID.String() > list[b].ID.String()
	})

	return list
}

func (s *Store) Clients(_ context.Context) ([]entity.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clientList(), nil
}

func (s *Store) Client(_ context.Context, id uuid.UUID) (entity.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return entity.Client{}, entity.ErrNotFound
	}

	return c, nil
}

func (s *Store) CreateClient(_ context.Context, c entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[c.ID] = c
	s.clientOrder = append(s.clientOrder, c.ID)
	s.persist()

	return nil
}

func (s *Store) UpdateClient(_ context.Context, c entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.ID]; !ok {
		return entity.ErrNotFound
	}

	s.clients[c.ID] = c
	s.persist()

	return nil
}

func (s *Store) DeleteClient(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return entity.ErrNotFound
	}

	delete(s.clients, id)
	s.clientOrder = remove(s.clientOrder, id)
	s.persist()

	return nil
}

func (s *Store) Products(_ context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.productList(), nil
}

func (s *Store) Product(_ context.Context, id uuid.UUID) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return entity.Product{}, entity.ErrNotFound
	}

	return p, nil
}

func (s *Store) CreateProduct(_ context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = p
	s.productOrder = append(s.productOrder, p.ID)
	s.persist()

	return nil
}

func (s *Store) UpdateProduct(_ context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return entity.ErrNotFound
	}

	s.products[p.ID] = p
	s.persist()

	return nil
}

func (s *Store) DeleteProduct(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return entity.ErrNotFound
	}

	delete(s.products, id)
	s.productOrder = remove(s.productOrder, id)
	s.persist()

	return nil
}

func (s *Store) Invoices(_ context.Context) ([]entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoiceList(), nil
}

func (s *Store) Invoice(_ context.Context, id uuid.UUID) (entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.invoices[id]
	if !ok {
		return entity.Invoice{}, entity.ErrNotFound
	}

	return i, nil
}

func (s *Store) CreateInvoice(_ context.Context, i entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices[i.ID] = i
	s.persist()

	return nil
}

func (s *Store) UpdateInvoice(_ context.Context, i entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[i.ID]; !ok {
		return entity.ErrNotFound
	}

	s.invoices[i.ID] = i
	s.persist()

	return nil
}

func (s *Store) PaymentMethods(_ context.Context) (entity.PaymentMethods, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paymentMethods, nil
}

func (s *Store) SavePaymentMethods(_ context.Context, m entity.PaymentMethods) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paymentMethods = m
	s.persist()

	return nil
}

func remove(order []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}
