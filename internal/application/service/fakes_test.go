package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

// fakeProductRepo is an in-memory ProductRepository for service tests.
type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	inserted []entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) SearchPrefix(_ context.Context, query string, limit int) ([]entity.Product, error) {
	q := strings.ToLower(query)
	results := r.sorted()
	var out []entity.Product
	for _, p := range results {
		if strings.HasPrefix(strings.ToLower(p.Name), q) || strings.HasPrefix(strings.ToLower(p.Batch), q) {
			out = append(out, p)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetAll(_ context.Context) ([]entity.Product, error) {
	return r.sorted(), nil
}

func (r *fakeProductRepo) BulkInsert(_ context.Context, products []entity.Product) error {
	r.inserted = append(r.inserted, products...)
	for i := range products {
		p := products[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = &p
	}
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountExpiringBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.Expiry.Before(cutoff) && p.Stock > 0 {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) sorted() []entity.Product {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// fakeInvoiceRepo mimics the atomic commit: it assigns numbers from an
// in-memory sequence and applies guarded stock decrements against the
// product fake, rolling everything back on a shortfall.
type fakeInvoiceRepo struct {
	products   *fakeProductRepo
	prefix     string
	nextNumber int64
	invoices   []*entity.Invoice
}

func newFakeInvoiceRepo(products *fakeProductRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{products: products, prefix: "TI", nextNumber: 100}
}

func (r *fakeInvoiceRepo) CreateWithStockAndSequence(_ context.Context, invoice *entity.Invoice) error {
	var failed []uuid.UUID
	for _, item := range invoice.Items {
		p, ok := r.products.products[item.ProductID]
		if !ok || p.Stock < item.StockDelta() {
			failed = append(failed, item.ProductID)
		}
	}
	if len(failed) > 0 {
		return &repository.InsufficientStockError{ProductIDs: failed}
	}

	for _, item := range invoice.Items {
		r.products.products[item.ProductID].Stock -= item.StockDelta()
	}
	invoice.InvoiceNo = fmt.Sprintf("%s-%d", r.prefix, r.nextNumber)
	r.nextNumber++
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, inv := range r.invoices {
		if search == "" ||
			strings.Contains(strings.ToLower(inv.InvoiceNo), strings.ToLower(search)) ||
			strings.Contains(strings.ToLower(inv.PartyName), strings.ToLower(search)) {
			out = append(out, *inv)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) SalesSince(_ context.Context, since time.Time) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	for _, inv := range r.invoices {
		if !inv.Date.Before(since) {
			total = total.Add(inv.GrandTotal)
			count++
		}
	}
	return total, count, nil
}

// fakePartyRepo is an in-memory PartyRepository.
type fakePartyRepo struct {
	parties map[uuid.UUID]*entity.Party
}

func newFakePartyRepo(parties ...*entity.Party) *fakePartyRepo {
	r := &fakePartyRepo{parties: make(map[uuid.UUID]*entity.Party)}
	for _, p := range parties {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.parties[p.ID] = p
	}
	return r
}

func (r *fakePartyRepo) Create(_ context.Context, p *entity.Party) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.parties[p.ID] = p
	return nil
}

func (r *fakePartyRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Party, error) {
	return r.parties[id], nil
}

func (r *fakePartyRepo) Update(_ context.Context, p *entity.Party) error {
	r.parties[p.ID] = p
	return nil
}

func (r *fakePartyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.parties, id)
	return nil
}

func (r *fakePartyRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Party, int64, error) {
	var out []entity.Party
	for _, p := range r.parties {
		if search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

// fakeSettingsRepo holds a single settings record and sequence.
type fakeSettingsRepo struct {
	settings *entity.AppSettings
	seq      *entity.InvoiceSequence
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		settings: &entity.AppSettings{
			ID:      uuid.New(),
			Company: entity.CompanyProfile{Name: "Gopi Distributors"},
		},
		seq: &entity.InvoiceSequence{ID: uuid.New(), Prefix: "TI", NextNumber: 100},
	}
}

func (r *fakeSettingsRepo) GetSettings(_ context.Context) (*entity.AppSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) UpdateSettings(_ context.Context, s *entity.AppSettings) error {
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) GetSequence(_ context.Context) (*entity.InvoiceSequence, error) {
	return r.seq, nil
}

func (r *fakeSettingsRepo) UpdateSequence(_ context.Context, seq *entity.InvoiceSequence) error {
	r.seq = seq
	return nil
}
