package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

type walletRepo struct{ st *state }

func (r walletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	w, ok := r.st.wallets[id]
	if !ok {
		return nil, domain.NotFoundf("wallet %s", id)
	}
	return &w, nil
}

func (r walletRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, w := range r.st.wallets {
		if w.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r walletRepo) List(_ context.Context) ([]*domain.Wallet, error) {
	out := make([]*domain.Wallet, 0, len(r.st.wallets))
	for _, w := range r.st.wallets {
		w := w
		out = append(out, &w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r walletRepo) Create(_ context.Context, w *domain.Wallet) error {
	if _, ok := r.st.wallets[w.ID]; ok {
		return domain.Conflictf("wallet %s already exists", w.ID)
	}
	r.st.wallets[w.ID] = *w
	return nil
}

func (r walletRepo) Update(_ context.Context, w *domain.Wallet) error {
	stored, ok := r.st.wallets[w.ID]
	if !ok {
		return domain.NotFoundf("wallet %s", w.ID)
	}
	if stored.Version != w.Version {
		return domain.ErrVersionMismatch
	}
	w.Version++
	r.st.wallets[w.ID] = *w
	return nil
}

func (r walletRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.wallets[id]; !ok {
		return domain.NotFoundf("wallet %s", id)
	}
	delete(r.st.wallets, id)
	return nil
}

type entryRepo struct{ st *state }

func (r entryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	e, ok := r.st.entries[id]
	if !ok {
		return nil, domain.NotFoundf("ledger entry %s", id)
	}
	return &e, nil
}

func (r entryRepo) Create(_ context.Context, e *domain.LedgerEntry) error {
	if _, ok := r.st.entries[e.ID]; ok {
		return domain.Conflictf("ledger entry %s already exists", e.ID)
	}
	r.st.entries[e.ID] = *e
	return nil
}

func (r entryRepo) Update(_ context.Context, e *domain.LedgerEntry) error {
	stored, ok := r.st.entries[e.ID]
	if !ok {
		return domain.NotFoundf("ledger entry %s", e.ID)
	}
	if stored.Version != e.Version {
		return domain.ErrVersionMismatch
	}
	e.Version++
	r.st.entries[e.ID] = *e
	return nil
}

func (r entryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.entries[id]; !ok {
		return domain.NotFoundf("ledger entry %s", id)
	}
	delete(r.st.entries, id)
	return nil
}

func (r entryRepo) CountByWallet(_ context.Context, walletID uuid.UUID) (int, error) {
	n := 0
	for _, e := range r.st.entries {
		if e.WalletID == walletID {
			n++
		}
	}
	return n, nil
}

type transferRepo struct{ st *state }

func (r transferRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transfer, error) {
	t, ok := r.st.transfers[id]
	if !ok {
		return nil, domain.NotFoundf("transfer %s", id)
	}
	t = copyTransfer(t)
	return &t, nil
}

func (r transferRepo) Create(_ context.Context, t *domain.Transfer) error {
	if _, ok := r.st.transfers[t.ID]; ok {
		return domain.Conflictf("transfer %s already exists", t.ID)
	}
	r.st.transfers[t.ID] = copyTransfer(*t)
	return nil
}

func (r transferRepo) Update(_ context.Context, t *domain.Transfer) error {
	if _, ok := r.st.transfers[t.ID]; !ok {
		return domain.NotFoundf("transfer %s", t.ID)
	}
	r.st.transfers[t.ID] = copyTransfer(*t)
	return nil
}

func (r transferRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.transfers[id]; !ok {
		return domain.NotFoundf("transfer %s", id)
	}
	delete(r.st.transfers, id)
	return nil
}

func (r transferRepo) CountByWallet(_ context.Context, walletID uuid.UUID) (int, error) {
	n := 0
	for _, t := range r.st.transfers {
		if t.SenderWalletID == walletID || t.ReceiverWalletID == walletID {
			n++
		}
	}
	return n, nil
}

type operatorRepo struct{ st *state }

func (r operatorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CreditCardOperator, error) {
	o, ok := r.st.operators[id]
	if !ok {
		return nil, domain.NotFoundf("credit card operator %s", id)
	}
	return &o, nil
}

func (r operatorRepo) Create(_ context.Context, o *domain.CreditCardOperator) error {
	if _, ok := r.st.operators[o.ID]; ok {
		return domain.Conflictf("credit card operator %s already exists", o.ID)
	}
	r.st.operators[o.ID] = *o
	return nil
}

func (r operatorRepo) List(_ context.Context) ([]*domain.CreditCardOperator, error) {
	out := make([]*domain.CreditCardOperator, 0, len(r.st.operators))
	for _, o := range r.st.operators {
		o := o
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type cardRepo struct{ st *state }

func (r cardRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	c, ok := r.st.cards[id]
	if !ok {
		return nil, domain.NotFoundf("credit card %s", id)
	}
	c = copyCard(c)
	return &c, nil
}

func (r cardRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.st.cards {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r cardRepo) List(_ context.Context) ([]*domain.CreditCard, error) {
	out := make([]*domain.CreditCard, 0, len(r.st.cards))
	for _, c := range r.st.cards {
		c = copyCard(c)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r cardRepo) Create(_ context.Context, c *domain.CreditCard) error {
	if _, ok := r.st.cards[c.ID]; ok {
		return domain.Conflictf("credit card %s already exists", c.ID)
	}
	r.st.cards[c.ID] = copyCard(*c)
	return nil
}

func (r cardRepo) Update(_ context.Context, c *domain.CreditCard) error {
	if _, ok := r.st.cards[c.ID]; !ok {
		return domain.NotFoundf("credit card %s", c.ID)
	}
	r.st.cards[c.ID] = copyCard(*c)
	return nil
}

func (r cardRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.cards[id]; !ok {
		return domain.NotFoundf("credit card %s", id)
	}
	delete(r.st.cards, id)
	return nil
}

type creditRepo struct{ st *state }

func (r creditRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CreditCardCredit, error) {
	c, ok := r.st.credits[id]
	if !ok {
		return nil, domain.NotFoundf("credit card credit %s", id)
	}
	return &c, nil
}

func (r creditRepo) Create(_ context.Context, c *domain.CreditCardCredit) error {
	if _, ok := r.st.credits[c.ID]; ok {
		return domain.Conflictf("credit card credit %s already exists", c.ID)
	}
	r.st.credits[c.ID] = *c
	return nil
}

func (r creditRepo) Update(_ context.Context, c *domain.CreditCardCredit) error {
	if _, ok := r.st.credits[c.ID]; !ok {
		return domain.NotFoundf("credit card credit %s", c.ID)
	}
	r.st.credits[c.ID] = *c
	return nil
}

func (r creditRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.credits[id]; !ok {
		return domain.NotFoundf("credit card credit %s", id)
	}
	delete(r.st.credits, id)
	return nil
}

func (r creditRepo) ListByCard(_ context.Context, cardID uuid.UUID) ([]*domain.CreditCardCredit, error) {
	var out []*domain.CreditCardCredit
	for _, c := range r.st.credits {
		if c.CreditCardID == cardID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r creditRepo) CountByCard(_ context.Context, cardID uuid.UUID) (int, error) {
	n := 0
	for _, c := range r.st.credits {
		if c.CreditCardID == cardID {
			n++
		}
	}
	return n, nil
}

type debtRepo struct{ st *state }

func (r debtRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CreditCardDebt, error) {
	d, ok := r.st.debts[id]
	if !ok {
		return nil, domain.NotFoundf("credit card debt %s", id)
	}
	return &d, nil
}

func (r debtRepo) Create(_ context.Context, d *domain.CreditCardDebt) error {
	if _, ok := r.st.debts[d.ID]; ok {
		return domain.Conflictf("credit card debt %s already exists", d.ID)
	}
	r.st.debts[d.ID] = *d
	return nil
}

func (r debtRepo) Update(_ context.Context, d *domain.CreditCardDebt) error {
	if _, ok := r.st.debts[d.ID]; !ok {
		return domain.NotFoundf("credit card debt %s", d.ID)
	}
	r.st.debts[d.ID] = *d
	return nil
}

func (r debtRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.debts[id]; !ok {
		return domain.NotFoundf("credit card debt %s", id)
	}
	delete(r.st.debts, id)
	return nil
}

func (r debtRepo) CountByCard(_ context.Context, cardID uuid.UUID) (int, error) {
	n := 0
	for _, d := range r.st.debts {
		if d.CreditCardID == cardID {
			n++
		}
	}
	return n, nil
}

type paymentRepo struct{ st *state }

func (r paymentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CreditCardPayment, error) {
	p, ok := r.st.payments[id]
	if !ok {
		return nil, domain.NotFoundf("credit card payment %s", id)
	}
	p = copyPayment(p)
	return &p, nil
}

func (r paymentRepo) Create(_ context.Context, p *domain.CreditCardPayment) error {
	if _, ok := r.st.payments[p.ID]; ok {
		return domain.Conflictf("credit card payment %s already exists", p.ID)
	}
	r.st.payments[p.ID] = copyPayment(*p)
	return nil
}

func (r paymentRepo) Update(_ context.Context, p *domain.CreditCardPayment) error {
	stored, ok := r.st.payments[p.ID]
	if !ok {
		return domain.NotFoundf("credit card payment %s", p.ID)
	}
	if stored.Version != p.Version {
		return domain.ErrVersionMismatch
	}
	p.Version++
	r.st.payments[p.ID] = copyPayment(*p)
	return nil
}

func (r paymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.payments[id]; !ok {
		return domain.NotFoundf("credit card payment %s", id)
	}
	delete(r.st.payments, id)
	return nil
}

func (r paymentRepo) ListByDebt(_ context.Context, debtID uuid.UUID) ([]*domain.CreditCardPayment, error) {
	out := r.filter(func(p domain.CreditCardPayment) bool { return p.DebtID == debtID })
	sort.Slice(out, func(i, j int) bool { return out[i].Installment < out[j].Installment })
	return out, nil
}

func (r paymentRepo) ListPendingByCardAndMonth(_ context.Context, cardID uuid.UUID, month domain.YearMonth) ([]*domain.CreditCardPayment, error) {
	out := r.filter(func(p domain.CreditCardPayment) bool {
		return !p.IsPaid() && r.cardOf(p) == cardID && month.Contains(p.DueDate)
	})
	sortByDueDate(out)
	return out, nil
}

func (r paymentRepo) ListPendingByCardFrom(_ context.Context, cardID uuid.UUID, from time.Time) ([]*domain.CreditCardPayment, error) {
	out := r.filter(func(p domain.CreditCardPayment) bool {
		return !p.IsPaid() && r.cardOf(p) == cardID && !p.DueDate.Before(from)
	})
	sortByDueDate(out)
	return out, nil
}

func (r paymentRepo) CountPendingByCard(_ context.Context, cardID uuid.UUID) (int, error) {
	out := r.filter(func(p domain.CreditCardPayment) bool {
		return !p.IsPaid() && r.cardOf(p) == cardID
	})
	return len(out), nil
}

func (r paymentRepo) SumPendingByCard(_ context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	return sum(r.filter(func(p domain.CreditCardPayment) bool {
		return !p.IsPaid() && r.cardOf(p) == cardID
	})), nil
}

func (r paymentRepo) SumByCardAndMonth(_ context.Context, cardID uuid.UUID, month domain.YearMonth) (decimal.Decimal, error) {
	return sum(r.filter(func(p domain.CreditCardPayment) bool {
		return r.cardOf(p) == cardID && month.Contains(p.DueDate)
	})), nil
}

func (r paymentRepo) SumPending(_ context.Context) (decimal.Decimal, error) {
	return sum(r.filter(func(p domain.CreditCardPayment) bool { return !p.IsPaid() })), nil
}

func (r paymentRepo) EarliestPendingDueDate(_ context.Context, cardID uuid.UUID) (*time.Time, error) {
	var earliest *time.Time
	for _, p := range r.st.payments {
		if p.IsPaid() || r.cardOf(p) != cardID {
			continue
		}
		if earliest == nil || p.DueDate.Before(*earliest) {
			d := p.DueDate
			earliest = &d
		}
	}
	return earliest, nil
}

func (r paymentRepo) cardOf(p domain.CreditCardPayment) uuid.UUID {
	return r.st.debts[p.DebtID].CreditCardID
}

func (r paymentRepo) filter(keep func(domain.CreditCardPayment) bool) []*domain.CreditCardPayment {
	var out []*domain.CreditCardPayment
	for _, p := range r.st.payments {
		if keep(p) {
			p = copyPayment(p)
			out = append(out, &p)
		}
	}
	return out
}

func sortByDueDate(ps []*domain.CreditCardPayment) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].DueDate.Equal(ps[j].DueDate) {
			return ps[i].Installment < ps[j].Installment
		}
		return ps[i].DueDate.Before(ps[j].DueDate)
	})
}

func sum(ps []*domain.CreditCardPayment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Amount)
	}
	return total
}
