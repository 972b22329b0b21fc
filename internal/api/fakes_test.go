package api

import (
	"context"
	"sync"

	"blood_donation/internal/apperr"
	"blood_donation/internal/domain"
	"blood_donation/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errNotFound = apperr.New(apperr.NotFound, "document not found")

// window applies a store.Page to n documents in insertion order.
func window(n int, p store.Page) (int, int) {
	start := int(p.Skip)
	if start > n {
		start = n
	}
	end := n
	if p.Limit > 0 && start+int(p.Limit) < n {
		end = start + int(p.Limit)
	}
	return start, end
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func updated(matched bool, id primitive.ObjectID) domain.UpdateResult {
	if matched {
		return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
	}
	return domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}
}

type memUsers struct {
	mu   sync.Mutex
	docs []domain.User
	err  error
}

func (m *memUsers) Insert(_ context.Context, u domain.User) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.InsertResult{}, m.err
	}
	u.ID = primitive.NewObjectID()
	m.docs = append(m.docs, u)
	return domain.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (m *memUsers) List(_ context.Context, status string, p store.Page) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.User{}
	for _, u := range m.docs {
		if status == "" || u.Status == status {
			out = append(out, u)
		}
	}
	start, end := window(len(out), p)
	return out[start:end], m.err
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return domain.User{}, m.err
	}
	for _, u := range m.docs {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, errNotFound
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.docs {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, errNotFound
}

func (m *memUsers) Patch(_ context.Context, id primitive.ObjectID, p domain.UserPatch) (domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			applyUserPatch(&m.docs[i], p)
			return updated(true, id), nil
		}
	}
	u := domain.User{ID: id}
	applyUserPatch(&u, p)
	m.docs = append(m.docs, u)
	return updated(false, id), nil
}

func applyUserPatch(u *domain.User, p domain.UserPatch) {
	set(&u.Name, p.Name)
	set(&u.Email, p.Email)
	set(&u.BloodGroup, p.BloodGroup)
	set(&u.District, p.District)
	set(&u.Upazila, p.Upazila)
	set(&u.Avatar, p.Avatar)
}

func (m *memUsers) setField(id primitive.ObjectID, apply func(*domain.User)) (domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			apply(&m.docs[i])
			return updated(true, id), nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, errNotFound
}

func (m *memUsers) SetRole(_ context.Context, id primitive.ObjectID, role string) (domain.UpdateResult, error) {
	return m.setField(id, func(u *domain.User) { u.Role = role })
}

func (m *memUsers) SetStatus(_ context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error) {
	return m.setField(id, func(u *domain.User) { u.Status = status })
}

type memDonations struct {
	mu   sync.Mutex
	docs []domain.Donation
}

func (m *memDonations) Insert(_ context.Context, d domain.Donation) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = primitive.NewObjectID()
	m.docs = append(m.docs, d)
	return domain.InsertResult{Acknowledged: true, InsertedID: d.ID}, nil
}

func (m *memDonations) match(f store.DonationFilter) []domain.Donation {
	out := []domain.Donation{}
	for _, d := range m.docs {
		if (f.DonorEmail == "" || d.DonorEmail == f.DonorEmail) && (f.Status == "" || d.Status == f.Status) {
			out = append(out, d)
		}
	}
	return out
}

func (m *memDonations) List(_ context.Context, f store.DonationFilter, p store.Page) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.match(f)
	start, end := window(len(out), p)
	return out[start:end], nil
}

func (m *memDonations) Count(_ context.Context, f store.DonationFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.match(f))), nil
}

func (m *memDonations) FindByID(_ context.Context, id primitive.ObjectID) (domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Donation{}, errNotFound
}

func (m *memDonations) Patch(_ context.Context, id primitive.ObjectID, p domain.DonationPatch) (domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	apply := func(d *domain.Donation) {
		set(&d.RecipientName, p.RecipientName)
		set(&d.District, p.District)
		set(&d.Upazila, p.Upazila)
		set(&d.HospitalName, p.HospitalName)
		set(&d.Address, p.Address)
		set(&d.Date, p.Date)
		set(&d.Time, p.Time)
		set(&d.Message, p.Message)
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			apply(&m.docs[i])
			return updated(true, id), nil
		}
	}
	d := domain.Donation{ID: id}
	apply(&d)
	m.docs = append(m.docs, d)
	return updated(false, id), nil
}

func (m *memDonations) SetStatus(_ context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs[i].Status = status
			return updated(true, id), nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, errNotFound
}

func (m *memDonations) Delete(_ context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, errNotFound
}

type memBlogs struct {
	mu    sync.Mutex
	docs  []domain.Blog
	lists int // List calls, to observe caching
}

func (m *memBlogs) Insert(_ context.Context, b domain.Blog) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = primitive.NewObjectID()
	m.docs = append(m.docs, b)
	return domain.InsertResult{Acknowledged: true, InsertedID: b.ID}, nil
}

func (m *memBlogs) List(_ context.Context, status string, p store.Page) ([]domain.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	out := []domain.Blog{}
	for _, b := range m.docs {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	start, end := window(len(out), p)
	return out[start:end], nil
}

func (m *memBlogs) FindByID(_ context.Context, id primitive.ObjectID) (domain.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.docs {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Blog{}, errNotFound
}

func (m *memBlogs) Patch(_ context.Context, id primitive.ObjectID, p domain.BlogPatch) (domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	apply := func(b *domain.Blog) {
		set(&b.Name, p.Name)
		set(&b.Email, p.Email)
		set(&b.Title, p.Title)
		set(&b.Image, p.Image)
		set(&b.Text, p.Text)
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			apply(&m.docs[i])
			return updated(true, id), nil
		}
	}
	b := domain.Blog{ID: id}
	apply(&b)
	m.docs = append(m.docs, b)
	return updated(false, id), nil
}

func (m *memBlogs) SetStatus(_ context.Context, id primitive.ObjectID, status string) (domain.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs[i].Status = status
			return updated(true, id), nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, errNotFound
}

func (m *memBlogs) Delete(_ context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, errNotFound
}

type memPayments struct {
	mu      sync.Mutex
	pending []domain.AmountPending
	done    []domain.AmountDone
}

func (m *memPayments) StagePending(_ context.Context, a domain.AmountPending) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	m.pending = append(m.pending, a)
	return domain.InsertResult{Acknowledged: true, InsertedID: a.ID}, nil
}

func (m *memPayments) ListPending(_ context.Context, email string) ([]domain.AmountPending, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AmountPending{}
	for _, a := range m.pending {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memPayments) ClearPending(_ context.Context, email string) (domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.pending[:0]
	var n int64
	for _, a := range m.pending {
		if a.Email == email {
			n++
			continue
		}
		kept = append(kept, a)
	}
	m.pending = kept
	return domain.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}

func (m *memPayments) Record(_ context.Context, a domain.AmountDone) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	m.done = append(m.done, a)
	return domain.InsertResult{Acknowledged: true, InsertedID: a.ID}, nil
}

func (m *memPayments) ListDone(_ context.Context, email string) ([]domain.AmountDone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AmountDone{}
	for _, a := range m.done {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

// memStats derives the aggregate from the fakes.
type memStats struct {
	users     *memUsers
	donations *memDonations
	payments  *memPayments
	calls     int
}

func (m *memStats) Stats(_ context.Context) (domain.Stats, error) {
	m.calls++
	var revenue float64
	for _, a := range m.payments.done {
		revenue += a.Price
	}
	return domain.Stats{
		Users:     int64(len(m.users.docs)),
		Donations: int64(len(m.donations.docs)),
		Revenue:   revenue,
	}, nil
}

type fakeIntents struct {
	price float64
	err   error
}

func (f *fakeIntents) CreateIntent(_ context.Context, price float64) (string, error) {
	f.price = price
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret", nil
}
