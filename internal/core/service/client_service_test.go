package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankcore/bank-client-api/internal/core/domain"
	"github.com/bankcore/bank-client-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	byID       map[uint]*domain.Client
	nextID     uint
	lastFields map[string]any // fields map passed to the last UpdateFields call
	createErr  error          // if set, Create returns this error
	updateErr  error          // if set, UpdateFields returns this error
	listErr    error          // if set, read operations return this error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[uint]*domain.Client), nextID: 1}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == c.Email {
			return domain.ErrDuplicateEmail
		}
	}
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uint) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) ListActive(_ context.Context) ([]domain.Client, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Client
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.byID[id]; ok && c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	if r.listErr != nil {
		return false, r.listErr
	}
	for _, c := range r.byID {
		if c.Email == email && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// UpdateFields applies the same column semantics the real GORM repo uses.
func (r *stubClientRepo) UpdateFields(_ context.Context, id uint, fields map[string]any) error {
	r.lastFields = fields
	if r.updateErr != nil {
		return r.updateErr
	}
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrClientNotFound
	}
	for col, val := range fields {
		switch col {
		case "first_name":
			c.FirstName = val.(string)
		case "last_name":
			c.LastName = val.(string)
		case "email":
			c.Email = val.(string)
		case "phone_number":
			c.PhoneNumber = val.(string)
		case "address":
			c.Address = val.(string)
		case "account_type":
			c.AccountType = val.(string)
		case "balance":
			c.Balance = val.(float64)
		case "is_active":
			c.IsActive = val.(bool)
		}
	}
	return nil
}

func (r *stubClientRepo) Search(_ context.Context, term string) ([]domain.Client, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	lower := strings.ToLower(term)
	var out []domain.Client
	for id := uint(1); id < r.nextID; id++ {
		c, ok := r.byID[id]
		if !ok || !c.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(c.FirstName), lower) ||
			strings.Contains(strings.ToLower(c.LastName), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func validInput(email string) ports.CreateClientInput {
	return ports.CreateClientInput{
		FirstName:   "Ana",
		LastName:    "Ruiz",
		Email:       email,
		PhoneNumber: "0991111111",
		AccountType: "Savings",
		Balance:     100.00,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

// ---------------------------------------------------------------------------
// CreateClient tests
// ---------------------------------------------------------------------------

func TestClientService_Create_Success(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	before := time.Now().UTC()
	view, err := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.ID == 0 {
		t.Error("expected an assigned id")
	}
	if view.FullName != "Ana Ruiz" {
		t.Errorf("expected full name %q, got %q", "Ana Ruiz", view.FullName)
	}
	if !view.IsActive {
		t.Error("new client must be active")
	}
	if view.Balance != 100.00 {
		t.Errorf("expected balance 100.00, got %v", view.Balance)
	}
	if view.CreatedAt.Before(before) || view.CreatedAt.After(time.Now().UTC()) {
		t.Errorf("created_at %v not within call window", view.CreatedAt)
	}
	if view.CreatedAt.Location() != time.UTC {
		t.Error("created_at must be UTC")
	}
}

func TestClientService_Create_AssignsFreshIDs(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	first, _ := svc.CreateClient(context.Background(), validInput("a@x.com"))
	second, err := svc.CreateClient(context.Background(), validInput("b@x.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("ids must not be reused: both %d", first.ID)
	}
}

func TestClientService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	if _, err := svc.CreateClient(context.Background(), validInput("ana@x.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestClientService_Create_DuplicateEmailOfInactiveClient(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if err := svc.DeleteClient(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The soft-deleted record still reserves its email.
	_, err := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail after soft delete, got %v", err)
	}
}

func TestClientService_Create_StorageLevelDuplicate(t *testing.T) {
	// Two concurrent creates can both pass the pre-check; the storage
	// constraint rejection must still surface as ErrDuplicateEmail.
	repo := newStubClientRepo()
	repo.createErr = domain.ErrDuplicateEmail
	svc := NewClientService(repo, discardLogger)

	_, err := svc.CreateClient(context.Background(), validInput("race@x.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestClientService_Create_RepoError(t *testing.T) {
	repo := newStubClientRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewClientService(repo, discardLogger)

	_, err := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
	if errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatal("infrastructure fault must not masquerade as duplicate email")
	}
}

// ---------------------------------------------------------------------------
// GetClient / ListClients tests
// ---------------------------------------------------------------------------

func TestClientService_Get_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), discardLogger)

	_, err := svc.GetClient(context.Background(), 42)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Get_ReturnsSoftDeletedRecord(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if err := svc.DeleteClient(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	view, err := svc.GetClient(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if view.IsActive {
		t.Error("expected is_active=false after soft delete")
	}
	if view.Email != "ana@x.com" {
		t.Errorf("record fields must survive soft delete, got email %q", view.Email)
	}
}

func TestClientService_List_ExcludesInactive(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	kept, _ := svc.CreateClient(context.Background(), validInput("keep@x.com"))
	gone, _ := svc.CreateClient(context.Background(), validInput("gone@x.com"))
	_ = svc.DeleteClient(context.Background(), gone.ID)

	views, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 active client, got %d", len(views))
	}
	if views[0].ID != kept.ID {
		t.Errorf("expected client %d, got %d", kept.ID, views[0].ID)
	}
}

// ---------------------------------------------------------------------------
// UpdateClient tests
// ---------------------------------------------------------------------------

func TestClientService_Update_PartialFieldsOnly(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))

	err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{
		Balance: floatPtr(250.00),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the supplied column reaches the store.
	if len(repo.lastFields) != 1 {
		t.Fatalf("expected 1 updated column, got %d: %v", len(repo.lastFields), repo.lastFields)
	}
	if repo.lastFields["balance"] != 250.00 {
		t.Errorf("expected balance column 250.00, got %v", repo.lastFields["balance"])
	}

	view, _ := svc.GetClient(context.Background(), created.ID)
	if view.Balance != 250.00 {
		t.Errorf("expected balance 250.00, got %v", view.Balance)
	}
	if view.FirstName != "Ana" || view.Email != "ana@x.com" {
		t.Error("unsupplied fields must keep prior values")
	}
	if !view.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at must never change on update")
	}
}

func TestClientService_Update_ExplicitEmptyStringWins(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	input := validInput("ana@x.com")
	input.Address = "Av. Amazonas, Quito"
	created, _ := svc.CreateClient(context.Background(), input)

	err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{
		Address: strPtr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, _ := svc.GetClient(context.Background(), created.ID)
	if view.Address != "" {
		t.Errorf("explicit empty address must replace stored value, got %q", view.Address)
	}
}

func TestClientService_Update_NoFieldsIsNoOp(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	repo.lastFields = nil

	if err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFields != nil {
		t.Error("empty update must not hit the store")
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), discardLogger)

	err := svc.UpdateClient(context.Background(), 42, ports.UpdateClientInput{Balance: floatPtr(1)})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Update_DuplicateEmail(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	_, _ = svc.CreateClient(context.Background(), validInput("taken@x.com"))
	target, _ := svc.CreateClient(context.Background(), validInput("mine@x.com"))

	err := svc.UpdateClient(context.Background(), target.ID, ports.UpdateClientInput{
		Email: strPtr("taken@x.com"),
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestClientService_Update_KeepingOwnEmailIsAllowed(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))

	err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{
		Email: strPtr("ana@x.com"),
	})
	if err != nil {
		t.Fatalf("re-supplying own email must not conflict: %v", err)
	}
}

func TestClientService_Update_RowVanishedBetweenReadAndWrite(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	repo.updateErr = domain.ErrClientNotFound

	err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{Balance: floatPtr(1)})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound for the benign race, got %v", err)
	}
}

func TestClientService_Update_CanReactivate(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	_ = svc.DeleteClient(context.Background(), created.ID)

	if err := svc.UpdateClient(context.Background(), created.ID, ports.UpdateClientInput{IsActive: boolPtr(true)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, _ := svc.GetClient(context.Background(), created.ID)
	if !view.IsActive {
		t.Error("expected client to be active again")
	}
}

// ---------------------------------------------------------------------------
// DeleteClient tests
// ---------------------------------------------------------------------------

func TestClientService_Delete_SoftDeletesOnly(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	if err := svc.DeleteClient(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the active flag was written.
	if len(repo.lastFields) != 1 || repo.lastFields["is_active"] != false {
		t.Fatalf("expected only is_active=false, got %v", repo.lastFields)
	}
	// The row is still there.
	if _, err := svc.GetClient(context.Background(), created.ID); err != nil {
		t.Fatalf("record must survive soft delete: %v", err)
	}
}

func TestClientService_Delete_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), discardLogger)

	err := svc.DeleteClient(context.Background(), 42)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// SearchClients tests
// ---------------------------------------------------------------------------

func TestClientService_Search_EmptyTerm(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), discardLogger)

	for _, term := range []string{"", "   ", "\t"} {
		_, err := svc.SearchClients(context.Background(), term)
		if !errors.Is(err, domain.ErrSearchTermRequired) {
			t.Errorf("term %q: expected ErrSearchTermRequired, got %v", term, err)
		}
	}
}

func TestClientService_Search_NoMatchesIsEmptyNotError(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)
	_, _ = svc.CreateClient(context.Background(), validInput("ana@x.com"))

	views, err := svc.SearchClients(context.Background(), "nosuchperson")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty result, got %d", len(views))
	}
}

func TestClientService_Search_MatchesActiveOnly(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	kept, _ := svc.CreateClient(context.Background(), validInput("ana@x.com"))
	gone, _ := svc.CreateClient(context.Background(), validInput("ana.two@x.com"))
	_ = svc.DeleteClient(context.Background(), gone.ID)

	views, err := svc.SearchClients(context.Background(), "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].ID != kept.ID {
		t.Fatalf("expected only active client %d, got %+v", kept.ID, views)
	}
}
