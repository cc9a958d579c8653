package message

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domain "github.com/justdogsza/dog-training-api/internal/domain/message"
	"github.com/justdogsza/dog-training-api/internal/httperr"
	"github.com/justdogsza/dog-training-api/internal/models"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	users  map[uint]*models.User
	byID   map[uint]*models.Message
	nextID uint
}

func newTestRepo() *testRepo {
	return &testRepo{
		users: map[uint]*models.User{},
		byID:  map[uint]*models.Message{},
	}
}

func (r *testRepo) addUser(id uint, role models.Role) {
	r.users[id] = &models.User{ID: id, Role: role}
}

func (r *testRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errRepoNotFound
	}
	return u, nil
}

func (r *testRepo) Create(ctx context.Context, m *models.Message) error {
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, errRepoNotFound
	}
	return m, nil
}

func (r *testRepo) ListForUser(ctx context.Context, userID uint, role models.Role) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.byID {
		if domain.VisibleTo(*m, userID, role) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *testRepo) ListUnread(ctx context.Context, userID uint, role models.Role) ([]models.Message, error) {
	var out []models.Message
	for _, m := range r.byID {
		if m.ReadAt == nil && domain.Addressed(*m, userID, role) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, m *models.Message) error {
	if _, ok := r.byID[m.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

var _ domain.Repository = (*testRepo)(nil)

type testNotifier struct {
	mu   sync.Mutex
	sent []models.Message
}

func (n *testNotifier) Publish(ctx context.Context, m models.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, m)
}

// -------------------------
// Send
// -------------------------

func TestSendDirectMessage(t *testing.T) {
	repo := newTestRepo()
	repo.addUser(1, models.RoleParent)
	repo.addUser(2, models.RoleTrainer)
	notifier := &testNotifier{}
	uc := NewSendMessage(repo, notifier)

	recipient := uint(2)
	m, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:    1,
		RecipientID: &recipient,
		Subject:     "Rex update",
		Content:     "How did the session go?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == 0 {
		t.Fatal("message must be persisted")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].ID != m.ID {
		t.Fatal("message must be published to live subscribers")
	}
}

func TestSendDirectMessageValidatesRecipient(t *testing.T) {
	repo := newTestRepo()
	repo.addUser(1, models.RoleParent)
	uc := NewSendMessage(repo, &testNotifier{})

	_, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID: 1, Subject: "x", Content: "y",
	})
	if !httperr.IsBusiness(err, "missing_recipient") {
		t.Fatalf("expected missing_recipient, got %v", err)
	}

	ghost := uint(99)
	_, err = uc.Execute(context.Background(), SendMessageInput{
		SenderID: 1, RecipientID: &ghost, Subject: "x", Content: "y",
	})
	if !httperr.IsBusiness(err, "recipient_not_found") {
		t.Fatalf("expected recipient_not_found, got %v", err)
	}
}

func TestSendAnnouncementValidatesRoles(t *testing.T) {
	repo := newTestRepo()
	repo.addUser(1, models.RoleAdmin)
	uc := NewSendMessage(repo, &testNotifier{})

	m, err := uc.Execute(context.Background(), SendMessageInput{
		SenderID:       1,
		Subject:        "Holiday hours",
		Content:        "Closed on the 16th.",
		IsAnnouncement: true,
		TargetRoles:    []string{"trainer", "behaviorist"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.TargetRoles) != 2 {
		t.Fatalf("expected 2 target roles, got %d", len(m.TargetRoles))
	}

	_, err = uc.Execute(context.Background(), SendMessageInput{
		SenderID:       1,
		Subject:        "x",
		Content:        "y",
		IsAnnouncement: true,
		TargetRoles:    []string{"janitor"},
	})
	if !httperr.IsBusiness(err, "invalid_target_role") {
		t.Fatalf("expected invalid_target_role, got %v", err)
	}
}

// -------------------------
// Inbox
// -------------------------

func seedInbox(repo *testRepo) {
	two := uint(2)
	_ = repo.Create(context.Background(), &models.Message{
		SenderID: 1, RecipientID: &two,
		Subject: "Vaccination reminder", Content: "Rex is due next week",
	})
	_ = repo.Create(context.Background(), &models.Message{
		SenderID: 1, RecipientID: &two,
		Subject: "Invoice", Content: "March invoice attached",
	})
}

func TestInboxSearchFiltersSubjectAndContent(t *testing.T) {
	repo := newTestRepo()
	seedInbox(repo)
	uc := NewInbox(repo)
	ctx := context.Background()

	all, err := uc.List(ctx, 2, models.RoleParent, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("empty term must return everything, got %d (%v)", len(all), err)
	}

	bySubject, _ := uc.List(ctx, 2, models.RoleParent, "VACCINATION")
	if len(bySubject) != 1 || bySubject[0].Subject != "Vaccination reminder" {
		t.Fatalf("case-insensitive subject search failed: %v", bySubject)
	}

	byContent, _ := uc.List(ctx, 2, models.RoleParent, "march")
	if len(byContent) != 1 || byContent[0].Subject != "Invoice" {
		t.Fatalf("content search failed: %v", byContent)
	}

	none, _ := uc.List(ctx, 2, models.RoleParent, "grooming")
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

// -------------------------
// MarkRead
// -------------------------

func TestMarkReadFirstReadWins(t *testing.T) {
	repo := newTestRepo()
	uc := NewMarkRead(repo)
	ctx := context.Background()

	two := uint(2)
	m := &models.Message{SenderID: 1, RecipientID: &two, Subject: "x", Content: "y"}
	_ = repo.Create(ctx, m)

	first, err := uc.Execute(ctx, 2, models.RoleParent, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ReadAt == nil {
		t.Fatal("read_at must be set on first read")
	}
	stamp := *first.ReadAt

	time.Sleep(5 * time.Millisecond)

	second, err := uc.Execute(ctx, 2, models.RoleParent, m.ID)
	if err != nil {
		t.Fatalf("re-read must succeed: %v", err)
	}
	if !second.ReadAt.Equal(stamp) {
		t.Fatal("re-read must keep the original read_at")
	}
}

func TestMarkReadOnlyForAddressee(t *testing.T) {
	repo := newTestRepo()
	uc := NewMarkRead(repo)
	ctx := context.Background()

	two := uint(2)
	m := &models.Message{SenderID: 1, RecipientID: &two, Subject: "x", Content: "y"}
	_ = repo.Create(ctx, m)

	if _, err := uc.Execute(ctx, 3, models.RoleParent, m.ID); !httperr.IsBusiness(err, "not_message_recipient") {
		t.Fatalf("third party: expected not_message_recipient, got %v", err)
	}
	if _, err := uc.Execute(ctx, 1, models.RoleParent, m.ID); !httperr.IsBusiness(err, "not_message_recipient") {
		t.Fatalf("sender: expected not_message_recipient, got %v", err)
	}
	if _, err := uc.Execute(ctx, 2, models.RoleParent, 99); !httperr.IsBusiness(err, "message_not_found") {
		t.Fatalf("expected message_not_found, got %v", err)
	}
}

func TestMarkReadAnnouncementByRole(t *testing.T) {
	repo := newTestRepo()
	uc := NewMarkRead(repo)
	ctx := context.Background()

	m := &models.Message{
		SenderID:       1,
		Subject:        "Staff meeting",
		Content:        "Friday 9am",
		IsAnnouncement: true,
		TargetRoles:    models.RoleList{models.RoleTrainer},
	}
	_ = repo.Create(ctx, m)

	if _, err := uc.Execute(ctx, 5, models.RoleTrainer, m.ID); err != nil {
		t.Fatalf("targeted role must be able to mark read: %v", err)
	}
	if _, err := uc.Execute(ctx, 6, models.RoleParent, m.ID); !httperr.IsBusiness(err, "not_message_recipient") {
		t.Fatalf("untargeted role: expected not_message_recipient, got %v", err)
	}
}
