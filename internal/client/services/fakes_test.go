package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
)

var plus2 = time.FixedZone("plus-2", 2*3600)

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	RegisterErr error
	LoginToken  string
	LoginErr    error
	ListRet     []models.Reminder
	ListErr     error
	CreateRet   models.Reminder
	CreateErr   error
	UpdateRet   models.Reminder
	UpdateErr   error
	DeleteErr   error

	LastRegister models.Registration
	LastLogin    models.Credentials
	LastCreate   models.ReminderPayload
	LastUpdateID string
	LastUpdate   models.ReminderPatch
	LastDeleteID string

	calls map[string]int
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeClient) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) Register(ctx context.Context, r models.Registration) error {
	f.hit("Register")
	f.LastRegister = r
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, c models.Credentials) (string, error) {
	f.hit("Login")
	f.LastLogin = c
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) List(ctx context.Context) ([]models.Reminder, error) {
	f.hit("List")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) Create(ctx context.Context, p models.ReminderPayload) (models.Reminder, error) {
	f.hit("Create")
	f.LastCreate = p
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) Update(ctx context.Context, id string, p models.ReminderPatch) (models.Reminder, error) {
	f.hit("Update")
	f.LastUpdateID = id
	f.LastUpdate = p
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) Delete(ctx context.Context, id string) error {
	f.hit("Delete")
	f.LastDeleteID = id
	return f.DeleteErr
}

// ---- fake credential store ----

type fakeStore struct {
	token, user string
	StoreErr    error
	ClearErr    error
}

func (s *fakeStore) Credential() (string, bool) { return s.token, s.token != "" }
func (s *fakeStore) User() string               { return s.user }

func (s *fakeStore) Store(ctx context.Context, token, user string) error {
	if s.StoreErr != nil {
		return s.StoreErr
	}
	s.token, s.user = token, user
	return nil
}

func (s *fakeStore) ClearCredential(ctx context.Context) error {
	s.token, s.user = "", ""
	return s.ClearErr
}

func record(id string, duration int) models.Reminder {
	return models.Reminder{
		ID:            id,
		Name:          "Med " + id,
		Dosage:        "10mg",
		ScheduledTime: time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC),
		Duration:      duration,
	}
}
