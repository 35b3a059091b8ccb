package services

import (
	"context"
	"mime/multipart"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alumeee/alumniconnect/internal/app/models"
	"github.com/alumeee/alumniconnect/internal/app/repositories"
	"github.com/alumeee/alumniconnect/internal/app/repositories/user"
	"github.com/alumeee/alumniconnect/internal/db"
	"github.com/alumeee/alumniconnect/internal/pkg/apperrors"
)

// In-memory repository fakes shared by the service tests. They model the
// same sentinel errors the real repositories return.

// fakeTxRunner runs the function directly. The fakes never touch the tx
// handle, so nil is a valid stand-in.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

type fakeUserRepo struct {
	users    map[int64]*models.User
	students map[int64]*models.StudentProfile
	staff    map[int64]*models.StaffProfile
	nextID   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[int64]*models.User),
		students: make(map[int64]*models.StudentProfile),
		staff:    make(map[int64]*models.StaffProfile),
		nextID:   1,
	}
}

func (f *fakeUserRepo) addUser(u *models.User) *models.User {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, user.ErrEmailAlreadyExists
		}
	}
	return f.addUser(u).ID, nil
}

func (f *fakeUserRepo) CreateUserTx(ctx context.Context, _ pgx.Tx, u *models.User) (int64, error) {
	return f.CreateUser(ctx, u)
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	delete(f.students, id)
	delete(f.staff, id)
	return nil
}

func (f *fakeUserRepo) CreateStudentProfileTx(_ context.Context, _ pgx.Tx, profile *models.StudentProfile) error {
	for _, existing := range f.students {
		if existing.RollNumber == profile.RollNumber {
			return user.ErrRollNumberExists
		}
	}
	f.students[profile.UserID] = profile
	return nil
}

func (f *fakeUserRepo) CreateStaffProfileTx(_ context.Context, _ pgx.Tx, profile *models.StaffProfile) error {
	f.staff[profile.UserID] = profile
	return nil
}

func (f *fakeUserRepo) GetStudentByUserID(_ context.Context, userID int64) (*models.StudentProfile, error) {
	if p, ok := f.students[userID]; ok {
		return p, nil
	}
	return nil, user.ErrStudentNotFound
}

func (f *fakeUserRepo) GetStaffByUserID(_ context.Context, userID int64) (*models.StaffProfile, error) {
	if p, ok := f.staff[userID]; ok {
		return p, nil
	}
	return nil, user.ErrStaffNotFound
}

func (f *fakeUserRepo) GetStudentByRollNumber(_ context.Context, rollNumber string) (*models.StudentProfile, error) {
	for _, p := range f.students {
		if p.RollNumber == rollNumber {
			return p, nil
		}
	}
	return nil, user.ErrStudentNotFound
}

func (f *fakeUserRepo) RollNumberExists(_ context.Context, rollNumber string) (bool, error) {
	for _, p := range f.students {
		if p.RollNumber == rollNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateStudentProfile(_ context.Context, profile *models.StudentProfile) error {
	f.students[profile.UserID] = profile
	return nil
}

func (f *fakeUserRepo) UpdateStaffProfile(_ context.Context, profile *models.StaffProfile) error {
	f.staff[profile.UserID] = profile
	return nil
}

func (f *fakeUserRepo) UpdateStudentPhotoURL(_ context.Context, userID int64, photoURL *string) error {
	p, ok := f.students[userID]
	if !ok {
		return user.ErrStudentNotFound
	}
	p.PhotoURL = photoURL
	return nil
}

func (f *fakeUserRepo) UpdateStaffPhotoURL(_ context.Context, userID int64, photoURL *string) error {
	p, ok := f.staff[userID]
	if !ok {
		return user.ErrStaffNotFound
	}
	p.PhotoURL = photoURL
	return nil
}

func (f *fakeUserRepo) ListStudents(_ context.Context, departmentID int64, yearOfPassing int, _ uint64, _ int) ([]*models.StudentProfile, int64, error) {
	var out []*models.StudentProfile
	for _, p := range f.students {
		if departmentID > 0 && p.DepartmentID != departmentID {
			continue
		}
		if yearOfPassing > 0 && p.YearOfPassing != yearOfPassing {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) CountStudents(context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeUserRepo) CountStaff(context.Context) (int64, error) {
	return int64(len(f.staff)), nil
}

type storedToken struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*storedToken)}
}

func (f *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiresAt time.Time) error {
	f.tokens[token] = &storedToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	t, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if t.revoked {
		return 0, time.Time{}, apperrors.ErrTokenRevoked
	}
	if time.Now().After(t.expiresAt) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return t.userID, t.expiresAt, nil
}

func (f *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.revoked = true
	return nil
}

func (f *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, t := range f.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}

func (f *fakeTokenRepo) CleanupExpiredTokens(context.Context) (int64, error) {
	var n int64
	for token, t := range f.tokens {
		if time.Now().After(t.expiresAt) {
			delete(f.tokens, token)
			n++
		}
	}
	return n, nil
}

type fakeDepartmentRepo struct {
	departments map[int64]*models.Department
}

func newFakeDepartmentRepo(names ...string) *fakeDepartmentRepo {
	f := &fakeDepartmentRepo{departments: make(map[int64]*models.Department)}
	for i, name := range names {
		id := int64(i + 1)
		f.departments[id] = &models.Department{ID: id, Name: name}
	}
	return f
}

func (f *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) (int64, error) {
	id := int64(len(f.departments) + 1)
	department.ID = id
	f.departments[id] = department
	return id, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	if d, ok := f.departments[id]; ok {
		return d, nil
	}
	return nil, repositories.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) GetAll(context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.departments))
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.departments[id]
	return ok, nil
}

type fakeAlumniRepo struct {
	records map[int64]*models.Alumni
	nextID  int64
}

func newFakeAlumniRepo() *fakeAlumniRepo {
	return &fakeAlumniRepo{records: make(map[int64]*models.Alumni), nextID: 1}
}

func (f *fakeAlumniRepo) add(a *models.Alumni) *models.Alumni {
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	}
	if a.Verification == nil {
		a.Verification = &models.VerifiedAlumni{AlumniID: a.ID}
	}
	f.records[a.ID] = a
	return a
}

func (f *fakeAlumniRepo) Create(_ context.Context, a *models.Alumni) (int64, error) {
	for _, existing := range f.records {
		if existing.UserID == a.UserID {
			return 0, repositories.ErrAlumniRecordExists
		}
	}
	return f.add(a).ID, nil
}

func (f *fakeAlumniRepo) GetByID(_ context.Context, id int64) (*models.Alumni, error) {
	if a, ok := f.records[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrAlumniNotFound
}

func (f *fakeAlumniRepo) GetByUserID(_ context.Context, userID int64) (*models.Alumni, error) {
	for _, a := range f.records {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, repositories.ErrAlumniNotFound
}

func (f *fakeAlumniRepo) List(_ context.Context, verifiedOnly bool, _ uint64, _ int) ([]*models.Alumni, int64, error) {
	var out []*models.Alumni
	for _, a := range f.records {
		if verifiedOnly && (a.Verification == nil || !a.Verification.IsVerified || a.IsBlocked) {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAlumniRepo) Verify(_ context.Context, alumniID int64) error {
	a, ok := f.records[alumniID]
	if !ok {
		return repositories.ErrAlumniNotFound
	}
	if a.Verification.IsVerified {
		return repositories.ErrAlumniAlreadyVerified
	}
	now := time.Now()
	a.Verification.IsVerified = true
	a.Verification.VerifiedAt = &now
	return nil
}

func (f *fakeAlumniRepo) Delete(_ context.Context, alumniID int64) error {
	if _, ok := f.records[alumniID]; !ok {
		return repositories.ErrAlumniNotFound
	}
	delete(f.records, alumniID)
	return nil
}

func (f *fakeAlumniRepo) SetBlocked(_ context.Context, alumniID int64, blocked bool) error {
	a, ok := f.records[alumniID]
	if !ok {
		return repositories.ErrAlumniNotFound
	}
	a.IsBlocked = blocked
	return nil
}

func (f *fakeAlumniRepo) CountVerified(context.Context) (int64, error) {
	var n int64
	for _, a := range f.records {
		if a.Verification != nil && a.Verification.IsVerified {
			n++
		}
	}
	return n, nil
}

func (f *fakeAlumniRepo) CountPending(context.Context) (int64, error) {
	var n int64
	for _, a := range f.records {
		if a.Verification == nil || !a.Verification.IsVerified {
			n++
		}
	}
	return n, nil
}

type fakeMemoryRepo struct {
	memories map[int64]*models.Memory
	nextID   int64
}

func newFakeMemoryRepo() *fakeMemoryRepo {
	return &fakeMemoryRepo{memories: make(map[int64]*models.Memory), nextID: 1}
}

func (f *fakeMemoryRepo) Create(_ context.Context, memory *models.Memory) (int64, error) {
	memory.ID = f.nextID
	f.nextID++
	memory.PostedAt = time.Now()
	f.memories[memory.ID] = memory
	return memory.ID, nil
}

func (f *fakeMemoryRepo) GetByID(_ context.Context, id int64) (*models.Memory, error) {
	if m, ok := f.memories[id]; ok {
		return m, nil
	}
	return nil, repositories.ErrMemoryNotFound
}

func (f *fakeMemoryRepo) list(match func(*models.Memory) bool) ([]*models.Memory, int64) {
	var out []*models.Memory
	for _, m := range f.memories {
		if match(m) {
			out = append(out, m)
		}
	}
	return out, int64(len(out))
}

func (f *fakeMemoryRepo) ListApproved(context.Context, uint64, int) ([]*models.Memory, int64, error) {
	out, n := f.list(func(m *models.Memory) bool { return m.IsApproved })
	return out, n, nil
}

func (f *fakeMemoryRepo) ListPending(context.Context, uint64, int) ([]*models.Memory, int64, error) {
	out, n := f.list(func(m *models.Memory) bool { return !m.IsApproved })
	return out, n, nil
}

func (f *fakeMemoryRepo) ListByUser(_ context.Context, userID int64, _ uint64, _ int) ([]*models.Memory, int64, error) {
	out, n := f.list(func(m *models.Memory) bool { return m.UserID == userID })
	return out, n, nil
}

func (f *fakeMemoryRepo) Approve(_ context.Context, id int64) error {
	m, ok := f.memories[id]
	if !ok {
		return repositories.ErrMemoryNotFound
	}
	m.IsApproved = true
	return nil
}

func (f *fakeMemoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.memories[id]; !ok {
		return repositories.ErrMemoryNotFound
	}
	delete(f.memories, id)
	return nil
}

func (f *fakeMemoryRepo) CountPending(context.Context) (int64, error) {
	_, n := f.list(func(m *models.Memory) bool { return !m.IsApproved })
	return n, nil
}

type fakeFundRepo struct {
	mu        sync.Mutex
	funds     map[int64]*models.Fund
	donations []*models.Donation
	nextID    int64
}

func newFakeFundRepo() *fakeFundRepo {
	return &fakeFundRepo{funds: make(map[int64]*models.Fund), nextID: 1}
}

func (f *fakeFundRepo) Create(_ context.Context, fund *models.Fund) (int64, error) {
	fund.ID = f.nextID
	fund.CreatedAt = time.Now()
	f.nextID++
	f.funds[fund.ID] = fund
	return fund.ID, nil
}

func (f *fakeFundRepo) GetByID(_ context.Context, id int64) (*models.Fund, error) {
	if fund, ok := f.funds[id]; ok {
		return fund, nil
	}
	return nil, repositories.ErrFundNotFound
}

func (f *fakeFundRepo) List(context.Context, uint64, int) ([]*models.Fund, int64, error) {
	out := make([]*models.Fund, 0, len(f.funds))
	for _, fund := range f.funds {
		out = append(out, fund)
	}
	return out, int64(len(out)), nil
}

func (f *fakeFundRepo) Donate(_ context.Context, donation *models.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fund, ok := f.funds[donation.FundID]
	if !ok {
		return repositories.ErrFundNotFound
	}
	fund.CollectedAmount += donation.Amount
	donation.ID = int64(len(f.donations) + 1)
	donation.DonatedAt = time.Now()
	f.donations = append(f.donations, donation)
	return nil
}

func (f *fakeFundRepo) ListDonationsByFund(_ context.Context, fundID int64, _ uint64, _ int) ([]*models.Donation, int64, error) {
	var out []*models.Donation
	for _, d := range f.donations {
		if d.FundID == fundID {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeFundRepo) ListDonationsByUser(_ context.Context, userID int64, _ uint64, _ int) ([]*models.Donation, int64, error) {
	var out []*models.Donation
	for _, d := range f.donations {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, int64(len(out)), nil
}

type fakeEventRepo struct {
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*models.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	event.ID = f.nextID
	f.nextID++
	f.events[event.ID] = event
	return event.ID, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, repositories.ErrEventNotFound
}

func (f *fakeEventRepo) List(_ context.Context, upcomingOnly bool, _ uint64, _ int) ([]*models.Event, int64, error) {
	var out []*models.Event
	for _, e := range f.events {
		if upcomingOnly {
			end := e.StartDate
			if e.EndDate != nil {
				end = *e.EndDate
			}
			if end.Before(time.Now()) {
				continue
			}
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) Count(context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

type fakeNotificationRepo struct {
	notifications map[int64][]*models.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[int64][]*models.Notification), nextID: 1}
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) (int64, error) {
	n.ID = f.nextID
	f.nextID++
	n.CreatedAt = time.Now()
	f.notifications[n.UserID] = append(f.notifications[n.UserID], n)
	return n.ID, nil
}

func (f *fakeNotificationRepo) Broadcast(ctx context.Context, title, message string) (int64, error) {
	var n int64
	for userID := range f.notifications {
		if _, err := f.Create(ctx, &models.Notification{UserID: userID, Title: title, Message: message}); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID int64, _ uint64, _ int) ([]*models.Notification, int64, error) {
	out := f.notifications[userID]
	return out, int64(len(out)), nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, notif := range f.notifications[userID] {
		if !notif.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, userID, notificationID int64) error {
	for _, notif := range f.notifications[userID] {
		if notif.ID == notificationID {
			notif.IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID int64) error {
	for _, notif := range f.notifications[userID] {
		notif.IsRead = true
	}
	return nil
}

// fakeStorage records saved and deleted paths without touching the disk.
type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	url := "/uploads/" + fileHeader.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	url := "/uploads/" + path + "/" + fileHeader.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return nil
}
