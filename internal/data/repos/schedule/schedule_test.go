package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/carryhelper-backend/internal/data/repos/testutil"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.User{{Name: "alice"}, {Name: "bob"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 || created[0].ID == 0 || created[1].ID == 0 {
		t.Fatalf("Create: unexpected result: %+v", created)
	}

	got, err := repo.GetByIDs(ctx, tx, []uint{created[1].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].Name != "bob" {
		t.Fatalf("GetByIDs: unexpected result: %+v", got)
	}

	exists, err := repo.Exists(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("Exists: expected true")
	}
	exists, err = repo.Exists(ctx, tx, created[1].ID+100)
	if err != nil {
		t.Fatalf("Exists (missing): %v", err)
	}
	if exists {
		t.Fatalf("Exists (missing): expected false")
	}

	page, err := repo.List(ctx, tx, 0, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("List: expected 1 row, got %d", len(page))
	}
}

func TestEventRepoUpcoming(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewEventRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "alice")
	other := testutil.SeedUser(t, ctx, tx, "bob")

	ref := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	testutil.SeedEvent(t, ctx, tx, u.ID, "class", "", ref.Add(-time.Hour), ref.Add(-30*time.Minute))
	late := testutil.SeedEvent(t, ctx, tx, u.ID, "meet", "", ref.Add(3*time.Hour), ref.Add(4*time.Hour))
	soon := testutil.SeedEvent(t, ctx, tx, u.ID, "class", "", ref.Add(10*time.Minute), ref.Add(time.Hour))
	mid := testutil.SeedEvent(t, ctx, tx, u.ID, "exercise", "", ref.Add(time.Hour), ref.Add(2*time.Hour))
	testutil.SeedEvent(t, ctx, tx, other.ID, "class", "", ref.Add(5*time.Minute), ref.Add(time.Hour))

	got, err := repo.Upcoming(ctx, tx, u.ID, ref, 2)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Upcoming: expected 2 events, got %d", len(got))
	}
	if got[0].ID != soon.ID || got[1].ID != mid.ID {
		t.Fatalf("Upcoming: unexpected order: %d, %d", got[0].ID, got[1].ID)
	}

	all, err := repo.ListByUsersFrom(ctx, tx, []uint{u.ID, other.ID}, ref)
	if err != nil {
		t.Fatalf("ListByUsersFrom: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("ListByUsersFrom: expected 4 events, got %d", len(all))
	}
	if all[len(all)-1].ID != late.ID {
		t.Fatalf("ListByUsersFrom: expected latest last")
	}

	none, err := repo.Upcoming(ctx, tx, u.ID, ref.Add(24*time.Hour), 2)
	if err != nil {
		t.Fatalf("Upcoming (empty): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("Upcoming (empty): expected none, got %d", len(none))
	}
}

func TestEventRepoListByUserNullStartsLast(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewEventRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "alice")

	if _, err := repo.Create(ctx, tx, []*types.Event{{UserID: u.ID, Title: "someday"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	ref := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	dated := testutil.SeedEvent(t, ctx, tx, u.ID, "class", "", ref, ref.Add(time.Hour))

	got, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 || got[0].ID != dated.ID || got[1].StartTime != nil {
		t.Fatalf("ListByUser: unexpected order: %+v", got)
	}
}

func TestEventRepoUpsertExternal(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewEventRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "alice")
	start := time.Date(2025, 12, 9, 9, 0, 0, 0, time.UTC)

	mk := func(title string) []*types.Event {
		return []*types.Event{{
			UserID:      u.ID,
			Title:       title,
			ActType:     testutil.Ptr("class"),
			StartTime:   testutil.Ptr(start),
			EndTime:     testutil.Ptr(start.Add(time.Hour)),
			ExternalUID: testutil.Ptr("uid-1@example.com"),
		}}
	}
	if _, err := repo.UpsertExternal(ctx, tx, mk("Algebra")); err != nil {
		t.Fatalf("UpsertExternal: %v", err)
	}
	if _, err := repo.UpsertExternal(ctx, tx, mk("Algebra II")); err != nil {
		t.Fatalf("UpsertExternal (again): %v", err)
	}

	got, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one row after re-import, got %d", len(got))
	}
	if got[0].Title != "Algebra II" {
		t.Fatalf("expected refreshed title, got %q", got[0].Title)
	}
}

func TestUserShoeRepoOwnership(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewUserShoeRepo(db, testutil.Logger(t))
	alice := testutil.SeedUser(t, ctx, tx, "alice")
	bob := testutil.SeedUser(t, ctx, tx, "bob")
	shoe := testutil.SeedShoe(t, ctx, tx, alice.ID, "formal")

	got, err := repo.GetForUser(ctx, tx, alice.ID, shoe.ID)
	if err != nil {
		t.Fatalf("GetForUser: %v", err)
	}
	if got == nil || got.ShoeType != "formal" {
		t.Fatalf("GetForUser: unexpected result: %+v", got)
	}

	got, err = repo.GetForUser(ctx, tx, bob.ID, shoe.ID)
	if err != nil {
		t.Fatalf("GetForUser (other user): %v", err)
	}
	if got != nil {
		t.Fatalf("GetForUser (other user): expected nil, got %+v", got)
	}

	list, err := repo.ListByUser(ctx, tx, alice.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListByUser: expected 1, got %d", len(list))
	}
}

func TestReminderLogRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewReminderLogRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "alice")
	ref := time.Date(2025, 12, 8, 10, 0, 0, 0, time.UTC)
	ev := testutil.SeedEvent(t, ctx, tx, u.ID, "class", "", ref, ref.Add(time.Hour))

	if _, err := repo.Create(ctx, tx, []*types.ReminderLog{
		{UserID: u.ID, EventID: ev.ID, ReminderText: "first"},
		{UserID: u.ID, EventID: ev.ID, ReminderText: "second", TriggeredBy: testutil.Ptr("sensor")},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByUser: expected 2, got %d", len(got))
	}
	if got[0].ReminderText != "second" {
		t.Fatalf("ListByUser: expected newest first, got %q", got[0].ReminderText)
	}
}
