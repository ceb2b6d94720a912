package rules

import (
	"context"
	"testing"

	"github.com/yungbote/carryhelper-backend/internal/data/repos/testutil"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
)

func TestActivityItemRuleRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewActivityItemRuleRepo(db, testutil.Logger(t))

	testutil.SeedRule(t, ctx, tx, "class", "notebook", 5, "", false)
	testutil.SeedRule(t, ctx, tx, "class", "laptop", 9, "sneaker", false)
	testutil.SeedRule(t, ctx, tx, "class", "tie", 3, "formal", false)
	testutil.SeedRule(t, ctx, tx, "meet", "badge", 6, "formal", true)

	all, err := repo.ListByActivity(ctx, tx, "class")
	if err != nil {
		t.Fatalf("ListByActivity: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListByActivity: expected 3, got %d", len(all))
	}

	sneaker, err := repo.ListByActivityAndShoe(ctx, tx, "class", "sneaker")
	if err != nil {
		t.Fatalf("ListByActivityAndShoe: %v", err)
	}
	if len(sneaker) != 2 || sneaker[0].ItemName != "notebook" || sneaker[1].ItemName != "laptop" {
		t.Fatalf("ListByActivityAndShoe: unexpected rows: %+v", sneaker)
	}
}

func TestActivityItemRuleDefaultPriority(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewActivityItemRuleRepo(db, testutil.Logger(t))
	created, err := repo.Create(ctx, tx, []*types.ActivityItemRule{{ActType: "bill", ItemName: "wallet"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByActivity(ctx, tx, "bill")
	if err != nil {
		t.Fatalf("ListByActivity: %v", err)
	}
	if len(got) != 1 || got[0].ID != created[0].ID {
		t.Fatalf("ListByActivity: unexpected rows: %+v", got)
	}
	if got[0].Weight() != 1 {
		t.Fatalf("expected column default priority 1, got %d", got[0].Weight())
	}
}

func TestShoeCommonItemRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewShoeCommonItemRepo(db, testutil.Logger(t))
	u := testutil.SeedUser(t, ctx, tx, "alice")
	shoe := testutil.SeedShoe(t, ctx, tx, u.ID, "sneaker")

	testutil.SeedShoeTypeItems(t, ctx, tx, "sneaker", "water bottle", "towel")
	if _, err := repo.Create(ctx, tx, []*types.ShoeCommonItem{
		{ShoeID: testutil.Ptr(shoe.ID), ItemName: "insoles", Position: 0},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byType, err := repo.ListByShoeType(ctx, tx, "sneaker")
	if err != nil {
		t.Fatalf("ListByShoeType: %v", err)
	}
	if len(byType) != 2 || byType[0].ItemName != "water bottle" || byType[1].ItemName != "towel" {
		t.Fatalf("ListByShoeType: unexpected rows: %+v", byType)
	}

	byID, err := repo.ListByShoeID(ctx, tx, shoe.ID)
	if err != nil {
		t.Fatalf("ListByShoeID: %v", err)
	}
	if len(byID) != 1 || byID[0].ItemName != "insoles" {
		t.Fatalf("ListByShoeID: unexpected rows: %+v", byID)
	}
}

func TestEncounterRuleRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewEncounterRuleRepo(db, testutil.Logger(t))
	alice := testutil.SeedUser(t, ctx, tx, "alice")
	bob := testutil.SeedUser(t, ctx, tx, "bob")
	testutil.SeedEncounterRule(t, ctx, tx, alice.ID, bob.ID, "borrowed book")
	testutil.SeedEncounterRule(t, ctx, tx, bob.ID, alice.ID, "charger")

	got, err := repo.ListByOwner(ctx, tx, alice.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(got) != 1 || got[0].ItemName != "borrowed book" || got[0].CounterpartUserID != bob.ID {
		t.Fatalf("ListByOwner: unexpected rows: %+v", got)
	}
}
