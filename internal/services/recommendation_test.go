package services

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	"github.com/yungbote/carryhelper-backend/internal/data/repos/testutil"
	"github.com/yungbote/carryhelper-backend/internal/recommend"
)

func TestRecommendationService(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)

	userRepo := repos.NewUserRepo(db, log)
	shoeRepo := repos.NewUserShoeRepo(db, log)
	eventRepo := repos.NewEventRepo(db, log)
	ruleRepo := repos.NewActivityItemRuleRepo(db, log)
	shoeItemRepo := repos.NewShoeCommonItemRepo(db, log)
	encounterRepo := repos.NewEncounterRuleRepo(db, log)

	ref := time.Date(2025, 12, 8, 9, 0, 0, 0, time.UTC)
	alice := testutil.SeedUser(t, ctx, db, "alice")
	bob := testutil.SeedUser(t, ctx, db, "bob")
	sneaker := testutil.SeedShoe(t, ctx, db, alice.ID, "sneaker")
	formal := testutil.SeedShoe(t, ctx, db, alice.ID, "formal")
	bobShoe := testutil.SeedShoe(t, ctx, db, bob.ID, "sneaker")
	testutil.SeedEvent(t, ctx, db, alice.ID, "class", "Room 1", ref.Add(10*time.Minute), ref.Add(time.Hour))
	testutil.SeedRule(t, ctx, db, "class", "notebook", 5, "", true)
	testutil.SeedShoeTypeItems(t, ctx, db, "sneaker", "water bottle")

	ruleStore := NewRuleStore(db, ruleRepo, shoeItemRepo)
	engine := recommend.NewEngine(log, ruleStore,
		NewScheduleStore(db, userRepo, shoeRepo, eventRepo, encounterRepo),
		recommend.DefaultConfig(),
		recommend.WithClock(func() time.Time { return ref }),
	)
	svc := NewRecommendationService(log, engine, ruleStore, shoeRepo, nil)

	wantPrefix := []string{"phone", "wallet", "key", "water bottle", "notebook"}
	checkItems := func(t *testing.T, res *recommend.Result) {
		t.Helper()
		if res.Current == nil {
			t.Fatalf("expected a current event")
		}
		if len(res.Items) < len(wantPrefix) {
			t.Fatalf("items too short: %v", res.Items)
		}
		for i, want := range wantPrefix {
			if res.Items[i] != want {
				t.Fatalf("items[%d]: got=%q want=%q (all=%v)", i, res.Items[i], want, res.Items)
			}
		}
	}

	t.Run("recommend", func(t *testing.T) {
		res, err := svc.Recommend(ctx, RecommendInput{UserID: alice.ID, ShoeType: "sneaker", At: &ref})
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		checkItems(t, res)
	})

	t.Run("missing shoe type", func(t *testing.T) {
		_, err := svc.Recommend(ctx, RecommendInput{UserID: alice.ID})
		wantStatus(t, err, 400, "missing_shoe_type")
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.Recommend(ctx, RecommendInput{UserID: bob.ID + 99, ShoeType: "sneaker"})
		wantStatus(t, err, 404, "user_not_found")
	})

	t.Run("detect shoe", func(t *testing.T) {
		res, err := svc.DetectShoe(ctx, alice.ID, sneaker.ID)
		if err != nil {
			t.Fatalf("DetectShoe: %v", err)
		}
		if res.ShoeType != "sneaker" {
			t.Fatalf("expected shoe type from the registered shoe, got %q", res.ShoeType)
		}
		checkItems(t, res)
	})

	t.Run("detect foreign shoe", func(t *testing.T) {
		_, err := svc.DetectShoe(ctx, alice.ID, bobShoe.ID)
		wantStatus(t, err, 404, "shoe_not_found")
	})

	t.Run("common items", func(t *testing.T) {
		got, err := svc.CommonItems(ctx, sneaker.ID)
		if err != nil {
			t.Fatalf("CommonItems: %v", err)
		}
		if got.ShoeType != "sneaker" || len(got.Items) != 1 || got.Items[0] != "water bottle" {
			t.Fatalf("CommonItems: unexpected %+v", got)
		}

		_, err = svc.CommonItems(ctx, formal.ID)
		wantStatus(t, err, 404, "common_items_not_found")

		_, err = svc.CommonItems(ctx, bobShoe.ID+99)
		wantStatus(t, err, 404, "shoe_not_found")
	})
}
