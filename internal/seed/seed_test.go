package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	"github.com/yungbote/carryhelper-backend/internal/data/repos/testutil"
)

const sampleSeed = `
rules:
  - act_type: Class
    item_name: notebook
    base_priority: 5
  - act_type: class
    item_name: laptop
    base_priority: 9
    shoe_type: Sneaker
  - act_type: meet
    item_name: badge
    is_default: true
shoe_items:
  sneaker: [water bottle, " ", towel]
`

func TestParse(t *testing.T) {
	t.Parallel()
	f, err := Parse(strings.NewReader(sampleSeed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Rules) != 3 || len(f.ShoeItems["sneaker"]) != 3 {
		t.Fatalf("Parse: unexpected file %+v", f)
	}

	if _, err := Parse(strings.NewReader("rules:\n  - act_type: class\n")); err == nil {
		t.Fatalf("expected missing item_name to fail")
	}
	if _, err := Parse(strings.NewReader("rulez: []\n")); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
	empty, err := Parse(strings.NewReader(""))
	if err != nil || len(empty.Rules) != 0 {
		t.Fatalf("empty file: %+v %v", empty, err)
	}
}

func TestLoaderApply(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)
	ruleRepo := repos.NewActivityItemRuleRepo(db, log)
	shoeItemRepo := repos.NewShoeCommonItemRepo(db, log)
	loader := NewLoader(db, log, ruleRepo, shoeItemRepo)

	f, err := Parse(strings.NewReader(sampleSeed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	sum, err := loader.Apply(ctx, f, false)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if sum.Rules != 3 || sum.ShoeItems != 2 {
		t.Fatalf("Apply: unexpected summary %+v", sum)
	}

	class, err := ruleRepo.ListByActivityAndShoe(ctx, nil, "class", "sneaker")
	if err != nil {
		t.Fatalf("ListByActivityAndShoe: %v", err)
	}
	if len(class) != 2 {
		t.Fatalf("expected normalized act/shoe types, got %+v", class)
	}

	if _, err := loader.Apply(ctx, f, true); err != nil {
		t.Fatalf("Apply (replace): %v", err)
	}
	all, err := ruleRepo.ListByActivity(ctx, nil, "class")
	if err != nil || len(all) != 2 {
		t.Fatalf("replace should not duplicate rules: got=%d err=%v", len(all), err)
	}
	items, err := shoeItemRepo.ListByShoeType(ctx, nil, "sneaker")
	if err != nil || len(items) != 2 || items[1].ItemName != "towel" || items[1].Position != 1 {
		t.Fatalf("replace should reset shoe items: %+v err=%v", items, err)
	}
}
