// Package seed loads rule tables from a YAML file.
//
//	rules:
//	  - act_type: class
//	    item_name: notebook
//	    base_priority: 5
//	    shoe_type: sneaker
//	    is_default: false
//	shoe_items:
//	  sneaker: [water bottle, towel]
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/carryhelper-backend/internal/data/repos"
	types "github.com/yungbote/carryhelper-backend/internal/domain"
	"github.com/yungbote/carryhelper-backend/internal/platform/logger"
)

type Rule struct {
	ActType      string  `yaml:"act_type"`
	ItemName     string  `yaml:"item_name"`
	BasePriority *int    `yaml:"base_priority"`
	ShoeType     *string `yaml:"shoe_type"`
	IsDefault    bool    `yaml:"is_default"`
	TimeTag      *string `yaml:"time_tag"`
}

type File struct {
	Rules     []Rule              `yaml:"rules"`
	ShoeItems map[string][]string `yaml:"shoe_items"`
}

type Summary struct {
	Rules     int
	ShoeItems int
}

func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &f, f.validate()
}

func (f *File) validate() error {
	var errs []error
	for i, r := range f.Rules {
		if strings.TrimSpace(r.ActType) == "" || strings.TrimSpace(r.ItemName) == "" {
			errs = append(errs, fmt.Errorf("rules[%d]: act_type and item_name are required", i))
		}
		if r.BasePriority != nil && *r.BasePriority < 0 {
			errs = append(errs, fmt.Errorf("rules[%d]: base_priority must be >= 0", i))
		}
	}
	for shoe := range f.ShoeItems {
		if strings.TrimSpace(shoe) == "" {
			errs = append(errs, errors.New("shoe_items: empty shoe type"))
		}
	}
	return errors.Join(errs...)
}

type Loader struct {
	db        *gorm.DB
	log       *logger.Logger
	rules     repos.ActivityItemRuleRepo
	shoeItems repos.ShoeCommonItemRepo
}

func NewLoader(db *gorm.DB, baseLog *logger.Logger, rules repos.ActivityItemRuleRepo, shoeItems repos.ShoeCommonItemRepo) *Loader {
	return &Loader{db: db, log: baseLog.With("component", "SeedLoader"), rules: rules, shoeItems: shoeItems}
}

// Apply inserts the file in one transaction. With replace set, existing
// rules and type-keyed shoe items are removed first.
func (l *Loader) Apply(ctx context.Context, f *File, replace bool) (Summary, error) {
	var sum Summary
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.Where("1 = 1").Delete(&types.ActivityItemRule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("shoe_id IS NULL").Delete(&types.ShoeCommonItem{}).Error; err != nil {
				return err
			}
		}

		rows := make([]*types.ActivityItemRule, 0, len(f.Rules))
		for _, r := range f.Rules {
			row := &types.ActivityItemRule{
				ActType:      strings.ToLower(strings.TrimSpace(r.ActType)),
				ItemName:     strings.TrimSpace(r.ItemName),
				BasePriority: r.BasePriority,
				IsDefault:    r.IsDefault,
				TimeTag:      r.TimeTag,
			}
			if r.ShoeType != nil && strings.TrimSpace(*r.ShoeType) != "" {
				st := strings.ToLower(strings.TrimSpace(*r.ShoeType))
				row.ShoeType = &st
			}
			rows = append(rows, row)
		}
		created, err := l.rules.Create(ctx, tx, rows)
		if err != nil {
			return err
		}
		sum.Rules = len(created)

		shoes := make([]string, 0, len(f.ShoeItems))
		for shoe := range f.ShoeItems {
			shoes = append(shoes, shoe)
		}
		sort.Strings(shoes)
		for _, shoe := range shoes {
			st := strings.ToLower(strings.TrimSpace(shoe))
			existing, err := l.shoeItems.ListByShoeType(ctx, tx, st)
			if err != nil {
				return err
			}
			var items []*types.ShoeCommonItem
			for _, name := range f.ShoeItems[shoe] {
				if name = strings.TrimSpace(name); name == "" {
					continue
				}
				shoeType := st
				items = append(items, &types.ShoeCommonItem{
					ShoeType: &shoeType,
					ItemName: name,
					Position: len(existing) + len(items),
				})
			}
			created, err := l.shoeItems.Create(ctx, tx, items)
			if err != nil {
				return err
			}
			sum.ShoeItems += len(created)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	l.log.Info("seed applied", "rules", sum.Rules, "shoe_items", sum.ShoeItems, "replace", replace)
	return sum, nil
}
