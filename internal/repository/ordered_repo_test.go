package repository

import (
	"errors"
	"testing"

	"anima/internal/models"

	"gorm.io/gorm"
)

func newTestimonialRepo(t *testing.T) *OrderedRepository[models.Testimonial] {
	t.Helper()
	return NewOrderedRepository[models.Testimonial](newTestDB(t), "is_active")
}

func seedTestimonials(t *testing.T, repo *OrderedRepository[models.Testimonial], orders ...int) []models.Testimonial {
	t.Helper()
	out := make([]models.Testimonial, 0, len(orders))
	for _, o := range orders {
		item := models.Testimonial{
			AuthorName: "Author",
			Quote:      "quote",
			SortOrder:  o,
		}
		if err := repo.Create(&item); err != nil {
			t.Fatalf("create: %v", err)
		}
		out = append(out, item)
	}
	return out
}

func TestCreateDefaultsActive(t *testing.T) {
	repo := newTestimonialRepo(t)
	item := models.Testimonial{AuthorName: "A", Quote: "q"}
	if err := repo.Create(&item); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !item.IsActive {
		t.Fatalf("expected is_active default true")
	}
	if item.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCreateHonorsSuppliedVisibility(t *testing.T) {
	repo := newTestimonialRepo(t)
	item := models.Testimonial{AuthorName: "A", Quote: "q", IsActive: false}
	if err := repo.Create(&item, "author_name", "quote", "is_active"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.IsActive {
		t.Fatalf("explicit is_active=false lost to the column default")
	}
	visible, err := repo.ListVisible()
	if err != nil {
		t.Fatalf("listvisible: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("row created hidden leaked into visible list")
	}
	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("listall: %v", err)
	}
	if len(all) != 1 || all[0].IsActive {
		t.Fatalf("stored row wrong: %+v", all)
	}
}

func TestListStableTiebreak(t *testing.T) {
	repo := newTestimonialRepo(t)
	seedTestimonials(t, repo, 5, 5, 5)

	for i := 0; i < 3; i++ {
		list, err := repo.ListAll()
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(list))
		}
		for j := 1; j < len(list); j++ {
			if list[j-1].ID >= list[j].ID {
				t.Fatalf("equal orders must tiebreak by id: %d before %d", list[j-1].ID, list[j].ID)
			}
		}
	}
}

func TestVisibilityFilterIsSubset(t *testing.T) {
	repo := newTestimonialRepo(t)
	items := seedTestimonials(t, repo, 0, 1, 2)
	if _, err := repo.Update(items[1].ID, map[string]any{"is_active": false}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("listall: %v", err)
	}
	visible, err := repo.ListVisible()
	if err != nil {
		t.Fatalf("listvisible: %v", err)
	}
	if len(all) != 3 || len(visible) != 2 {
		t.Fatalf("expected 3 total / 2 visible, got %d / %d", len(all), len(visible))
	}
	inAll := map[uint]models.Testimonial{}
	for _, it := range all {
		inAll[it.ID] = it
	}
	for _, it := range visible {
		full, ok := inAll[it.ID]
		if !ok {
			t.Fatalf("visible row %d missing from full list", it.ID)
		}
		if !full.IsActive {
			t.Fatalf("inactive row %d leaked into visible list", it.ID)
		}
	}
}

func TestPartialUpdateRetainsFields(t *testing.T) {
	repo := newTestimonialRepo(t)
	item := models.Testimonial{AuthorName: "A", AuthorDetail: "parent", Quote: "original", Rating: 4}
	if err := repo.Create(&item); err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := repo.Update(item.ID, map[string]any{"quote": "edited"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quote != "edited" {
		t.Fatalf("patched field not applied: %q", updated.Quote)
	}
	if updated.AuthorDetail != "parent" || updated.Rating != 4 {
		t.Fatalf("unpatched fields lost: %+v", updated)
	}
}

func TestUpdateMissingIDReturnsNotFound(t *testing.T) {
	repo := newTestimonialRepo(t)
	if _, err := repo.Update(9999, map[string]any{"quote": "x"}); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	repo := newTestimonialRepo(t)
	items := seedTestimonials(t, repo, 0)
	if err := repo.Delete(items[0].ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(items[0].ID); err != nil {
		t.Fatalf("second delete must succeed: %v", err)
	}
	if err := repo.Delete(4242); err != nil {
		t.Fatalf("deleting unknown id must succeed: %v", err)
	}
}

func TestDeleteKeepsSurvivingOrders(t *testing.T) {
	repo := newTestimonialRepo(t)
	items := seedTestimonials(t, repo, 0, 1, 2)
	if err := repo.Delete(items[1].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err := repo.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(list))
	}
	// Gaps are allowed; survivors keep their previous order values.
	if list[0].SortOrder != 0 || list[1].SortOrder != 2 {
		t.Fatalf("survivors renumbered: %d, %d", list[0].SortOrder, list[1].SortOrder)
	}
}

func TestReorderScenario(t *testing.T) {
	repo := newTestimonialRepo(t)
	items := seedTestimonials(t, repo, 0, 1, 2)

	list, err := repo.Reorder([]OrderPair{
		{ID: items[2].ID, Order: 0},
		{ID: items[0].ID, Order: 1},
		{ID: items[1].ID, Order: 2},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	want := []uint{items[2].ID, items[0].ID, items[1].ID}
	if len(list) != 3 {
		t.Fatalf("expected full collection back, got %d rows", len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, list[i].ID)
		}
	}
}

func TestReorderEmptyInput(t *testing.T) {
	repo := newTestimonialRepo(t)
	if _, err := repo.Reorder(nil); !errors.Is(err, ErrEmptyReorder) {
		t.Fatalf("expected ErrEmptyReorder, got %v", err)
	}
}

func TestReorderSkipsUnknownIDs(t *testing.T) {
	repo := newTestimonialRepo(t)
	items := seedTestimonials(t, repo, 0, 1)

	list, err := repo.Reorder([]OrderPair{
		{ID: items[1].ID, Order: 0},
		{ID: 9999, Order: 1}, // stale id from a client race
		{ID: items[0].ID, Order: 2},
	})
	if err != nil {
		t.Fatalf("unknown ids must be skipped, got %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(list))
	}
	if list[0].ID != items[1].ID || list[1].ID != items[0].ID {
		t.Fatalf("known ids not reordered: %v", []uint{list[0].ID, list[1].ID})
	}
}

func TestReorderAppliesWholeBatch(t *testing.T) {
	repo := newTestimonialRepo(t)
	items := seedTestimonials(t, repo, 0, 1, 2, 3)

	pairs := []OrderPair{
		{ID: items[0].ID, Order: 30},
		{ID: items[1].ID, Order: 20},
		{ID: items[2].ID, Order: 10},
		{ID: items[3].ID, Order: 0},
	}
	list, err := repo.Reorder(pairs)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	byID := map[uint]int{}
	for _, it := range list {
		byID[it.ID] = it.SortOrder
	}
	for _, p := range pairs {
		if byID[p.ID] != p.Order {
			t.Fatalf("pair (%d,%d) not applied, got %d", p.ID, p.Order, byID[p.ID])
		}
	}
}
