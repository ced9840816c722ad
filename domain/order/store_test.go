package order_test

import (
	"changeflow/bizerror"
	"changeflow/domain"
	"changeflow/domain/order"
	"testing"

	. "github.com/onsi/gomega"
)

func orderWith(id int64, title string, date domain.Date) domain.ChangeOrder {
	return domain.ChangeOrder{ID: id, Title: title, Description: "d", Reason: "r",
		Status: domain.StatusPendingApproval, DateRequested: date}
}

func TestStoreCreate(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should assign max existing id plus one and re-sort descending", func(t *testing.T) {
		s := order.NewStore()
		s.ReplaceAll([]domain.ChangeOrder{
			orderWith(1, "first", domain.DateOf(2024, 1, 1)),
			orderWith(3, "third", domain.DateOf(2024, 2, 1)),
		}, domain.DefaultAppSettings())

		created, err := s.Create(orderWith(0, "new", domain.DateOf(2024, 3, 1)))
		Expect(err).To(BeNil())
		Expect(created.ID).To(Equal(int64(4)))

		ids := []int64{}
		for _, o := range s.Orders() {
			ids = append(ids, o.ID)
		}
		Expect(ids).To(Equal([]int64{4, 3, 1}))
	})

	t.Run("should assign id 1 on an empty collection", func(t *testing.T) {
		s := order.NewStore()
		created, err := s.Create(orderWith(0, "new", domain.DateOf(2024, 3, 1)))
		Expect(err).To(BeNil())
		Expect(created.ID).To(Equal(int64(1)))
	})

	t.Run("should reject a non-zero id", func(t *testing.T) {
		s := order.NewStore()
		_, err := s.Create(orderWith(7, "bad", domain.DateOf(2024, 3, 1)))
		Expect(err).To(Equal(bizerror.ErrInvalidState))
		Expect(s.Orders()).To(BeEmpty())
	})
}

func TestStoreUpdate(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should replace the entry wholesale without re-sorting", func(t *testing.T) {
		s := order.NewStore()
		s.ReplaceAll([]domain.ChangeOrder{
			orderWith(2, "two", domain.DateOf(2024, 1, 1)),
			orderWith(1, "one", domain.DateOf(2024, 2, 1)),
		}, domain.DefaultAppSettings())

		updated := orderWith(1, "one updated", domain.DateOf(2024, 2, 2))
		_, err := s.Update(updated)
		Expect(err).To(BeNil())

		records := s.Orders()
		Expect(records[0].ID).To(Equal(int64(2)))
		Expect(records[1]).To(Equal(updated))
	})

	t.Run("should fail with not found for an unknown id", func(t *testing.T) {
		s := order.NewStore()
		_, err := s.Update(orderWith(9, "ghost", domain.DateOf(2024, 1, 1)))
		Expect(err).To(Equal(bizerror.ErrNotFound))
	})
}

func TestStoreDelete(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should remove every selected id and ignore absent ones", func(t *testing.T) {
		s := order.NewStore()
		s.ReplaceAll([]domain.ChangeOrder{
			orderWith(3, "c", domain.DateOf(2024, 1, 3)),
			orderWith(2, "b", domain.DateOf(2024, 1, 2)),
			orderWith(1, "a", domain.DateOf(2024, 1, 1)),
		}, domain.DefaultAppSettings())

		removed := s.Delete(map[int64]bool{2: true, 99: true})
		Expect(removed).To(Equal(1))
		Expect(len(s.Orders())).To(Equal(2))

		// idempotent
		removed = s.Delete(map[int64]bool{2: true, 99: true})
		Expect(removed).To(Equal(0))
		Expect(len(s.Orders())).To(Equal(2))
	})
}

func TestStoreRenumber(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should reassign ids in dateRequested order", func(t *testing.T) {
		s := order.NewStore()
		s.ReplaceAll([]domain.ChangeOrder{
			orderWith(5, "march", domain.DateOf(2024, 3, 1)),
			orderWith(2, "january", domain.DateOf(2024, 1, 10)),
			orderWith(9, "february", domain.DateOf(2024, 2, 15)),
		}, domain.DefaultAppSettings())

		renumbered := s.Renumber()
		Expect(len(renumbered)).To(Equal(3))
		Expect(renumbered[0].Title).To(Equal("january"))
		Expect(renumbered[0].ID).To(Equal(int64(1)))
		Expect(renumbered[1].Title).To(Equal("february"))
		Expect(renumbered[1].ID).To(Equal(int64(2)))
		Expect(renumbered[2].Title).To(Equal("march"))
		Expect(renumbered[2].ID).To(Equal(int64(3)))
	})

	t.Run("should be idempotent without intervening edits", func(t *testing.T) {
		s := order.NewStore()
		s.ReplaceAll([]domain.ChangeOrder{
			orderWith(5, "march", domain.DateOf(2024, 3, 1)),
			orderWith(2, "january", domain.DateOf(2024, 1, 10)),
		}, domain.DefaultAppSettings())

		first := s.Renumber()
		second := s.Renumber()
		Expect(second).To(Equal(first))
	})

	t.Run("should keep the original relative order on date ties", func(t *testing.T) {
		s := order.NewStore()
		date := domain.DateOf(2024, 4, 1)
		s.ReplaceAll([]domain.ChangeOrder{
			orderWith(8, "first of the day", date),
			orderWith(3, "second of the day", date),
		}, domain.DefaultAppSettings())

		renumbered := s.Renumber()
		Expect(renumbered[0].Title).To(Equal("first of the day"))
		Expect(renumbered[1].Title).To(Equal("second of the day"))
	})

	t.Run("should be a silent no-op on an empty collection", func(t *testing.T) {
		s := order.NewStore()
		Expect(s.Renumber()).To(BeNil())
		Expect(s.Orders()).To(BeEmpty())
	})
}

func TestStoreReplaceAll(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should swap collection and settings atomically", func(t *testing.T) {
		s := order.NewStore()
		s.ReplaceAll([]domain.ChangeOrder{orderWith(1, "old", domain.DateOf(2024, 1, 1))}, domain.DefaultAppSettings())

		settings := domain.DefaultAppSettings()
		settings.ProjectName = "Gas Main Replacement"
		settings.ApproverConfig[domain.RoleManagerGasEngineering] = "Alice Green"
		orders := []domain.ChangeOrder{orderWith(4, "imported", domain.DateOf(2024, 6, 1))}

		s.ReplaceAll(orders, settings)
		Expect(s.Orders()).To(Equal(orders))
		Expect(s.Settings()).To(Equal(settings))
	})

	t.Run("settings snapshot should not alias the stored map", func(t *testing.T) {
		s := order.NewStore()
		snapshot := s.Settings()
		snapshot.ApproverConfig[domain.RoleManagerGasEngineering] = "Mallory"
		Expect(s.Settings().ApproverConfig[domain.RoleManagerGasEngineering]).To(Equal(""))
	})
}
