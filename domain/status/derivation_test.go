package status_test

import (
	"changeflow/domain"
	"changeflow/domain/status"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Effective", func() {
	var (
		approved domain.Approval
		pending  domain.Approval
		rejected domain.Approval
	)

	BeforeEach(func() {
		date := domain.DateOf(2024, 3, 1)
		approved = domain.Approval{Name: "Alice Green", Status: domain.ApprovalApproved, ApprovalDate: &date}
		pending = domain.Approval{Name: "Bob Stone", Status: domain.ApprovalPending}
		rejected = domain.Approval{Name: "Carol Reed", Status: domain.ApprovalRejected, ApprovalDate: &date}
	})

	Describe("rejection rule", func() {
		Context("with at least one rejected approval", func() {
			It("should derive Rejected regardless of the other approvals", func() {
				Ω(status.Effective(domain.StatusPendingApproval, []domain.Approval{rejected})).Should(Equal(domain.StatusRejected))
				Ω(status.Effective(domain.StatusPendingApproval, []domain.Approval{approved, rejected})).Should(Equal(domain.StatusRejected))
				Ω(status.Effective(domain.StatusApproved, []domain.Approval{pending, rejected, approved})).Should(Equal(domain.StatusRejected))
			})

			It("should override sticky manual progression", func() {
				Ω(status.Effective(domain.StatusInProgress, []domain.Approval{rejected})).Should(Equal(domain.StatusRejected))
				Ω(status.Effective(domain.StatusCompleted, []domain.Approval{approved, rejected})).Should(Equal(domain.StatusRejected))
			})
		})
	})

	Describe("full approval rule", func() {
		Context("with a non-empty approval set where every entry is approved", func() {
			It("should derive Approved", func() {
				Ω(status.Effective(domain.StatusPendingApproval, []domain.Approval{approved})).Should(Equal(domain.StatusApproved))
				Ω(status.Effective(domain.StatusRejected, []domain.Approval{approved, approved})).Should(Equal(domain.StatusApproved))
			})

			It("should leave sticky statuses unchanged", func() {
				Ω(status.Effective(domain.StatusInProgress, []domain.Approval{approved, approved})).Should(Equal(domain.StatusInProgress))
				Ω(status.Effective(domain.StatusCompleted, []domain.Approval{approved})).Should(Equal(domain.StatusCompleted))
			})
		})
	})

	Describe("pending rule", func() {
		Context("with an empty approval set", func() {
			It("should derive Pending Approval", func() {
				Ω(status.Effective(domain.StatusPendingApproval, nil)).Should(Equal(domain.StatusPendingApproval))
				Ω(status.Effective(domain.StatusApproved, []domain.Approval{})).Should(Equal(domain.StatusPendingApproval))
			})
		})

		Context("with a mix of pending and approved entries", func() {
			It("should derive Pending Approval", func() {
				Ω(status.Effective(domain.StatusPendingApproval, []domain.Approval{approved, pending})).Should(Equal(domain.StatusPendingApproval))
			})

			It("should leave sticky statuses unchanged", func() {
				Ω(status.Effective(domain.StatusInProgress, []domain.Approval{pending})).Should(Equal(domain.StatusInProgress))
				Ω(status.Effective(domain.StatusCompleted, []domain.Approval{approved, pending})).Should(Equal(domain.StatusCompleted))
			})
		})
	})
})
