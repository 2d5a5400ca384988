package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    EnrollmentStatus
		to      EnrollmentStatus
		allowed bool
	}{
		{StatusPending, StatusPendingForFA, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusApproved, false},
		{StatusPending, StatusPending, false},
		{StatusPendingForFA, StatusApproved, true},
		{StatusPendingForFA, StatusRejected, true},
		{StatusPendingForFA, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPendingForFA, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPendingForFA.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestEnrollmentStatusLabels(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "Pending for FA", StatusPendingForFA.Label())
	assert.Equal(t, "Approved", StatusApproved.Label())
	assert.Equal(t, "Rejected", StatusRejected.Label())
}

func TestParseEnrollmentStatus(t *testing.T) {
	status, ok := ParseEnrollmentStatus("Pending for FA")
	assert.True(t, ok)
	assert.Equal(t, StatusPendingForFA, status)

	// "Enrolled" is the legacy label for an approved enrollment
	status, ok = ParseEnrollmentStatus("Enrolled")
	assert.True(t, ok)
	assert.Equal(t, StatusApproved, status)

	_, ok = ParseEnrollmentStatus("Cancelled")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	category, ok := ParseCategory("Instructor")
	assert.True(t, ok)
	assert.Equal(t, CategoryInstructor, category)

	assert.Equal(t, "Student", CategoryStudent.Label())

	_, ok = ParseCategory("instructor")
	assert.False(t, ok)
}
