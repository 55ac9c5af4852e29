package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from   ArticleStatus
		action ArticleAction
		to     ArticleStatus
		ok     bool
	}{
		{StatusDraft, ActionSubmit, StatusPending, true},
		{StatusPending, ActionWithdraw, StatusDraft, true},
		{StatusPending, ActionApprove, StatusPublished, true},
		{StatusPending, ActionReject, StatusRejected, true},
		{StatusRejected, ActionSubmit, StatusPending, true},

		// published is terminal
		{StatusPublished, ActionSubmit, "", false},
		{StatusPublished, ActionWithdraw, "", false},
		{StatusPublished, ActionApprove, "", false},
		{StatusPublished, ActionReject, "", false},

		// undefined pairs
		{StatusDraft, ActionApprove, "", false},
		{StatusDraft, ActionReject, "", false},
		{StatusDraft, ActionWithdraw, "", false},
		{StatusRejected, ActionApprove, "", false},
		{StatusDraft, ArticleAction("publish"), "", false},
	}

	for _, tt := range tests {
		to, ok := Transition(tt.from, tt.action)
		assert.Equal(t, tt.ok, ok, "%s + %s", tt.from, tt.action)
		if tt.ok {
			assert.Equal(t, tt.to, to, "%s + %s", tt.from, tt.action)
		}
	}
}

func TestArticleStatus_Mutable(t *testing.T) {
	assert.True(t, StatusDraft.Mutable())
	assert.True(t, StatusPending.Mutable())
	assert.True(t, StatusRejected.Mutable())
	assert.False(t, StatusPublished.Mutable())
}

func TestArticleStatus_Valid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.False(t, ArticleStatus("archived").Valid())
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed(RoleAdmin, RoleAdmin))
	assert.True(t, RoleAllowed(RoleEducator, RoleAdmin, RoleEducator))
	assert.False(t, RoleAllowed(RoleStudent, RoleAdmin, RoleEducator))
	assert.False(t, RoleAllowed(Role("moderator"), RoleAdmin))
}

func TestEducatorProfile_AssignedTo(t *testing.T) {
	p := &EducatorProfile{SubjectIDs: []string{"sub-1", "sub-2"}}
	assert.True(t, p.AssignedTo("sub-1"))
	assert.False(t, p.AssignedTo("sub-3"))
}

func TestReportReason_Valid(t *testing.T) {
	assert.True(t, ReasonSpam.Valid())
	assert.False(t, ReportReason("boring").Valid())
}
