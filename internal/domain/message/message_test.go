package message

import (
	"testing"

	"github.com/justdogsza/dog-training-api/internal/models"
)

func direct(sender, recipient uint) models.Message {
	return models.Message{SenderID: sender, RecipientID: &recipient}
}

func announcement(sender uint, roles ...models.Role) models.Message {
	return models.Message{
		SenderID:       sender,
		IsAnnouncement: true,
		TargetRoles:    models.RoleList(roles),
	}
}

func TestAddressedDirectMessage(t *testing.T) {
	m := direct(1, 2)

	if !Addressed(m, 2, models.RoleParent) {
		t.Fatal("the named recipient must be addressed")
	}
	if Addressed(m, 3, models.RoleParent) {
		t.Fatal("a third party must not be addressed")
	}
	if Addressed(m, 1, models.RoleAdmin) {
		t.Fatal("the sender must not be addressed by their own message")
	}
}

func TestAddressedAnnouncementRoleTargeting(t *testing.T) {
	m := announcement(1, models.RoleTrainer, models.RoleBehaviorist)

	if !Addressed(m, 2, models.RoleTrainer) {
		t.Fatal("trainer must be addressed by a trainer-targeted announcement")
	}
	if !Addressed(m, 3, models.RoleBehaviorist) {
		t.Fatal("behaviorist must be addressed")
	}
	if Addressed(m, 4, models.RoleParent) {
		t.Fatal("parent must not be addressed by a staff announcement")
	}
	if Addressed(m, 1, models.RoleTrainer) {
		t.Fatal("the sender must not be addressed by their own announcement")
	}
}

func TestAddressedAnnouncementEmptyTargetsReachesEveryone(t *testing.T) {
	m := announcement(1)

	for _, role := range []models.Role{
		models.RoleAdmin, models.RoleTrainer, models.RoleParent, models.RoleBehaviorist,
	} {
		if !Addressed(m, 2, role) {
			t.Fatalf("role %s must be addressed by an untargeted announcement", role)
		}
	}
}

func TestVisibleToIncludesSentMessages(t *testing.T) {
	m := direct(1, 2)

	if !VisibleTo(m, 1, models.RoleParent) {
		t.Fatal("the sender must see their own message")
	}
	if !VisibleTo(m, 2, models.RoleParent) {
		t.Fatal("the recipient must see the message")
	}
	if VisibleTo(m, 3, models.RoleAdmin) {
		t.Fatal("an unrelated user must not see a direct message")
	}
}
