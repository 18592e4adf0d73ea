package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ledkino.pl/models"
)

func newUserFixture() (*UserService, *models.User, *models.User) {
	admin := &models.User{
		BaseModel: models.BaseModel{ID: 1},
		Email:     "szef@ledkino.pl", Name: "Szef",
		Role: models.RoleAdmin, IsActive: true,
	}
	editor := &models.User{
		BaseModel: models.BaseModel{ID: 2},
		Email:     "kasia@ledkino.pl", Name: "Kasia",
		Role: models.RoleEditor, IsActive: true,
	}
	repo := &fakeUserRepo{users: map[uint]*models.User{1: admin, 2: editor}, nextID: 3}
	return &UserService{repo: repo}, admin, editor
}

func TestEditorCannotListUsers(t *testing.T) {
	svc, _, editor := newUserFixture()
	_, err := svc.List(context.Background(), editor)
	assert.ErrorIs(t, err, ErrUserForbidden)
}

func TestEditorCannotReadOtherAccount(t *testing.T) {
	svc, admin, editor := newUserFixture()
	_, err := svc.GetByID(context.Background(), editor, admin.ID)
	assert.ErrorIs(t, err, ErrUserForbidden)

	own, err := svc.GetByID(context.Background(), editor, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, editor.Email, own.Email)
}

func TestEditorCannotChangeOwnRole(t *testing.T) {
	svc, _, editor := newUserFixture()
	adminRole := models.RoleAdmin
	_, err := svc.Update(context.Background(), editor, editor.ID, UpdateUserInput{Role: &adminRole})
	assert.ErrorIs(t, err, ErrUserForbidden)
}

func TestEditorUpdatesOwnNameAndPassword(t *testing.T) {
	svc, _, editor := newUserFixture()
	name := "Katarzyna"
	password := "nowe-haslo-123"
	updated, err := svc.Update(context.Background(), editor, editor.ID, UpdateUserInput{
		Name:     &name,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "Katarzyna", updated.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)))
}

func TestAdminCreatesUserAndRejectsDuplicateEmail(t *testing.T) {
	svc, admin, editor := newUserFixture()

	created, err := svc.Create(context.Background(), admin, "nowy@ledkino.pl", "Nowy", "haslo1234", models.RoleEditor)
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "haslo1234", created.PasswordHash)

	_, err = svc.Create(context.Background(), admin, editor.Email, "Duplikat", "haslo1234", models.RoleEditor)
	assert.ErrorIs(t, err, ErrUserEmailTaken)
}

func TestEditorCannotCreateUsers(t *testing.T) {
	svc, _, editor := newUserFixture()
	_, err := svc.Create(context.Background(), editor, "nowy@ledkino.pl", "Nowy", "haslo1234", models.RoleEditor)
	assert.ErrorIs(t, err, ErrUserForbidden)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	svc, admin, editor := newUserFixture()
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, admin.ID), ErrUserSelfDelete)
	assert.NoError(t, svc.Delete(context.Background(), admin, editor.ID))
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, admin, _ := newUserFixture()
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, 404), ErrUserNotFound)
}
