package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type fakeUserRepo struct {
	users       map[string]*entity.User
	deleted     []string
	roleUpdates map[string]entity.UserRole
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:       map[string]*entity.User{},
		roleUpdates: map[string]entity.UserRole{},
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, entity.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, avatarURL, googleID string) error {
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	u.Role = role
	f.roleUpdates[id] = role
	return u, nil
}

func (f *fakeUserRepo) TouchLogin(ctx context.Context, id, googleID string) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return entity.ErrUserNotFound
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestUpdateRole(t *testing.T) {
	actorID := uuid.New().String()
	targetID := uuid.New().String()
	repo := newFakeUserRepo(
		&entity.User{ID: actorID, Email: "admin@example.com", Role: entity.RoleAdmin},
		&entity.User{ID: targetID, Email: "user@example.com", Role: entity.RoleRegular},
	)
	uc := NewUsecase(repo, zap.NewNop())

	updated, err := uc.UpdateRole(context.Background(), actorID, targetID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, entity.RoleAdmin, repo.roleUpdates[targetID])
}

func TestUpdateRoleRejectsSelf(t *testing.T) {
	actorID := uuid.New().String()
	repo := newFakeUserRepo(&entity.User{ID: actorID, Role: entity.RoleAdmin})
	uc := NewUsecase(repo, zap.NewNop())

	_, err := uc.UpdateRole(context.Background(), actorID, actorID, entity.RoleRegular)
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
	assert.Empty(t, repo.roleUpdates)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	actorID := uuid.New().String()
	targetID := uuid.New().String()
	uc := NewUsecase(newFakeUserRepo(), zap.NewNop())

	_, err := uc.UpdateRole(context.Background(), actorID, targetID, entity.UserRole("superuser"))
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestUpdateRoleRejectsMalformedID(t *testing.T) {
	uc := NewUsecase(newFakeUserRepo(), zap.NewNop())

	_, err := uc.UpdateRole(context.Background(), uuid.New().String(), "not-a-uuid", entity.RoleAdmin)
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestDelete(t *testing.T) {
	actorID := uuid.New().String()
	targetID := uuid.New().String()
	repo := newFakeUserRepo(
		&entity.User{ID: actorID, Role: entity.RoleAdmin},
		&entity.User{ID: targetID, Role: entity.RoleRegular},
	)
	uc := NewUsecase(repo, zap.NewNop())

	require.NoError(t, uc.Delete(context.Background(), actorID, targetID))
	assert.Equal(t, []string{targetID}, repo.deleted)
}

func TestDeleteRejectsSelf(t *testing.T) {
	actorID := uuid.New().String()
	repo := newFakeUserRepo(&entity.User{ID: actorID, Role: entity.RoleAdmin})
	uc := NewUsecase(repo, zap.NewNop())

	err := uc.Delete(context.Background(), actorID, actorID)
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
	assert.Contains(t, repo.users, actorID)
}

func TestDeleteUnknownUser(t *testing.T) {
	uc := NewUsecase(newFakeUserRepo(), zap.NewNop())

	err := uc.Delete(context.Background(), uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}
