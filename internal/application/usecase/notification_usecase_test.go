package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

type stubNotifRepo struct {
	created    []*entity.Notification
	records    []*repository.NotificationRecord
	lastUnread bool
	lastLimit  int
	readIDs    map[string]bool
}

func (r *stubNotifRepo) Create(n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *stubNotifRepo) List(onlyUnread bool, limit int) ([]*repository.NotificationRecord, error) {
	r.lastUnread, r.lastLimit = onlyUnread, limit
	return r.records, nil
}

func (r *stubNotifRepo) MarkAsRead(id string) (bool, error) {
	if r.readIDs == nil {
		return false, nil
	}
	return r.readIDs[id], nil
}

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(u *entity.User) error                  { return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error)      { return r.users[id], nil }
func (r *stubUserRepo) GetByEmail(_ string) (*entity.User, error)    { return nil, nil }
func (r *stubUserRepo) Update(_ *entity.User) error                  { return nil }
func (r *stubUserRepo) List() ([]*entity.User, error)                { return nil, nil }
func (r *stubUserRepo) ListPending() ([]*entity.User, error)         { return nil, nil }
func (r *stubUserRepo) Approve(_ string) (*entity.User, error)       { return nil, domain.ErrUserNotFound }
func (r *stubUserRepo) Delete(_ string) error                        { return nil }

func notifFixture() (*usecase.NotificationUseCase, *stubNotifRepo, *stubProductRepo) {
	notifRepo := &stubNotifRepo{}
	productRepo := newStubProductRepo()
	productRepo.products["p1"] = &entity.Product{
		ID: "p1", Name: "Teclado", SKU: "A-1", Quantity: 2, Price: decimal.NewFromInt(10),
	}
	userRepo := &stubUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Ana", Email: "ana@test.local", Role: entity.RoleStaff},
	}}
	return usecase.NewNotificationUseCase(notifRepo, productRepo, userRepo), notifRepo, productRepo
}

func TestCreateAlert_NombraProductoYRemitente(t *testing.T) {
	uc, notifRepo, _ := notifFixture()

	out, err := uc.CreateAlert("u1", "p1")
	require.NoError(t, err)

	assert.Equal(t, "Low Stock Alert", out.Title)
	assert.Contains(t, out.Message, "Ana")
	assert.Contains(t, out.Message, "Teclado")
	assert.False(t, out.IsRead)
	require.NotNil(t, out.Product)
	assert.Equal(t, int64(2), out.Product.Quantity)
	require.Len(t, notifRepo.created, 1)
}

func TestCreateAlert_ProductoInexistente(t *testing.T) {
	uc, _, _ := notifFixture()

	_, err := uc.CreateAlert("u1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationList_PorDefectoSoloNoLeidas(t *testing.T) {
	uc, notifRepo, _ := notifFixture()

	_, err := uc.List(false)
	require.NoError(t, err)
	assert.True(t, notifRepo.lastUnread, "sin show=all se piden solo las no leídas")
	assert.Equal(t, 15, notifRepo.lastLimit, "tope de 15 notificaciones")

	_, err = uc.List(true)
	require.NoError(t, err)
	assert.False(t, notifRepo.lastUnread, "show=all incluye las atendidas")
}

func TestMarkAsRead_NoExiste(t *testing.T) {
	uc, _, _ := notifFixture()

	err := uc.MarkAsRead("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkAsRead_OK(t *testing.T) {
	uc, notifRepo, _ := notifFixture()
	notifRepo.readIDs = map[string]bool{"n1": true}

	assert.NoError(t, uc.MarkAsRead("n1"))
}
