package passenger

import (
	"context"
	"testing"

	"railticket/internal/database"
	"railticket/internal/domain"
	"railticket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Passenger{}))
	return NewService(repository.NewPassengerRepository(db))
}

func testUser() *domain.User {
	return &domain.User{
		Username:    "traveler_01",
		FullName:    "张三",
		IDType:      domain.IDResident,
		IDNo:        "110101199001011234",
		PhoneCode:   "+86",
		PhoneNumber: "13800138000",
		Benefit:     domain.BenefitAdult,
	}
}

func TestEnsureSelf_CreatesOnce(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	u := testUser()

	require.NoError(t, svc.EnsureSelf(ctx, u))

	list, err := svc.List(ctx, u.Username)
	require.NoError(t, err)
	require.Len(t, list, 1)
	self := list[0]
	assert.True(t, self.IsSelf)
	assert.Equal(t, "张三", self.Name)

	// re-syncing after a profile change keeps the same entry
	u.PhoneNumber = "13900139000"
	require.NoError(t, svc.EnsureSelf(ctx, u))

	list, err = svc.List(ctx, u.Username)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, self.ID, list[0].ID)
	assert.Equal(t, "13900139000", list[0].PhoneNumber)
}

func TestList_SelfFirst(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "traveler_01", AddPassengerRequest{
		Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321",
	})
	require.NoError(t, err)
	require.NoError(t, svc.EnsureSelf(ctx, testUser()))

	list, err := svc.List(ctx, "traveler_01")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsSelf, "the self entry sorts first even when added later")
}

func TestAdd_DefaultsBenefit(t *testing.T) {
	svc := setupService(t)

	p, err := svc.Add(context.Background(), "traveler_01", AddPassengerRequest{
		Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BenefitAdult, p.Benefit)
	assert.False(t, p.IsSelf)
}

func TestUpdate_PatchesPhoneAndBenefit(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Add(ctx, "traveler_01", AddPassengerRequest{
		Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321",
		PhoneCode: "+86", PhoneNumber: "13800138000",
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, "traveler_01", p.ID, UpdatePassengerRequest{
		PhoneNumber: "13700137000",
		Benefit:     domain.BenefitStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "13700137000", got.PhoneNumber)
	assert.Equal(t, domain.BenefitStudent, got.Benefit)
	assert.Equal(t, "李四", got.Name, "identity fields are not editable")
}

func TestUpdate_OwnerScoped(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	p, err := svc.Add(ctx, "traveler_01", AddPassengerRequest{
		Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "someone_else", p.ID, UpdatePassengerRequest{Benefit: domain.BenefitChild})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Bulk(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Add(ctx, "traveler_01", AddPassengerRequest{Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321"})
	require.NoError(t, err)
	b, err := svc.Add(ctx, "traveler_01", AddPassengerRequest{Name: "王五", IDType: domain.IDResident, IDNo: "110101199808087654"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "traveler_01", a.ID, b.ID))

	list, err := svc.List(ctx, "traveler_01")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Delete(ctx, "traveler_01"), ErrValidation)
}
