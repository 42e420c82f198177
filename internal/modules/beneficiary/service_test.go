package beneficiary

import (
	"context"
	"fmt"
	"testing"

	"railticket/internal/database"
	"railticket/internal/domain"
	"railticket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*Service, *repository.PassengerRepository) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Beneficiary{}, &domain.Passenger{}))

	passengers := repository.NewPassengerRepository(db)
	return NewService(repository.NewBeneficiaryRepository(db), passengers), passengers
}

func addRequest(name, idNo string) AddBeneficiaryRequest {
	return AddBeneficiaryRequest{Name: name, IDType: domain.IDResident, IDNo: idNo}
}

func TestEnsureSelf_Upserts(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	u := &domain.User{
		Username: "traveler_01", FullName: "张三",
		IDType: domain.IDResident, IDNo: "110101199001011234",
		PhoneCode: "+86", PhoneNumber: "13800138000",
	}

	require.NoError(t, svc.EnsureSelf(ctx, u))
	require.NoError(t, svc.EnsureSelf(ctx, u))

	list, err := svc.List(ctx, "traveler_01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "张三", list[0].Name)
	assert.True(t, list[0].Verified)
	assert.NotEmpty(t, list[0].EffectiveDate)
}

func TestAdd_DuplicateName(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "traveler_01", addRequest("李四", "110101199505054321"))
	require.NoError(t, err)

	_, err = svc.Add(ctx, "traveler_01", addRequest("李四", "220202199606067890"))
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "受让人李四已经存在!", dup.Error())
}

func TestAdd_CapAtEight(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for i := 0; i < domain.BeneficiaryLimit; i++ {
		_, err := svc.Add(ctx, "traveler_01", addRequest(
			fmt.Sprintf("受让人%d", i),
			fmt.Sprintf("11010119900101%04d", i),
		))
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, "traveler_01", addRequest("第九人", "110101199001019999"))
	assert.ErrorIs(t, err, ErrLimit)
}

func TestUpdate_PatchesContactOnly(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	b, err := svc.Add(ctx, "traveler_01", addRequest("李四", "110101199505054321"))
	require.NoError(t, err)

	got, err := svc.Update(ctx, "traveler_01", b.ID, UpdateBeneficiaryRequest{
		PhoneCode: "+86", PhoneNumber: "13700137000", Email: "lisi@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "13700137000", got.PhoneNumber)
	assert.Equal(t, "lisi@example.com", got.Email)
	assert.Equal(t, "李四", got.Name)

	_, err = svc.Update(ctx, "someone_else", b.ID, UpdateBeneficiaryRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	b, err := svc.Add(ctx, "traveler_01", addRequest("李四", "110101199505054321"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "traveler_01", b.ID))

	list, err := svc.List(ctx, "traveler_01")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFromPassengers(t *testing.T) {
	svc, passengers := setupService(t)
	ctx := context.Background()

	a := &domain.Passenger{ID: "p1", Owner: "traveler_01", Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321"}
	b := &domain.Passenger{ID: "p2", Owner: "traveler_01", Name: "王五", IDType: domain.IDResident, IDNo: "110101199808087654"}
	require.NoError(t, passengers.Create(ctx, a))
	require.NoError(t, passengers.Create(ctx, b))

	added, err := svc.FromPassengers(ctx, "traveler_01", []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Len(t, added, 2)

	list, err := svc.List(ctx, "traveler_01")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// converting again collides on name
	_, err = svc.FromPassengers(ctx, "traveler_01", []string{"p1"})
	var dup *DuplicateNameError
	assert.ErrorAs(t, err, &dup)
}

func TestFromPassengers_CapApplies(t *testing.T) {
	svc, passengers := setupService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Add(ctx, "traveler_01", addRequest(
			fmt.Sprintf("受让人%d", i),
			fmt.Sprintf("11010119900101%04d", i),
		))
		require.NoError(t, err)
	}

	a := &domain.Passenger{ID: "p1", Owner: "traveler_01", Name: "李四", IDType: domain.IDResident, IDNo: "110101199505054321"}
	b := &domain.Passenger{ID: "p2", Owner: "traveler_01", Name: "王五", IDType: domain.IDResident, IDNo: "110101199808087654"}
	require.NoError(t, passengers.Create(ctx, a))
	require.NoError(t, passengers.Create(ctx, b))

	// 7 existing + 2 converted would exceed the cap of 8
	_, err := svc.FromPassengers(ctx, "traveler_01", []string{"p1", "p2"})
	assert.ErrorIs(t, err, ErrLimit)

	_, err = svc.FromPassengers(ctx, "traveler_01", []string{"p1"})
	assert.NoError(t, err)
}
