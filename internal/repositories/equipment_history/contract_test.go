package equipmenthistory_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	equipmenthistory "github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
)

// contractSuite holds the behaviour every Repository implementation shares
type contractSuite struct {
	suite.Suite

	ctx     context.Context
	newRepo func(opts equipmenthistory.Options) equipmenthistory.Repository
	repo    equipmenthistory.Repository
}

func (s *contractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(equipmenthistory.Options{Limit: 3})
}

func (s *contractSuite) appendN(ownerID string, n int) {
	for i := 1; i <= n; i++ {
		_, err := s.repo.Append(s.ctx, equipmenthistory.AppendInput{
			OwnerID:   ownerID,
			Equipment: testutils.NewTestEquipment(fmt.Sprintf("eq_%d", i)),
		})
		s.Require().NoError(err)
	}
}

func (s *contractSuite) ids(out *equipmenthistory.ListOutput) []string {
	ids := make([]string, 0, len(out.Equipment))
	for _, item := range out.Equipment {
		ids = append(ids, item.ID)
	}
	return ids
}

func (s *contractSuite) TestRoundTripKeepsEveryField() {
	original := testutils.NewTestEquipment("eq_round")

	out, err := s.repo.Append(s.ctx, equipmenthistory.AppendInput{OwnerID: "player-1", Equipment: original})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Size)

	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Require().Len(list.Equipment, 1)
	s.Assert().Equal(original, list.Equipment[0])
}

func (s *contractSuite) TestNewestFirstAndCapped() {
	s.appendN("player-1", 5)

	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"eq_5", "eq_4", "eq_3"}, s.ids(list))
}

func (s *contractSuite) TestAppendReportsTrimmedSize() {
	for i, want := range []int{1, 2, 3, 3} {
		out, err := s.repo.Append(s.ctx, equipmenthistory.AppendInput{
			OwnerID:   "player-1",
			Equipment: testutils.NewTestEquipment(fmt.Sprintf("eq_%d", i)),
		})
		s.Require().NoError(err)
		s.Assert().Equal(want, out.Size)
	}
}

func (s *contractSuite) TestListLimit() {
	s.appendN("player-1", 3)

	testCases := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "zero returns everything kept", limit: 0, want: []string{"eq_3", "eq_2", "eq_1"}},
		{name: "smaller window", limit: 2, want: []string{"eq_3", "eq_2"}},
		{name: "larger than kept", limit: 50, want: []string{"eq_3", "eq_2", "eq_1"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1", Limit: tc.limit})
			s.Require().NoError(err)
			s.Assert().Equal(tc.want, s.ids(list))
		})
	}
}

func (s *contractSuite) TestOwnersAreIsolated() {
	s.appendN("player-1", 2)
	s.appendN("player-2", 1)

	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-2"})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"eq_1"}, s.ids(list))
}

func (s *contractSuite) TestUnknownOwnerIsEmpty() {
	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.Assert().Empty(list.Equipment)
}

func (s *contractSuite) TestClear() {
	s.appendN("player-1", 2)

	out, err := s.repo.Clear(s.ctx, equipmenthistory.ClearInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.Removed)

	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Empty(list.Equipment)

	out, err = s.repo.Clear(s.ctx, equipmenthistory.ClearInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.Removed)
}

func (s *contractSuite) TestStoredCopyIsIndependent() {
	item := testutils.NewTestEquipment("eq_1")
	_, err := s.repo.Append(s.ctx, equipmenthistory.AppendInput{OwnerID: "player-1", Equipment: item})
	s.Require().NoError(err)

	item.Name = "changed"
	item.Enchantments[0].Name = "changed"

	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.NewTestEquipment("eq_1"), list.Equipment[0])
}

func (s *contractSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, equipmenthistory.AppendInput{Equipment: testutils.NewTestEquipment("x")})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, equipmenthistory.AppendInput{OwnerID: "player-1"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, equipmenthistory.ListInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1", Limit: -1})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Clear(s.ctx, equipmenthistory.ClearInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *contractSuite) TestDefaultLimit() {
	repo := s.newRepo(equipmenthistory.Options{})
	for i := 0; i < equipmenthistory.DefaultLimit+5; i++ {
		_, err := repo.Append(s.ctx, equipmenthistory.AppendInput{
			OwnerID:   "player-1",
			Equipment: testutils.NewTestEquipment(fmt.Sprintf("eq_%d", i)),
		})
		s.Require().NoError(err)
	}

	list, err := repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Len(list.Equipment, equipmenthistory.DefaultLimit)
}

func (s *contractSuite) TestConcurrentAppends() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.repo.Append(s.ctx, equipmenthistory.AppendInput{
				OwnerID:   "player-1",
				Equipment: testutils.NewTestEquipment(fmt.Sprintf("eq_%d", i)),
			})
			s.Assert().NoError(err)
		}(i)
	}
	wg.Wait()

	list, err := s.repo.List(s.ctx, equipmenthistory.ListInput{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Len(list.Equipment, 3)
}
