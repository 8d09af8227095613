package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen"
	"github.com/KirkDiggler/rpg-equipment/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-equipment/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
	"github.com/KirkDiggler/rpg-equipment/internal/orchestrators/forge"
	forgemock "github.com/KirkDiggler/rpg-equipment/internal/orchestrators/forge/mock"
	"github.com/KirkDiggler/rpg-equipment/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	mockService *forgemock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.EquipmentServiceClient
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = forgemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ForgeService: s.mockService})
	s.Require().NoError(err)

	listener := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterEquipmentServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewEquipmentServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGenerate() {
	item := testutils.NewTestEquipment("eq_1")

	s.mockService.EXPECT().
		Generate(gomock.Any(), &forge.GenerateInput{OwnerID: "player-1", Adjective: "传说", Count: 1}).
		Return(&forge.GenerateOutput{Equipment: []*equipment.Equipment{item}}, nil)

	resp, err := s.client.Generate(s.ctx, &v1alpha1.GenerateRequest{
		OwnerID:   "player-1",
		Adjective: "传说",
		Count:     1,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Equipment, 1)

	got := resp.Equipment[0]
	s.Assert().Equal("eq_1", got.ID)
	s.Assert().Equal("诅咒的传说的长剑", got.Name)
	s.Assert().Equal("legendary", got.Quality)
	s.Assert().Equal("cursed", got.State)
	s.Assert().Equal(int32(1234), got.Level)
	s.Assert().Equal(int32(2500), got.EnchantmentCapacity)
	s.Assert().Equal(int32(600), got.UsedCapacity)
	s.Assert().Equal(int32(24), got.CapacityUsagePercent)
	s.Assert().Equal(string(equipment.CapacityOK), got.CapacityBand)
	s.Assert().Equal(string(equipment.KindWeapon), got.Kind)
	s.Assert().Equal("12:34:56", got.Timestamp)

	s.Require().Len(got.Enchantments, 4)
	s.Assert().Equal("negative", got.Enchantments[0].Type)
	s.Assert().Equal("力量+12", got.Enchantments[1].Display)
	s.Assert().True(got.Enchantments[1].Upgradeable)
	s.Assert().Equal("力量", got.Enchantments[2].BelongsTo)
	s.Assert().Equal("weapon_effect", got.Enchantments[3].Effect)
	s.Assert().Equal("炽热射线", got.Enchantments[3].Spell)
}

func (s *HandlerTestSuite) TestGenerateNegativeCount() {
	_, err := s.client.Generate(s.ctx, &v1alpha1.GenerateRequest{Count: -2})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGenerateErrorMapping() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{name: "invalid adjective", err: errors.InvalidArgument("unknown adjective: 闪亮"), expected: codes.InvalidArgument},
		{name: "store unavailable", err: errors.Unavailable("redis down"), expected: codes.Unavailable},
		{name: "roller failure", err: errors.Internal("failed to roll equipment"), expected: codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				Generate(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			_, err := s.client.Generate(s.ctx, &v1alpha1.GenerateRequest{})
			s.Require().Error(err)
			s.Assert().Equal(tc.expected, status.Code(err))
			s.Assert().Equal(errors.GetMessage(tc.err), status.Convert(err).Message())
		})
	}
}

func (s *HandlerTestSuite) TestListHistory() {
	s.mockService.EXPECT().
		ListHistory(gomock.Any(), &forge.ListHistoryInput{OwnerID: "player-1", Limit: 2}).
		Return(&forge.ListHistoryOutput{Equipment: []*equipment.Equipment{
			testutils.NewTestEquipment("eq_2"),
			testutils.NewTestEquipment("eq_1"),
		}}, nil)

	resp, err := s.client.ListHistory(s.ctx, &v1alpha1.ListHistoryRequest{OwnerID: "player-1", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(resp.Equipment, 2)
	s.Assert().Equal("eq_2", resp.Equipment[0].ID)
	s.Assert().Equal("eq_1", resp.Equipment[1].ID)
}

func (s *HandlerTestSuite) TestListHistoryRequiresOwner() {
	_, err := s.client.ListHistory(s.ctx, &v1alpha1.ListHistoryRequest{})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestClearHistory() {
	s.mockService.EXPECT().
		ClearHistory(gomock.Any(), &forge.ClearHistoryInput{OwnerID: "player-1"}).
		Return(&forge.ClearHistoryOutput{Removed: 3}, nil)

	resp, err := s.client.ClearHistory(s.ctx, &v1alpha1.ClearHistoryRequest{OwnerID: "player-1"})
	s.Require().NoError(err)
	s.Assert().Equal(int32(3), resp.Removed)
}

func (s *HandlerTestSuite) TestClearHistoryRequiresOwner() {
	_, err := s.client.ClearHistory(s.ctx, &v1alpha1.ClearHistoryRequest{})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListTemplates() {
	resp, err := s.client.ListTemplates(s.ctx, &v1alpha1.ListTemplatesRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Templates, 5+len(equipgen.SpellNames()))

	s.Assert().Equal("暴击", resp.Templates[0].Name)
	s.Assert().Equal(int32(20), resp.Templates[0].Max)

	last := resp.Templates[len(resp.Templates)-1]
	s.Assert().Equal("weapon_effect", last.Effect)
	s.Assert().Equal(int32(1000), last.Max)
	s.Assert().Equal(equipgen.SpellNames()[len(equipgen.SpellNames())-1], last.Spell)
}
