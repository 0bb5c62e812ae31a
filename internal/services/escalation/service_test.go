package escalation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/arcadebot/arcadebot/internal/models"
	"github.com/arcadebot/arcadebot/internal/services/escalation"
	escalationmocks "github.com/arcadebot/arcadebot/internal/services/escalation/mocks"
	"github.com/arcadebot/arcadebot/internal/services/leaderboard"
	leaderboardmocks "github.com/arcadebot/arcadebot/internal/services/leaderboard/mocks"
)

const (
	testGuildID            = "guild-1"
	testGameChannelID      = "chan-game"
	testLeaderboardChannel = "chan-board"
	testStaffChannel       = "chan-staff"
	testHostID             = "host-1"
)

type EscalationServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLeaderboard *leaderboardmocks.MockService
	mockNotifier    *escalationmocks.MockNotifier
	svc             escalation.Service
	ctx             context.Context
	winners         []*models.LeaderboardEntry
}

func (s *EscalationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLeaderboard = leaderboardmocks.NewMockService(s.ctrl)
	s.mockNotifier = escalationmocks.NewMockNotifier(s.ctrl)

	svc, err := escalation.New(&escalation.Config{
		LeaderboardChannelID: testLeaderboardChannel,
		StaffChannelID:       testStaffChannel,
		PromptTimeout:        time.Second,
		LeaderboardService:   s.mockLeaderboard,
		Notifier:             s.mockNotifier,
	})
	s.Require().NoError(err)

	s.svc = svc
	s.ctx = context.Background()

	s.winners = nil
	for i := 0; i < 10; i++ {
		s.winners = append(s.winners, &models.LeaderboardEntry{
			UserID:   fmt.Sprintf("user-%d", i),
			Username: fmt.Sprintf("player%d", i),
		})
	}
}

func (s *EscalationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEscalationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EscalationServiceTestSuite))
}

func (s *EscalationServiceTestSuite) expectStandingsPublished() {
	s.mockLeaderboard.EXPECT().
		ListWinners(s.ctx, &leaderboard.ListWinnersInput{}).
		Return(&leaderboard.ListWinnersOutput{Entries: s.winners}, nil)

	s.mockNotifier.EXPECT().
		PublishStandings(s.ctx, &escalation.PublishStandingsInput{
			ChannelID: testGameChannelID,
			Entries:   s.winners,
		}).
		Return(&escalation.PublishStandingsOutput{MessageID: "msg-game"}, nil)

	s.mockLeaderboard.EXPECT().
		GetPublishedMessage(s.ctx, &leaderboard.GetPublishedMessageInput{
			ChannelID: testLeaderboardChannel,
		}).
		Return(&leaderboard.GetPublishedMessageOutput{MessageID: "msg-old"}, nil)

	s.mockNotifier.EXPECT().
		PublishStandings(s.ctx, &escalation.PublishStandingsInput{
			ChannelID:         testLeaderboardChannel,
			ExistingMessageID: "msg-old",
			Entries:           s.winners,
		}).
		Return(&escalation.PublishStandingsOutput{MessageID: "msg-new"}, nil)

	s.mockLeaderboard.EXPECT().
		TrackPublishedMessage(s.ctx, &leaderboard.TrackPublishedMessageInput{
			ChannelID: testLeaderboardChannel,
			MessageID: "msg-new",
		}).
		Return(nil)
}

func (s *EscalationServiceTestSuite) TestNewValidatesConfig() {
	_, err := escalation.New(nil)
	s.Require().ErrorIs(err, escalation.ErrNilConfig)

	_, err = escalation.New(&escalation.Config{
		LeaderboardChannelID: testLeaderboardChannel,
		StaffChannelID:       testStaffChannel,
		Notifier:             s.mockNotifier,
	})
	s.Require().ErrorIs(err, escalation.ErrNilLeaderboardService)

	_, err = escalation.New(&escalation.Config{
		StaffChannelID:     testStaffChannel,
		LeaderboardService: s.mockLeaderboard,
		Notifier:           s.mockNotifier,
	})
	s.Require().ErrorIs(err, escalation.ErrEmptyLeaderboardChan)
}

func (s *EscalationServiceTestSuite) TestFullSequenceAssignsRoleAndResets() {
	s.expectStandingsPublished()

	s.mockNotifier.EXPECT().
		PromptRoleName(s.ctx, &escalation.PromptRoleNameInput{
			ChannelID: testStaffChannel,
			HostID:    testHostID,
			Timeout:   time.Second,
		}).
		Return(&escalation.PromptRoleNameOutput{RoleName: "Champions"}, nil)

	s.mockNotifier.EXPECT().
		EnsureRole(s.ctx, &escalation.EnsureRoleInput{
			GuildID: testGuildID,
			Name:    "Champions",
		}).
		Return(&escalation.EnsureRoleOutput{RoleID: "role-1", Created: true}, nil)

	for _, entry := range s.winners {
		s.mockNotifier.EXPECT().
			AssignRole(s.ctx, &escalation.AssignRoleInput{
				GuildID: testGuildID,
				UserID:  entry.UserID,
				RoleID:  "role-1",
			}).
			Return(nil)
	}

	s.mockLeaderboard.EXPECT().
		Reset(s.ctx, &leaderboard.ResetInput{}).
		Return(nil)

	out, err := s.svc.HandleLeaderboardFull(s.ctx, &escalation.HandleLeaderboardFullInput{
		GuildID:       testGuildID,
		GameChannelID: testGameChannelID,
		HostID:        testHostID,
	})
	s.Require().NoError(err)
	s.Equal("Champions", out.RoleName)
	s.Equal(len(s.winners), out.Assigned)
	s.Zero(out.Failed)
}

func (s *EscalationServiceTestSuite) TestSkipStillResets() {
	s.expectStandingsPublished()

	s.mockNotifier.EXPECT().
		PromptRoleName(s.ctx, gomock.Any()).
		Return(&escalation.PromptRoleNameOutput{Skipped: true}, nil)

	s.mockLeaderboard.EXPECT().
		Reset(s.ctx, &leaderboard.ResetInput{}).
		Return(nil)

	out, err := s.svc.HandleLeaderboardFull(s.ctx, &escalation.HandleLeaderboardFullInput{
		GuildID:       testGuildID,
		GameChannelID: testGameChannelID,
		HostID:        testHostID,
	})
	s.Require().NoError(err)
	s.Empty(out.RoleName)
	s.Zero(out.Assigned)
}

func (s *EscalationServiceTestSuite) TestPromptFailureStillResets() {
	s.expectStandingsPublished()

	s.mockNotifier.EXPECT().
		PromptRoleName(s.ctx, gomock.Any()).
		Return(nil, errors.New("staff channel unavailable"))

	s.mockLeaderboard.EXPECT().
		Reset(s.ctx, &leaderboard.ResetInput{}).
		Return(nil)

	out, err := s.svc.HandleLeaderboardFull(s.ctx, &escalation.HandleLeaderboardFullInput{
		GuildID:       testGuildID,
		GameChannelID: testGameChannelID,
		HostID:        testHostID,
	})
	s.Require().NoError(err)
	s.Zero(out.Assigned)
}

func (s *EscalationServiceTestSuite) TestRoleHierarchyAbortsAssignmentOnly() {
	s.expectStandingsPublished()

	s.mockNotifier.EXPECT().
		PromptRoleName(s.ctx, gomock.Any()).
		Return(&escalation.PromptRoleNameOutput{RoleName: "Overlords"}, nil)

	s.mockNotifier.EXPECT().
		EnsureRole(s.ctx, gomock.Any()).
		Return(nil, escalation.ErrRoleHierarchy)

	s.mockNotifier.EXPECT().
		Announce(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *escalation.AnnounceInput) error {
			s.Equal(testStaffChannel, input.ChannelID)
			s.Contains(input.Content, "Overlords")
			return nil
		})

	s.mockLeaderboard.EXPECT().
		Reset(s.ctx, &leaderboard.ResetInput{}).
		Return(nil)

	out, err := s.svc.HandleLeaderboardFull(s.ctx, &escalation.HandleLeaderboardFullInput{
		GuildID:       testGuildID,
		GameChannelID: testGameChannelID,
		HostID:        testHostID,
	})
	s.Require().NoError(err)
	s.Empty(out.RoleName)
	s.Zero(out.Assigned)
}

func (s *EscalationServiceTestSuite) TestPerUserFailureDoesNotAbortBatch() {
	s.winners = s.winners[:3]
	s.expectStandingsPublished()

	s.mockNotifier.EXPECT().
		PromptRoleName(s.ctx, gomock.Any()).
		Return(&escalation.PromptRoleNameOutput{RoleName: "Champions"}, nil)

	s.mockNotifier.EXPECT().
		EnsureRole(s.ctx, gomock.Any()).
		Return(&escalation.EnsureRoleOutput{RoleID: "role-1"}, nil)

	s.mockNotifier.EXPECT().
		AssignRole(s.ctx, gomock.Any()).
		Return(nil)
	s.mockNotifier.EXPECT().
		AssignRole(s.ctx, gomock.Any()).
		Return(errors.New("member not found"))
	s.mockNotifier.EXPECT().
		AssignRole(s.ctx, gomock.Any()).
		Return(nil)

	s.mockNotifier.EXPECT().
		Announce(s.ctx, gomock.Any()).
		Return(nil)

	s.mockLeaderboard.EXPECT().
		Reset(s.ctx, &leaderboard.ResetInput{}).
		Return(nil)

	out, err := s.svc.HandleLeaderboardFull(s.ctx, &escalation.HandleLeaderboardFullInput{
		GuildID:       testGuildID,
		GameChannelID: testGameChannelID,
		HostID:        testHostID,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Assigned)
	s.Equal(1, out.Failed)
}

func (s *EscalationServiceTestSuite) TestAnnounceMilestone() {
	s.mockNotifier.EXPECT().
		Announce(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *escalation.AnnounceInput) error {
			s.Equal(testGameChannelID, input.ChannelID)
			s.Contains(input.Content, "player1")
			return nil
		})

	err := s.svc.AnnounceMilestone(s.ctx, &escalation.AnnounceMilestoneInput{
		ChannelID: testGameChannelID,
		UserID:    "user-1",
		Username:  "player1",
		Wins:      5,
	})
	s.Require().NoError(err)
}
