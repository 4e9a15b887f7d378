package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/core/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/repositories/memory"
	"github.com/SscSPs/homeledger/internal/utils/gamification"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChoreServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repos   portsrepo.RepositoryProvider
	tracker *MockEventTracker
	chores  portssvc.ChoreSvcFacade
	stats   portssvc.ChoreStatsSvc
}

func (suite *ChoreServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore(), nil)
	suite.tracker = new(MockEventTracker)

	engine := gamification.NewEngine(time.UTC)
	engine.NewID = sequentialIDs("chore")
	engine.Intn = func(n int) int { return n - 1 }

	opts := []services.ServiceOption{
		services.WithClock(fixedClock),
		services.WithLocation(time.UTC),
		services.WithEventTracker(suite.tracker),
	}
	suite.chores = services.NewChoreService(suite.repos.ChoreRepo, suite.repos.RoommateRepo, engine, opts...)
	suite.stats = services.NewChoreStatsService(suite.repos.ChoreRepo, suite.repos.RoommateRepo, engine, opts...)

	for _, rm := range []domain.Roommate{
		{RoommateID: "r1", Name: "Alex", TotalPoints: 95, Level: 1, Badges: []domain.BadgeID{}},
		{RoommateID: "r2", Name: "Sam", Level: 1, Badges: []domain.BadgeID{}},
	} {
		suite.Require().NoError(suite.repos.RoommateRepo.SaveRoommate(suite.ctx, rm))
	}
}

func (suite *ChoreServiceTestSuite) addRotatingChore() *domain.Chore {
	suite.tracker.On("Enqueue", "r1", "chore.created", mock.Anything).Maybe()
	chore, err := suite.chores.AddChore(suite.ctx, dto.CreateChoreRequest{
		Title:          "Vacuum living room",
		Frequency:      domain.ChoreWeekly,
		DueDate:        "2025-10-20",
		Assignees:      []string{"r1", "r2"},
		EnableRotation: true,
	}, "r1")
	suite.Require().NoError(err)
	return chore
}

func (suite *ChoreServiceTestSuite) TestAddChore_Rotation() {
	chore := suite.addRotatingChore()

	suite.Equal([]string{"r1"}, chore.Assignees)
	suite.Equal([]string{"r1", "r2"}, chore.RotationOrder)
	suite.Equal(domain.DefaultChorePoints, chore.Points)
	suite.Equal(domain.DefaultChoreCategory, chore.Category)
	suite.Equal(time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), chore.DueDate)
}

func (suite *ChoreServiceTestSuite) TestAddChore_Errors() {
	_, err := suite.chores.AddChore(suite.ctx, dto.CreateChoreRequest{
		Title: "Dishes", DueDate: "not a date", Assignees: []string{"r1"},
	}, "r1")
	vErr, ok := apperrors.AsValidationError(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.CodeInvalidDate, vErr.Code)

	_, err = suite.chores.AddChore(suite.ctx, dto.CreateChoreRequest{
		Title: "Dishes", DueDate: "2025-10-20", Assignees: []string{"r1", "ghost"},
	}, "r1")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	chores, err := suite.chores.ListChores(suite.ctx, domain.ChoreFilter{})
	suite.Require().NoError(err)
	suite.Empty(chores)
}

func (suite *ChoreServiceTestSuite) TestToggleComplete_RotatesAndCredits() {
	chore := suite.addRotatingChore()
	suite.tracker.On("Enqueue", "r1", "chore.completed", mock.Anything).Once()
	suite.tracker.On("Enqueue", "r1", "roommate.level_up", map[string]any{"level": 2}).Once()

	toggle, err := suite.chores.ToggleComplete(suite.ctx, chore.ChoreID, "r1")

	suite.Require().NoError(err)
	suite.False(toggle.Chore.Completed, "a rotating chore stays pending")
	suite.Equal([]string{"r2"}, toggle.Chore.Assignees)
	suite.Equal(chore.DueDate.AddDate(0, 0, 7), toggle.Chore.DueDate)
	suite.Require().Len(toggle.Chore.Completions, 1)
	suite.Equal(chore.DueDate, toggle.Chore.Completions[0].DueAt)

	suite.Require().NotNil(toggle.Update)
	suite.Equal(105, toggle.Update.Roommate.TotalPoints)
	suite.True(toggle.Update.LeveledUp)
	suite.Equal(1, toggle.Update.PreviousLevel)

	stored, err := suite.repos.RoommateRepo.FindRoommateByID(suite.ctx, "r1")
	suite.Require().NoError(err)
	suite.Equal(2, stored.Level)
	suite.tracker.AssertExpectations(suite.T())

	mine, err := suite.chores.ListChores(suite.ctx, domain.ChoreFilter{Status: domain.StatusMine, UserID: "r2"})
	suite.Require().NoError(err)
	suite.Len(mine, 1)
	mine, err = suite.chores.ListChores(suite.ctx, domain.ChoreFilter{Status: domain.StatusMine, UserID: "r1"})
	suite.Require().NoError(err)
	suite.Empty(mine)
}

func (suite *ChoreServiceTestSuite) TestToggleComplete_OnceAndBack() {
	suite.tracker.On("Enqueue", mock.Anything, mock.Anything, mock.Anything).Maybe()
	chore, err := suite.chores.AddChore(suite.ctx, dto.CreateChoreRequest{
		Title: "Water plants", DueDate: "2025-10-19", Assignees: []string{"r2"}, Points: 15, Category: domain.CategoryPlants,
	}, "r2")
	suite.Require().NoError(err)

	done, err := suite.chores.ToggleComplete(suite.ctx, chore.ChoreID, "r2")
	suite.Require().NoError(err)
	suite.True(done.Chore.Completed)

	counts, err := suite.chores.PendingCounts(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(0, counts[domain.ChoreOnce])

	undone, err := suite.chores.ToggleComplete(suite.ctx, chore.ChoreID, "r2")
	suite.Require().NoError(err)
	suite.False(undone.Chore.Completed)
	suite.Nil(undone.Update)
	suite.Len(undone.Chore.Completions, 1, "un-completing keeps the history")

	stored, err := suite.repos.RoommateRepo.FindRoommateByID(suite.ctx, "r2")
	suite.Require().NoError(err)
	suite.Equal(15, stored.TotalPoints, "points are not taken back")
}

func (suite *ChoreServiceTestSuite) TestToggleComplete_UnknownRoommate() {
	chore := suite.addRotatingChore()

	_, err := suite.chores.ToggleComplete(suite.ctx, chore.ChoreID, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.chores.ToggleComplete(suite.ctx, "missing", "r1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ChoreServiceTestSuite) TestReactionsCommentsAndAssignment() {
	chore := suite.addRotatingChore()

	reacted, err := suite.chores.AddReaction(suite.ctx, chore.ChoreID, "r2", "👏")
	suite.Require().NoError(err)
	suite.Len(reacted.Reactions, 1)
	reacted, err = suite.chores.AddReaction(suite.ctx, chore.ChoreID, "r2", "👏")
	suite.Require().NoError(err)
	suite.Empty(reacted.Reactions, "the same emoji twice toggles it off")

	_, err = suite.chores.AddReaction(suite.ctx, chore.ChoreID, "r2", " ")
	suite.ErrorIs(err, apperrors.ErrValidation)

	commented, err := suite.chores.AddComment(suite.ctx, chore.ChoreID, "r2", "Thanks!")
	suite.Require().NoError(err)
	suite.Require().Len(commented.Comments, 1)
	suite.Equal(fixedNow, commented.Comments[0].Timestamp)

	assigned, err := suite.chores.AssignChore(suite.ctx, chore.ChoreID, "r2")
	suite.Require().NoError(err)
	suite.Equal([]string{"r2"}, assigned.Assignees)

	_, err = suite.chores.AssignChore(suite.ctx, chore.ChoreID, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ChoreServiceTestSuite) TestDeleteAndSpin() {
	_, err := suite.chores.SpinAssignment(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	chore := suite.addRotatingChore()
	spin, err := suite.chores.SpinAssignment(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(chore.ChoreID, spin.Chore.ChoreID)
	suite.Equal("r2", spin.Roommate.RoommateID)

	suite.Require().NoError(suite.chores.DeleteChore(suite.ctx, chore.ChoreID))
	suite.ErrorIs(suite.chores.DeleteChore(suite.ctx, chore.ChoreID), apperrors.ErrNotFound)
}

func (suite *ChoreServiceTestSuite) TestStats() {
	chore := suite.addRotatingChore()
	suite.tracker.On("Enqueue", "r1", mock.Anything, mock.Anything).Maybe()
	_, err := suite.chores.ToggleComplete(suite.ctx, chore.ChoreID, "r1")
	suite.Require().NoError(err)

	board, err := suite.stats.Leaderboard(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(board.Entries, 2)
	suite.Equal("r1", board.Entries[0].Roommate.RoommateID)
	suite.Equal(1, board.Entries[0].Rank)
	suite.Equal(10, board.Entries[0].TotalPoints)
	suite.Require().NotNil(board.TopPerformer)
	suite.Equal("r1", board.TopPerformer.Roommate.RoommateID)

	dashboard, err := suite.stats.Dashboard(suite.ctx, "r1")
	suite.Require().NoError(err)
	suite.Equal(1, dashboard.CurrentStreak)
	suite.Equal(1, dashboard.ThisWeekCompletions)
	suite.Equal(95, dashboard.PointsToNextLevel)
	suite.Equal(10, dashboard.PointsByCategory["cleaning"])

	streak, err := suite.stats.Streak(suite.ctx, "r2")
	suite.Require().NoError(err)
	suite.Zero(streak)

	summary, err := suite.stats.WeeklySummary(suite.ctx, "r1")
	suite.Require().NoError(err)
	suite.Equal(1, summary.CompletedChores)
	suite.Equal(10, summary.PointsThisWeek)

	_, err = suite.stats.Dashboard(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.stats.WeeklySummary(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.stats.Streak(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestChoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChoreServiceTestSuite))
}
