package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/core/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProfileRepository
	service  portssvc.ProfileSvcFacade
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProfileRepository)
	suite.service = services.NewProfileService(suite.mockRepo)
}

func (suite *ProfileServiceTestSuite) TestGetProfile_CreatesDefault() {
	ctx := context.Background()
	suite.mockRepo.On("FindProfileByUserID", ctx, "1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.UserProfile) bool {
		return p.UserID == "1" && p.ReminderDaysBefore == domain.DefaultReminderDaysBefore && p.NotificationsEnabled
	})).Return(nil).Once()

	profile, err := suite.service.GetProfile(ctx, "1")

	suite.Require().NoError(err)
	suite.Equal(services.DefaultProfileName, profile.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestGetProfile_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindProfileByUserID", ctx, "1").Return(nil, assert.AnError).Once()

	profile, err := suite.service.GetProfile(ctx, "1")

	suite.Nil(profile)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_AppliesProvidedFields() {
	ctx := context.Background()
	existing := domain.NewUserProfile("1", "You")
	existing.Phone = "555-0100"
	suite.mockRepo.On("FindProfileByUserID", ctx, "1").Return(&existing, nil).Once()
	suite.mockRepo.On("SaveProfile", ctx, mock.AnythingOfType("domain.UserProfile")).Return(nil).Once()

	name, days, off := "Jamie", 7, false
	profile, err := suite.service.UpdateProfile(ctx, "1", dto.UpdateProfileRequest{
		Name:                 &name,
		ReminderDaysBefore:   &days,
		NotificationsEnabled: &off,
	})

	suite.Require().NoError(err)
	suite.Equal("Jamie", profile.Name)
	suite.Equal(7, profile.ReminderDaysBefore)
	suite.False(profile.NotificationsEnabled)
	suite.Equal("555-0100", profile.Phone, "fields not sent stay unchanged")
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_BlankName() {
	ctx := context.Background()
	existing := domain.NewUserProfile("1", "You")
	suite.mockRepo.On("FindProfileByUserID", ctx, "1").Return(&existing, nil).Once()

	blank := "  "
	_, err := suite.service.UpdateProfile(ctx, "1", dto.UpdateProfileRequest{Name: &blank})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
