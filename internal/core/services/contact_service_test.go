package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/core/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ContactServiceTestSuite struct {
	suite.Suite
	mockContacts *MockContactRepository
	mockTxns     *MockTransactionRepository
	mockMirror   *MockRecordMirror
	service      portssvc.ContactSvcFacade
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.mockContacts = new(MockContactRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockMirror = new(MockRecordMirror)
	suite.service = services.NewContactService(suite.mockContacts, suite.mockTxns,
		services.WithClock(fixedClock),
		services.WithLocation(time.UTC),
		services.WithIDGenerator(sequentialIDs("contact")),
		services.WithMirror(suite.mockMirror),
		services.WithGroup("flat-7", "Flat 7"),
	)
}

func (suite *ContactServiceTestSuite) TestCreateContact_Success() {
	ctx := context.Background()
	req := dto.CreateContactRequest{Name: "  Sarah Johnson ", Email: "sarah@example.com"}

	suite.mockContacts.On("SaveContact", ctx, mock.MatchedBy(func(c domain.Contact) bool {
		return c.ContactID == "contact-1" && c.Name == "Sarah Johnson" && c.CreatedBy == "1" && c.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	suite.mockContacts.On("ListContacts", ctx).Return([]domain.Contact{{ContactID: "contact-1", Name: "Sarah Johnson"}}, nil).Once()
	suite.mockMirror.On("MirrorRoommate", ctx, mock.MatchedBy(func(r domain.RoommateRecord) bool {
		return r.ID == "contact-1" && r.Email == "sarah@example.com" && r.GroupID == "flat-7" && r.Balance.IsZero()
	})).Once()
	suite.mockMirror.On("MirrorGroup", ctx, mock.MatchedBy(func(g domain.GroupRecord) bool {
		return g.ID == "flat-7" && g.Name == "Flat 7" && assert.ObjectsAreEqual([]string{"contact-1"}, g.Members)
	})).Once()

	contact, err := suite.service.CreateContact(ctx, req, "1")

	suite.Require().NoError(err)
	suite.Require().NotNil(contact)
	suite.Equal("Sarah Johnson", contact.Name)
	suite.mockContacts.AssertExpectations(suite.T())
	suite.mockMirror.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestCreateContact_MissingName() {
	contact, err := suite.service.CreateContact(context.Background(), dto.CreateContactRequest{Name: "   "}, "1")

	suite.Require().Error(err)
	suite.Nil(contact)
	suite.ErrorIs(err, apperrors.ErrValidation)
	vErr, ok := apperrors.AsValidationError(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.CodeMissingRequiredField, vErr.Code)
	suite.mockContacts.AssertNotCalled(suite.T(), "SaveContact", mock.Anything, mock.Anything)
	suite.mockMirror.AssertNotCalled(suite.T(), "MirrorRoommate", mock.Anything, mock.Anything)
}

func (suite *ContactServiceTestSuite) TestCreateContact_SaveError() {
	ctx := context.Background()
	suite.mockContacts.On("SaveContact", ctx, mock.AnythingOfType("domain.Contact")).Return(assert.AnError).Once()

	contact, err := suite.service.CreateContact(ctx, dto.CreateContactRequest{Name: "Mike"}, "1")

	suite.Require().Error(err)
	suite.Nil(contact)
	suite.ErrorIs(err, assert.AnError)
	suite.mockMirror.AssertNotCalled(suite.T(), "MirrorRoommate", mock.Anything, mock.Anything)
}

func (suite *ContactServiceTestSuite) TestGetContactByID_NotFound() {
	ctx := context.Background()
	suite.mockContacts.On("FindContactByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	contact, err := suite.service.GetContactByID(ctx, "missing")

	suite.Nil(contact)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ContactServiceTestSuite) TestListContacts() {
	ctx := context.Background()
	expected := []domain.Contact{{ContactID: "c1", Name: "Sarah"}, {ContactID: "c2", Name: "Mike"}}
	suite.mockContacts.On("ListContacts", ctx).Return(expected, nil).Once()

	contacts, err := suite.service.ListContacts(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, contacts)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
