package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradeverity/governance-core/models"
	"github.com/tradeverity/governance-core/repositories/mocks"
)

// HoldServiceTestSuite is a test suite for the settlement hold service
type HoldServiceTestSuite struct {
	suite.Suite
	service      HoldService
	mockHoldRepo *mocks.MockHoldRepository
}

// SetupTest sets up the test suite before each test
func (suite *HoldServiceTestSuite) SetupTest() {
	suite.mockHoldRepo = mocks.NewMockHoldRepository(suite.T())
	suite.service = NewHoldService(suite.mockHoldRepo, fixedClock{now: testTime}, &seqIDGenerator{})
}

func validHoldInput() *models.CreateHoldInput {
	return &models.CreateHoldInput{
		TenantID:  "tenant-1",
		Scope:     models.HoldScope{OrderID: "ord-1"},
		Subsystem: models.SubsystemPayments,
		Reason:    "chargeback under investigation",
		CreatedBy: models.Creator{UserID: "u-1", Role: "risk-officer"},
		AuditID:   "aud-1",
	}
}

func activeHold() *models.SettlementHold {
	return &models.SettlementHold{
		HoldID:    "hold-1",
		TenantID:  "tenant-1",
		Scope:     models.HoldScope{OrderID: "ord-1"},
		Subsystem: models.SubsystemPayments,
		Reason:    "chargeback under investigation",
		Status:    models.HoldStatusActive,
		CreatedAt: testTime,
		CreatedBy: models.Creator{UserID: "u-1", Role: "risk-officer"},
		UpdatedAt: testTime,
		AuditID:   "aud-1",
	}
}

func validOverrideInput() *models.OverrideHoldInput {
	return &models.OverrideHoldInput{
		HoldID:        "hold-1",
		Reason:        "override after manual review",
		Justification: "chargeback resolved in supplier's favor",
		OverriddenBy:  models.Creator{UserID: "u-2", Role: "platform-admin"},
		AuditID:       "aud-2",
	}
}

func (suite *HoldServiceTestSuite) TestCreate_Success() {
	suite.mockHoldRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.SettlementHold")).Return(nil)

	hold, err := suite.service.Create(context.Background(), validHoldInput())

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), hold)
	assert.Equal(suite.T(), "hold-seq-1", hold.HoldID)
	assert.Equal(suite.T(), models.HoldStatusActive, hold.Status)
	assert.Equal(suite.T(), testTime, hold.CreatedAt)
	assert.Equal(suite.T(), "aud-1", hold.AuditID)
}

func (suite *HoldServiceTestSuite) TestCreate_EmptyScope() {
	input := validHoldInput()
	input.Scope = models.HoldScope{}

	hold, err := suite.service.Create(context.Background(), input)

	assert.Nil(suite.T(), hold)
	assert.True(suite.T(), models.IsCode(err, models.CodeValidationFailed))
}

func (suite *HoldServiceTestSuite) TestCreate_UnknownSubsystem() {
	input := validHoldInput()
	input.Subsystem = "BILLING"

	hold, err := suite.service.Create(context.Background(), input)

	assert.Nil(suite.T(), hold)
	assert.True(suite.T(), models.IsCode(err, models.CodeInvalidSubsystem))
}

func (suite *HoldServiceTestSuite) TestOverride_Success() {
	overridden := activeHold()
	overridden.Status = models.HoldStatusOverridden
	overridden.Override = &models.HoldOverride{
		OverriddenBy:  models.Creator{UserID: "u-2", Role: "platform-admin"},
		Justification: "chargeback resolved in supplier's favor",
		OverriddenAt:  testTime,
		AuditID:       "aud-2",
	}

	suite.mockHoldRepo.EXPECT().GetByID(mock.Anything, "hold-1").Return(activeHold(), nil).Once()
	suite.mockHoldRepo.EXPECT().Override(mock.Anything, "hold-1", mock.AnythingOfType("*models.HoldOverride")).Return(true, nil)
	suite.mockHoldRepo.EXPECT().GetByID(mock.Anything, "hold-1").Return(overridden, nil).Once()

	hold, err := suite.service.Override(context.Background(), validOverrideInput())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.HoldStatusOverridden, hold.Status)
	assert.NotNil(suite.T(), hold.Override)
}

func (suite *HoldServiceTestSuite) TestOverride_AlreadyOverridden() {
	hold := activeHold()
	hold.Status = models.HoldStatusOverridden
	suite.mockHoldRepo.EXPECT().GetByID(mock.Anything, "hold-1").Return(hold, nil)

	result, err := suite.service.Override(context.Background(), validOverrideInput())

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsCode(err, models.CodeHoldNotActive))
	suite.mockHoldRepo.AssertNotCalled(suite.T(), "Override", mock.Anything, mock.Anything, mock.Anything)
}

// The justification must say something the original reason does not
func (suite *HoldServiceTestSuite) TestOverride_JustificationEqualsReason() {
	suite.mockHoldRepo.EXPECT().GetByID(mock.Anything, "hold-1").Return(activeHold(), nil)

	input := validOverrideInput()
	input.Justification = "Chargeback Under Investigation"

	result, err := suite.service.Override(context.Background(), input)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsCode(err, models.CodeValidationFailed))
	suite.mockHoldRepo.AssertNotCalled(suite.T(), "Override", mock.Anything, mock.Anything, mock.Anything)
}

// A concurrent override that won the race surfaces as hold-not-active
func (suite *HoldServiceTestSuite) TestOverride_LostRace() {
	suite.mockHoldRepo.EXPECT().GetByID(mock.Anything, "hold-1").Return(activeHold(), nil)
	suite.mockHoldRepo.EXPECT().Override(mock.Anything, "hold-1", mock.AnythingOfType("*models.HoldOverride")).Return(false, nil)

	result, err := suite.service.Override(context.Background(), validOverrideInput())

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsCode(err, models.CodeHoldNotActive))
}

func (suite *HoldServiceTestSuite) TestOverride_ValidationFailure() {
	input := validOverrideInput()
	input.Justification = ""

	result, err := suite.service.Override(context.Background(), input)

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsCode(err, models.CodeValidationFailed))
}

func (suite *HoldServiceTestSuite) TestGetByID_BlankID() {
	hold, err := suite.service.GetByID(context.Background(), "")

	assert.Nil(suite.T(), hold)
	assert.True(suite.T(), models.IsCode(err, models.CodeValidationFailed))
}

func TestHoldServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HoldServiceTestSuite))
}
