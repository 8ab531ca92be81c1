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

// ChangeControlServiceTestSuite is a test suite for the change control service
type ChangeControlServiceTestSuite struct {
	suite.Suite
	service  ChangeControlService
	mockRepo *mocks.MockChangeControlRepository
}

// SetupTest sets up the test suite before each test
func (suite *ChangeControlServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockChangeControlRepository(suite.T())
	suite.service = NewChangeControlService(suite.mockRepo, fixedClock{now: testTime}, &seqIDGenerator{})
}

func validChangeControlInput() *models.CreateChangeControlInput {
	return &models.CreateChangeControlInput{
		Type:      "POLICY_CHANGE",
		Scope:     &models.EntityRef{Type: "FEE_CONFIG", ID: "tenant-1"},
		Rationale: "align fee schedule with new contract",
		Reason:    "contract renewal",
		CreatedBy: models.Creator{UserID: "u-1", Role: "platform-admin"},
		TenantID:  "tenant-1",
		AuditID:   "aud-1",
	}
}

func (suite *ChangeControlServiceTestSuite) TestCreate_Success() {
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.ChangeControlEvent")).Return(nil)

	event, err := suite.service.Create(context.Background(), validChangeControlInput())

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), event)
	assert.Equal(suite.T(), "ccr-seq-1", event.ChangeControlID)
	assert.Equal(suite.T(), models.ChangeControlStatusSubmitted, event.Status)
	assert.Equal(suite.T(), testTime, event.CreatedAt)
	assert.Equal(suite.T(), "aud-1", event.AuditID)
}

// An omitted impact assessment defaults to MED risk
func (suite *ChangeControlServiceTestSuite) TestCreate_DefaultImpact() {
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.ChangeControlEvent")).Return(nil)

	event, err := suite.service.Create(context.Background(), validChangeControlInput())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RiskLevelMed, event.Impact.RiskLevel)
}

func (suite *ChangeControlServiceTestSuite) TestCreate_ExplicitImpact() {
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.ChangeControlEvent")).Return(nil)

	input := validChangeControlInput()
	input.Impact = &models.ImpactAssessment{
		RiskLevel:       models.RiskLevelHigh,
		RollbackPlan:    "revert to previous version",
		AffectedParties: []string{"suppliers"},
	}

	event, err := suite.service.Create(context.Background(), input)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RiskLevelHigh, event.Impact.RiskLevel)
	assert.Equal(suite.T(), "revert to previous version", event.Impact.RollbackPlan)
}

func (suite *ChangeControlServiceTestSuite) TestCreate_ImpactWithoutRiskLevel() {
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.ChangeControlEvent")).Return(nil)

	input := validChangeControlInput()
	input.Impact = &models.ImpactAssessment{RollbackPlan: "revert"}

	event, err := suite.service.Create(context.Background(), input)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RiskLevelMed, event.Impact.RiskLevel)
	assert.Equal(suite.T(), "revert", event.Impact.RollbackPlan)
}

func (suite *ChangeControlServiceTestSuite) TestCreate_ValidationFailure() {
	input := validChangeControlInput()
	input.Rationale = ""

	event, err := suite.service.Create(context.Background(), input)

	assert.Nil(suite.T(), event)
	assert.True(suite.T(), models.IsCode(err, models.CodeValidationFailed))
}

func TestChangeControlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeControlServiceTestSuite))
}
