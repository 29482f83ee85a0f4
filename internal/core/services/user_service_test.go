package services_test

import (
	"context"
	"testing"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestResolveRole_Success() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-1").
		Return(userWithRole("user-1", domain.RoleStaff), nil).Once()

	role, err := suite.service.ResolveRole(suite.ctx, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResolveRole_NoDirectoryEntry() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	role, err := suite.service.ResolveRole(suite.ctx, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProfileMissing)
	suite.Empty(role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResolveRole_NilRole() {
	user := &domain.User{UserID: "user-2", Email: "u2@example.com", Name: "No Role Yet"}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-2").Return(user, nil).Once()

	role, err := suite.service.ResolveRole(suite.ctx, "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRoleMissing)
	suite.Empty(role)
}

func (suite *UserServiceTestSuite) TestResolveRole_CorruptRole() {
	bad := domain.Role("superuser")
	user := &domain.User{UserID: "user-3", Role: &bad}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "user-3").Return(user, nil).Once()

	_, err := suite.service.ResolveRole(suite.ctx, "user-3")

	suite.ErrorIs(err, apperrors.ErrRoleMissing)
}

func (suite *UserServiceTestSuite) TestAuthorizeAction_RoleTable() {
	testCases := []struct {
		role    domain.Role
		action  domain.Action
		allowed bool
	}{
		{domain.RoleViewer, domain.ActionViewDashboard, true},
		{domain.RoleViewer, domain.ActionRecordSale, false},
		{domain.RoleViewer, domain.ActionManageCatalog, false},
		{domain.RoleViewer, domain.ActionPublishDay, false},
		{domain.RoleStaff, domain.ActionViewDashboard, true},
		{domain.RoleStaff, domain.ActionRecordSale, true},
		{domain.RoleStaff, domain.ActionInitializeDay, true},
		{domain.RoleStaff, domain.ActionEditDraftCell, true},
		{domain.RoleStaff, domain.ActionPublishDay, false},
		{domain.RoleStaff, domain.ActionViewReports, false},
		{domain.RoleStaff, domain.ActionManageUsers, false},
		{domain.RoleAdmin, domain.ActionPublishDay, true},
		{domain.RoleAdmin, domain.ActionViewReports, true},
		{domain.RoleAdmin, domain.ActionManageUsers, true},
	}

	for _, tc := range testCases {
		suite.Run(string(tc.role)+"_"+string(tc.action), func() {
			mockRepo := new(MockUserRepository)
			service := services.NewUserService(mockRepo)
			mockRepo.On("FindUserByID", suite.ctx, "caller").
				Return(userWithRole("caller", tc.role), nil).Once()

			role, err := service.AuthorizeAction(suite.ctx, "caller", tc.action)

			if tc.allowed {
				suite.Require().NoError(err)
				suite.Equal(tc.role, role)
			} else {
				suite.ErrorIs(err, apperrors.ErrForbidden)
			}
			mockRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *UserServiceTestSuite) TestAuthorizeAction_UnknownActionDenied() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "caller").
		Return(userWithRole("caller", domain.RoleAdmin), nil).Once()

	_, err := suite.service.AuthorizeAction(suite.ctx, "caller", domain.Action("drop_tables"))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestProvisionUser_FirstAccountBecomesAdmin() {
	suite.mockUserRepo.On("CountUsers", suite.ctx).Return(0, nil).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role != nil && *u.Role == domain.RoleAdmin && u.Email == "first@example.com"
	})).Return(nil).Once()

	user, err := suite.service.ProvisionUser(suite.ctx, "first@example.com", "First", "hash", domain.ProviderLocal, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(user.Role)
	suite.Equal(domain.RoleAdmin, *user.Role)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestProvisionUser_LaterAccountsStartAsViewer() {
	suite.mockUserRepo.On("CountUsers", suite.ctx).Return(3, nil).Once()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role != nil && *u.Role == domain.RoleViewer
	})).Return(nil).Once()

	user, err := suite.service.ProvisionUser(suite.ctx, "later@example.com", "Later", "hash", domain.ProviderLocal, "")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleViewer, *user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_RequiresAdmin() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "staffer").
		Return(userWithRole("staffer", domain.RoleStaff), nil).Once()

	name := "New Name"
	_, err := suite.service.UpdateUser(suite.ctx, "staffer", "target", dto.UpdateUserRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesRole() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "admin-1").
		Return(userWithRole("admin-1", domain.RoleAdmin), nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "target").
		Return(userWithRole("target", domain.RoleViewer), nil).Once()
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "target" && u.Role != nil && *u.Role == domain.RoleStaff && u.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	newRole := "staff"
	updated, err := suite.service.UpdateUser(suite.ctx, "admin-1", "target", dto.UpdateUserRequest{Role: &newRole})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, *updated.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_RejectsUnknownRole() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "admin-1").
		Return(userWithRole("admin-1", domain.RoleAdmin), nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "target").
		Return(userWithRole("target", domain.RoleViewer), nil).Once()

	badRole := "owner"
	_, err := suite.service.UpdateUser(suite.ctx, "admin-1", "target", dto.UpdateUserRequest{Role: &badRole})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_CannotDeleteSelf() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "admin-1").
		Return(userWithRole("admin-1", domain.RoleAdmin), nil).Once()

	err := suite.service.DeleteUser(suite.ctx, "admin-1", "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_AdminDeletesOther() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "admin-1").
		Return(userWithRole("admin-1", domain.RoleAdmin), nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", suite.ctx, "viewer-1", mock.Anything, "admin-1").
		Return(nil).Once()

	err := suite.service.DeleteUser(suite.ctx, "admin-1", "viewer-1")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	user := userWithRole("user-1", domain.RoleStaff)
	user.AuthProvider = domain.ProviderLocal
	user.PasswordHash = hash
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(suite.ctx, user.Email, "correct horse")

	suite.Require().NoError(err)
	suite.Equal("user-1", got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	user := userWithRole("user-1", domain.RoleStaff)
	user.AuthProvider = domain.ProviderLocal
	user.PasswordHash = hash
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, user.Email).Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(suite.ctx, user.Email, "battery staple")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "nobody@example.com", "whatever")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleAccountRejectsPassword() {
	user := userWithRole("user-1", domain.RoleStaff)
	user.AuthProvider = domain.ProviderGoogle
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, user.Email).Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, user.Email, "anything")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}
