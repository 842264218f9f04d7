package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

func TestAssignRole(t *testing.T) {
	users, roles := new(mockUserRepo), new(mockRoleRepo)
	roles.On("FindByID", uint(6)).Return(&models.Role{ID: 6, Name: "manager"}, nil)
	users.On("FindByEmail", "jane@example.com").Return(&models.User{ID: 7, RoleID: 5}, nil)
	users.On("UpdateRole", uint(7), uint(6)).Return(nil)

	user, err := NewUserService(users, roles, new(mockProfileRepo)).AssignRole(context.Background(), 6, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(6), user.RoleID)
}

func TestAssignUnknownRole(t *testing.T) {
	roles := new(mockRoleRepo)
	roles.On("FindByID", uint(60)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewUserService(new(mockUserRepo), roles, new(mockProfileRepo)).AssignRole(context.Background(), 60, "jane@example.com")
	assert.Equal(t, http.StatusNotFound, types.StatusOf(err))
	assert.EqualError(t, err, "Role not exist")
}

func TestUpdateProfileWithUnknownManager(t *testing.T) {
	users, profiles := new(mockUserRepo), new(mockProfileRepo)
	managerID := uint(40)
	profiles.On("FindByUserID", uint(7)).Return(&models.UserProfile{ID: 1, UserID: 7}, nil)
	users.On("FindByID", uint(40)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewUserService(users, new(mockRoleRepo), profiles).UpdateProfile(context.Background(), 7, &types.ProfileRequestBody{ManagerID: &managerID})
	assert.EqualError(t, err, "Manager does not exist")
	assert.Equal(t, http.StatusNotFound, types.StatusOf(err))
	profiles.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUpdateProfile(t *testing.T) {
	users, profiles := new(mockUserRepo), new(mockProfileRepo)
	managerID := uint(3)
	department := " Engineering "
	birthDate := "1990-04-02"
	profiles.On("FindByUserID", uint(7)).Return(&models.UserProfile{ID: 1, UserID: 7}, nil)
	users.On("FindByID", uint(3)).Return(&models.User{ID: 3}, nil)
	profiles.On("Save", mock.MatchedBy(func(p *models.UserProfile) bool {
		return *p.ManagerID == 3 && *p.Department == "Engineering" && p.BirthDate.Year() == 1990
	})).Return(nil)

	profile, err := NewUserService(users, new(mockRoleRepo), profiles).UpdateProfile(context.Background(), 7, &types.ProfileRequestBody{
		ManagerID:  &managerID,
		Department: &department,
		BirthDate:  &birthDate,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), *profile.ManagerID)
}

func TestUpdateProfileRejectsSelfAsManager(t *testing.T) {
	profiles := new(mockProfileRepo)
	self := uint(7)
	profiles.On("FindByUserID", uint(7)).Return(&models.UserProfile{ID: 1, UserID: 7}, nil)

	_, err := NewUserService(new(mockUserRepo), new(mockRoleRepo), profiles).UpdateProfile(context.Background(), 7, &types.ProfileRequestBody{ManagerID: &self})
	assert.Equal(t, http.StatusBadRequest, types.StatusOf(err))
}

func TestCreateLocationAddsSlug(t *testing.T) {
	cities := new(mockCityRepo)
	cities.On("Create", mock.MatchedBy(func(c *models.City) bool {
		return c.City == "Kigali" && c.Slug == "kigali"
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.City).ID = 1
	})

	city, err := NewLocationService(cities).Create(context.Background(), "Kigali")
	require.NoError(t, err)
	assert.Equal(t, uint(1), city.ID)
	assert.Equal(t, "Kigali", city.City)
}
