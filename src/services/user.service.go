package services

import (
	"context"
	"errors"
	"strings"

	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"gorm.io/gorm"
)

type UserService struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	profiles repository.ProfileRepository
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, profiles repository.ProfileRepository) *UserService {
	return &UserService{users: users, roles: roles, profiles: profiles}
}

func (s *UserService) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.roles.List(ctx)
}

// AssignRole gives roleID to the user registered with email.
func (s *UserService) AssignRole(ctx context.Context, roleID uint, email string) (*models.User, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Role not exist")
		}
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Email does not exist")
		}
		return nil, err
	}
	if err := s.users.UpdateRole(ctx, user.ID, role.ID); err != nil {
		return nil, err
	}
	user.RoleID = role.ID
	user.Role = role
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, body *types.ProfileRequestBody) (*models.UserProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}
	if body.ManagerID != nil {
		if *body.ManagerID == userID {
			return nil, types.BadRequest("You cannot be your own manager")
		}
		if _, err := s.users.FindByID(ctx, *body.ManagerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.NotFound("Manager does not exist")
			}
			return nil, err
		}
		profile.ManagerID = body.ManagerID
		profile.Manager = nil
	}
	if body.Gender != nil {
		profile.Gender = body.Gender
	}
	if body.BirthDate != nil {
		birthDate, err := ParseDate(*body.BirthDate)
		if err != nil {
			return nil, types.BadRequest("birthDate should be a valid date (YYYY-MM-DD)")
		}
		profile.BirthDate = &birthDate
	}
	if body.Department != nil {
		department := strings.TrimSpace(*body.Department)
		profile.Department = &department
	}
	if body.Address != nil {
		address := strings.TrimSpace(*body.Address)
		profile.Address = &address
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
