package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/types"
)

type mockTx struct{ mock.Mock }

func (m *mockTx) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called()
	return fn(ctx)
}

type mockTripRepo struct{ mock.Mock }

func (m *mockTripRepo) CreateRequest(ctx context.Context, request *models.TripRequest) error {
	return m.Called(request).Error(0)
}
func (m *mockTripRepo) FindRequest(ctx context.Context, id uint) (*models.TripRequest, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*models.TripRequest)
	return r, args.Error(1)
}
func (m *mockTripRepo) TripIDs(ctx context.Context, tripRequestID uint) ([]uint, error) {
	args := m.Called(tripRequestID)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}
func (m *mockTripRepo) SetRequestStatus(ctx context.Context, tripRequestID uint, status types.TripRequestStatus) error {
	return m.Called(tripRequestID, status).Error(0)
}
func (m *mockTripRepo) UpdateTrip(ctx context.Context, tripID uint, update repository.TripUpdate) error {
	return m.Called(tripID, update).Error(0)
}
func (m *mockTripRepo) FindTrip(ctx context.Context, id uint) (*models.Trip, error) {
	args := m.Called(id)
	t, _ := args.Get(0).(*models.Trip)
	return t, args.Error(1)
}
func (m *mockTripRepo) TripsForUser(ctx context.Context, userID uint) ([]models.Trip, error) {
	args := m.Called(userID)
	t, _ := args.Get(0).([]models.Trip)
	return t, args.Error(1)
}
func (m *mockTripRepo) TripsForUserInRange(ctx context.Context, userID uint, tripTypeID uint, from time.Time, to time.Time) ([]models.Trip, error) {
	args := m.Called(userID, tripTypeID, from, to)
	t, _ := args.Get(0).([]models.Trip)
	return t, args.Error(1)
}
func (m *mockTripRepo) MostTravelledDestination(ctx context.Context) (*repository.DestinationCount, error) {
	args := m.Called()
	d, _ := args.Get(0).(*repository.DestinationCount)
	return d, args.Error(1)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}
func (m *mockProfileRepo) Save(ctx context.Context, profile *models.UserProfile) error {
	return m.Called(profile).Error(0)
}
func (m *mockProfileRepo) ReportsWithPendingRequests(ctx context.Context, managerID uint) ([]models.UserProfile, error) {
	args := m.Called(managerID)
	p, _ := args.Get(0).([]models.UserProfile)
	return p, args.Error(1)
}
func (m *mockProfileRepo) FindReport(ctx context.Context, managerID uint, userID uint) (*models.UserProfile, error) {
	args := m.Called(managerID, userID)
	p, _ := args.Get(0).(*models.UserProfile)
	return p, args.Error(1)
}
func (m *mockProfileRepo) PendingCountsByManager(ctx context.Context) ([]repository.ManagerPendingCount, error) {
	args := m.Called()
	r, _ := args.Get(0).([]repository.ManagerPendingCount)
	return r, args.Error(1)
}

type mockCityRepo struct{ mock.Mock }

func (m *mockCityRepo) Create(ctx context.Context, city *models.City) error {
	return m.Called(city).Error(0)
}
func (m *mockCityRepo) List(ctx context.Context) ([]models.City, error) {
	args := m.Called()
	c, _ := args.Get(0).([]models.City)
	return c, args.Error(1)
}
func (m *mockCityRepo) FindByID(ctx context.Context, id uint) (*models.City, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*models.City)
	return c, args.Error(1)
}
func (m *mockCityRepo) NamesByIDs(ctx context.Context, ids ...uint) (map[uint]string, error) {
	args := m.Called(ids)
	n, _ := args.Get(0).(map[uint]string)
	return n, args.Error(1)
}

type mockAccommodationRepo struct{ mock.Mock }

func (m *mockAccommodationRepo) Create(ctx context.Context, a *models.Accommodation) error {
	return m.Called(a).Error(0)
}
func (m *mockAccommodationRepo) List(ctx context.Context) ([]models.Accommodation, error) {
	args := m.Called()
	a, _ := args.Get(0).([]models.Accommodation)
	return a, args.Error(1)
}
func (m *mockAccommodationRepo) FindByID(ctx context.Context, id uint) (*models.Accommodation, error) {
	args := m.Called(id)
	a, _ := args.Get(0).(*models.Accommodation)
	return a, args.Error(1)
}
func (m *mockAccommodationRepo) CountInCity(ctx context.Context, cityID uint) (int64, error) {
	args := m.Called(cityID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockAccommodationRepo) SetImages(ctx context.Context, id uint, urls types.StringArray) error {
	return m.Called(id, urls).Error(0)
}
func (m *mockAccommodationRepo) AddRoom(ctx context.Context, room *models.Room) error {
	return m.Called(room).Error(0)
}
func (m *mockAccommodationRepo) FindRoom(ctx context.Context, id uint) (*models.Room, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*models.Room)
	return r, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(user).Error(0)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, userID uint, roleID uint) error {
	return m.Called(userID, roleID).Error(0)
}

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*models.Role)
	return r, args.Error(1)
}
func (m *mockRoleRepo) List(ctx context.Context) ([]models.Role, error) {
	args := m.Called()
	r, _ := args.Get(0).([]models.Role)
	return r, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(b).Error(0)
}
func (m *mockBookingRepo) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(userID)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return m.Called(c).Error(0)
}
func (m *mockCommentRepo) ListForRequest(ctx context.Context, tripRequestID uint) ([]models.Comment, error) {
	args := m.Called(tripRequestID)
	c, _ := args.Get(0).([]models.Comment)
	return c, args.Error(1)
}

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return m.Called(n).Error(0)
}
func (m *mockNotificationRepo) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	args := m.Called(userID)
	n, _ := args.Get(0).([]models.Notification)
	return n, args.Error(1)
}
func (m *mockNotificationRepo) MarkRead(ctx context.Context, userID uint, id uuid.UUID) error {
	return m.Called(userID, id).Error(0)
}
func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event types.TripRequestEvent) error {
	return m.Called(event.Type, event.TripRequestID).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, input *lib.SendMailInput) error {
	return m.Called(input.To, input.Body).Error(0)
}

type mockPusher struct{ mock.Mock }

func (m *mockPusher) Trigger(channel string, eventName string, data interface{}) error {
	return m.Called(channel, eventName).Error(0)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Save(ctx context.Context, userID uint, token string) error {
	return m.Called(userID).Error(0)
}
func (m *mockSessions) Get(ctx context.Context, userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
func (m *mockSessions) Delete(ctx context.Context, userID uint) error {
	return m.Called(userID).Error(0)
}

type mockProvider struct {
	mock.Mock
	name types.Provider
}

func (m *mockProvider) Name() types.Provider { return m.name }
func (m *mockProvider) Profile(ctx context.Context, accessToken string) (*lib.SocialProfile, error) {
	args := m.Called(accessToken)
	p, _ := args.Get(0).(*lib.SocialProfile)
	return p, args.Error(1)
}
