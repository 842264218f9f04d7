package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tidwall/gjson"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	"github.com/william000000/team-odd-bn-backend/src/models"
	"github.com/william000000/team-odd-bn-backend/src/types"
	"github.com/william000000/team-odd-bn-backend/src/utils"
	"gorm.io/gorm"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}
func (m *mockUsers) Create(ctx context.Context, user *models.User) error {
	return m.Called(user).Error(0)
}
func (m *mockUsers) UpdateRole(ctx context.Context, userID uint, roleID uint) error {
	return m.Called(userID, roleID).Error(0)
}

type mockRoles struct{ mock.Mock }

func (m *mockRoles) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*models.Role)
	return r, args.Error(1)
}
func (m *mockRoles) List(ctx context.Context) ([]models.Role, error) {
	args := m.Called()
	r, _ := args.Get(0).([]models.Role)
	return r, args.Error(1)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Save(ctx context.Context, userID uint, token string) error {
	return m.Called(userID, token).Error(0)
}
func (m *mockSessions) Get(ctx context.Context, userID uint) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
func (m *mockSessions) Delete(ctx context.Context, userID uint) error {
	return m.Called(userID).Error(0)
}

func init() {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = []byte("middleware-test-secret")
	utils.RegisterValidations()
}

func withPrincipal(p types.Principal) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(PRINCIPAL_KEY, p)
		ctx.Next()
	}
}

func ok(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"principal": GetPrincipal(ctx)})
}

func serve(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func roleRouter(users *mockUsers, roles *mockRoles, principal types.Principal) *gin.Engine {
	r := gin.New()
	r.PATCH("/roles/:id",
		withPrincipal(principal),
		Validate[types.RoleRequestBody](),
		VerifyInputRoles(users, roles),
		func(ctx *gin.Context) {
			body := GetBody[types.RoleRequestBody](ctx)
			ctx.JSON(http.StatusOK, gin.H{"id": body.ID, "email": body.Email})
		})
	return r
}

func TestVerifyInputRolesUnknownRole(t *testing.T) {
	users, roles := new(mockUsers), new(mockRoles)
	roles.On("FindByID", uint(9)).Return(nil, gorm.ErrRecordNotFound)

	w := serve(roleRouter(users, roles, types.Principal{ID: 1}), "PATCH", "/roles/9", `{"email":"jane@example.com"}`, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Role not exist", gjson.Get(w.Body.String(), "message").String())
	users.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestVerifyInputRolesUnknownEmail(t *testing.T) {
	users, roles := new(mockUsers), new(mockRoles)
	roles.On("FindByID", uint(6)).Return(&models.Role{ID: 6}, nil)
	users.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	w := serve(roleRouter(users, roles, types.Principal{ID: 1}), "PATCH", "/roles/6", `{"email":"ghost@example.com"}`, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Email does not exist", gjson.Get(w.Body.String(), "message").String())
}

func TestVerifyInputRolesRequesterMismatch(t *testing.T) {
	users, roles := new(mockUsers), new(mockRoles)
	roles.On("FindByID", uint(6)).Return(&models.Role{ID: 6}, nil)
	users.On("FindByEmail", "jane@example.com").Return(&models.User{ID: 4}, nil)
	users.On("FindByID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

	w := serve(roleRouter(users, roles, types.Principal{ID: 1}), "PATCH", "/roles/6", `{"email":"jane@example.com"}`, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Please provide the correct super admin information", gjson.Get(w.Body.String(), "message").String())
}

func TestVerifyInputRolesPasses(t *testing.T) {
	users, roles := new(mockUsers), new(mockRoles)
	roles.On("FindByID", uint(6)).Return(&models.Role{ID: 6}, nil)
	users.On("FindByEmail", "jane@example.com").Return(&models.User{ID: 4}, nil)
	users.On("FindByID", uint(1)).Return(&models.User{ID: 1}, nil)

	w := serve(roleRouter(users, roles, types.Principal{ID: 1}), "PATCH", "/roles/6", `{"email":"jane@example.com"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), gjson.Get(w.Body.String(), "id").Int())
}

func TestValidateRoleIDMustBePositive(t *testing.T) {
	users, roles := new(mockUsers), new(mockRoles)

	w := serve(roleRouter(users, roles, types.Principal{ID: 1}), "PATCH", "/roles/0", `{"email":"jane@example.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", gjson.Get(w.Body.String(), "message").String())
	assert.Equal(t, "ID should be an integer", gjson.Get(w.Body.String(), "errors.0").String())
	roles.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestValidateRoleIDMustBeNumeric(t *testing.T) {
	users, roles := new(mockUsers), new(mockRoles)

	w := serve(roleRouter(users, roles, types.Principal{ID: 1}), "PATCH", "/roles/abc", `{"email":"jane@example.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := gjson.Get(w.Body.String(), "errors").Array()
	assert.Len(t, errs, 1)
	assert.Equal(t, "ID should be an integer", errs[0].String())
	roles.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestValidateCollectsFieldMessages(t *testing.T) {
	r := gin.New()
	r.POST("/signup", Validate[types.SignupRequestBody](), ok)

	w := serve(r, "POST", "/signup", `{"firstName":"J4ne","lastName":"Doe","email":"nope","password":"123"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := gjson.Get(w.Body.String(), "errors").Array()
	assert.Len(t, errs, 3)
	assert.Equal(t, "first name should be valid", errs[0].String())
	assert.Equal(t, "email should be valid", errs[1].String())
	assert.Equal(t, "minimum password length is 6", errs[2].String())
}

func TestValidateDivesIntoItinerary(t *testing.T) {
	r := gin.New()
	r.POST("/trips", Validate[types.MultiCityTripRequestBody](), ok)
	body := `{"itinerary":[
		{"originId":1,"destinationId":2,"reason":"audit","startDate":"2030-01-10"},
		{"originId":0,"destinationId":3,"reason":"audit","startDate":"2030-01-12"}]}`

	w := serve(r, "POST", "/trips", body, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "city should be valid", gjson.Get(w.Body.String(), "errors.0").String())
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	r := gin.New()
	r.POST("/signin", Validate[types.SigninRequestBody](), ok)

	w := serve(r, "POST", "/signin", `{"email":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireRoles(t *testing.T) {
	r := gin.New()
	r.GET("/admin", withPrincipal(types.Principal{ID: 3, RoleID: types.ROLE_REQUESTER}), RequireRoles(types.ROLE_SUPER_ADMIN), ok)
	r.GET("/supplier", withPrincipal(types.Principal{ID: 3, RoleID: types.ROLE_SUPPLIER}), RequireRoles(types.ROLE_SUPER_ADMIN, types.ROLE_SUPPLIER), ok)

	w := serve(r, "GET", "/admin", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not allowed to perform this action", gjson.Get(w.Body.String(), "message").String())

	w = serve(r, "GET", "/supplier", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareWithoutToken(t *testing.T) {
	r := gin.New()
	r.GET("/me", AuthMiddleware(new(mockUsers), nil), ok)

	w := serve(r, "GET", "/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSetsPrincipal(t *testing.T) {
	token, err := lib.GenerateJWT(7, "jane@example.com", types.ROLE_MANAGER)
	assert.NoError(t, err)
	users, sessions := new(mockUsers), new(mockSessions)
	users.On("FindByID", uint(7)).Return(&models.User{ID: 7, Email: "jane@example.com", RoleID: types.ROLE_MANAGER, FirstName: "Jane"}, nil)
	sessions.On("Get", uint(7)).Return(token, nil)
	r := gin.New()
	r.GET("/me", AuthMiddleware(users, sessions), ok)

	w := serve(r, "GET", "/me", "", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gjson.Get(w.Body.String(), "principal.id").Int())
	assert.Equal(t, int64(types.ROLE_MANAGER), gjson.Get(w.Body.String(), "principal.roleId").Int())

	w = serve(r, "GET", "/me", "", map[string]string{"token": token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsStaleSession(t *testing.T) {
	token, _ := lib.GenerateJWT(7, "jane@example.com", types.ROLE_REQUESTER)
	sessions := new(mockSessions)
	sessions.On("Get", uint(7)).Return("", lib.ErrSessionNotFound)
	r := gin.New()
	r.GET("/me", AuthMiddleware(new(mockUsers), sessions), ok)

	w := serve(r, "GET", "/me", "", map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Session expired, please sign in again", gjson.Get(w.Body.String(), "message").String())
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	r := gin.New()
	r.GET("/me", AuthMiddleware(new(mockUsers), nil), ok)

	w := serve(r, "GET", "/me", "", map[string]string{"Authorization": "Bearer abc.def.ghi"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := gin.New()
	r.GET("/auth", rl.Handler(), ok)

	assert.Equal(t, http.StatusOK, serve(r, "GET", "/auth", "", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, "GET", "/auth", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "GET", "/auth", "", nil).Code)

	rl.Cleanup(0)
	assert.Equal(t, http.StatusOK, serve(r, "GET", "/auth", "", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics("barefoot")
	r := gin.New()
	r.Use(m.Handler())
	r.GET("/ping", ok)
	r.GET("/metrics", m.Endpoint())

	serve(r, "GET", "/ping", "", nil)
	w := serve(r, "GET", "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `barefoot_http_requests_total{method="GET",path="/ping",status="200"} 1`)
}

func TestSecureHeadersAndTimeout(t *testing.T) {
	r := gin.New()
	r.Use(SecureHeaders, Timeout(time.Second))
	r.GET("/", func(ctx *gin.Context) {
		_, hasDeadline := ctx.Request.Context().Deadline()
		ctx.JSON(http.StatusOK, gin.H{"deadline": hasDeadline})
	})

	w := serve(r, "GET", "/", "", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.True(t, gjson.Get(w.Body.String(), "deadline").Bool())
}
