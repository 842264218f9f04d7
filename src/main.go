package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"regexp"
	"syscall"
	"time"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/william000000/team-odd-bn-backend/src/boot"
	"github.com/william000000/team-odd-bn-backend/src/config"
	"github.com/william000000/team-odd-bn-backend/src/controllers"
	"github.com/william000000/team-odd-bn-backend/src/db"
	"github.com/william000000/team-odd-bn-backend/src/lib"
	awslib "github.com/william000000/team-odd-bn-backend/src/lib/aws"
	"github.com/william000000/team-odd-bn-backend/src/lib/mailer"
	"github.com/william000000/team-odd-bn-backend/src/middlewares"
	"github.com/william000000/team-odd-bn-backend/src/repository"
	"github.com/william000000/team-odd-bn-backend/src/services"
	"github.com/william000000/team-odd-bn-backend/src/utils"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api/v1"
)

// app holds everything the route groups need.
type app struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	sessions lib.SessionStore
	limiter  *middlewares.RateLimiter
	metrics  *middlewares.Metrics

	auth           *controllers.AuthController
	locations      *controllers.LocationController
	trips          *controllers.TripController
	userController *controllers.UserController
	accommodations *controllers.AccommodationController
	bookings       *controllers.BookingController
	comments       *controllers.CommentController
	notifications  *controllers.NotificationController
}

type dependencies struct {
	Sessions lib.SessionStore
	Events   lib.EventPublisher
	Mailer   lib.Mailer
	Pusher   lib.Pusher
	Images   services.ImageStore
	Social   []lib.SocialProvider
}

type repositories struct {
	users          repository.UserRepository
	roles          repository.RoleRepository
	profiles       repository.ProfileRepository
	cities         repository.CityRepository
	trips          repository.TripRepository
	accommodations repository.AccommodationRepository
	bookings       repository.BookingRepository
	comments       repository.CommentRepository
	notifications  repository.NotificationRepository
	tx             repository.Transactor
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		users:          repository.NewUserRepository(gdb),
		roles:          repository.NewRoleRepository(gdb),
		profiles:       repository.NewProfileRepository(gdb),
		cities:         repository.NewCityRepository(gdb),
		trips:          repository.NewTripRepository(gdb),
		accommodations: repository.NewAccommodationRepository(gdb),
		bookings:       repository.NewBookingRepository(gdb),
		comments:       repository.NewCommentRepository(gdb),
		notifications:  repository.NewNotificationRepository(gdb),
		tx:             repository.NewTransactor(gdb),
	}
}

func newApp(r *repositories, deps dependencies, notifications *services.NotificationService) *app {
	return &app{
		users:    r.users,
		roles:    r.roles,
		sessions: deps.Sessions,
		limiter:  middlewares.NewRateLimiter(config.RATE_LIMIT_RPS, config.RATE_LIMIT_RPS*2),
		metrics:  middlewares.NewMetrics("barefoot"),

		auth:           controllers.NewAuthController(services.NewAuthService(r.users, deps.Sessions, deps.Social...)),
		locations:      controllers.NewLocationController(services.NewLocationService(r.cities)),
		trips:          controllers.NewTripController(services.NewTripService(r.trips, r.profiles, r.cities, r.accommodations, r.tx, deps.Events)),
		userController: controllers.NewUserController(services.NewUserService(r.users, r.roles, r.profiles)),
		accommodations: controllers.NewAccommodationController(services.NewAccommodationService(r.accommodations, r.cities, deps.Images)),
		bookings:       controllers.NewBookingController(services.NewBookingService(r.bookings, r.trips, r.accommodations)),
		comments:       controllers.NewCommentController(services.NewCommentService(r.comments, r.trips, r.profiles, deps.Events)),
		notifications:  controllers.NewNotificationController(notifications),
	}
}

func setupRouter(a *app) *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.Use(a.metrics.Handler())
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "Welcome to Barefoot Nomad"})
	})
	router.GET("/metrics", a.metrics.Endpoint())
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if config.MAINTENANCE_MODE {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			utils.ErrorMessage(ctx, http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func corsMiddleware() gin.HandlerFunc {
	if !config.IsProd() {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization", "token")
	cc.AllowOriginFunc = func(origin string) bool {
		if config.APP_HOST == "" {
			return false
		}
		match, _ := regexp.MatchString(regexp.QuoteMeta(config.APP_HOST), origin)
		return match
	}
	cc.AllowCredentials = true
	return cors.New(cc)
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	apiv1.Use(middlewares.Timeout(config.REQUEST_TIMEOUT))
	return apiv1
}

// registerRoutes mounts every route group on router.
func registerRoutes(router *gin.Engine, a *app) {
	apiv1 := apiv1Group(router)
	authHandlers(apiv1, a)

	authorized := apiv1.Group("")
	authorized.Use(middlewares.AuthMiddleware(a.users, a.sessions))
	{
		authorized.POST("/auth/logout", a.auth.Logout)
		authorized = locationHandlers(authorized, a)
		authorized = tripHandlers(authorized, a)
		authorized = userHandlers(authorized, a)
		authorized = accommodationHandlers(authorized, a)
		authorized = bookingHandlers(authorized, a)
		authorized = notificationHandlers(authorized, a)
	}
}

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")

	if err := os.MkdirAll(path.Join(cwd, "logs"), 0o755); err != nil {
		log.Printf("Could not create logs directory: %s\n", err.Error())
		return
	}
	f, err := os.Create(apiLogs)
	if err == nil {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func loadEnv(ctx context.Context) {
	if os.Getenv("API_ENV") == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("Could not load .env: %s\n", err.Error())
		}
	}
	if secretID := os.Getenv("AWS_SECRET_ID"); secretID != "" {
		client, err := awslib.GetSecretsClient(ctx)
		if err != nil {
			log.Fatalf("Could not load secrets: %s", err.Error())
		}
		if err := awslib.ExportSecrets(ctx, client, secretID); err != nil {
			log.Fatalf("Could not export secrets: %s", err.Error())
		}
	}
	config.Load()
}

func externalDependencies() dependencies {
	deps := dependencies{
		Mailer: mailer.New(),
		Social: []lib.SocialProvider{lib.NewFacebookProvider(), lib.NewGoogleProvider()},
	}
	if rdb := lib.GetRedisClient(); rdb != nil {
		deps.Sessions = lib.NewRedisSessionStore(rdb)
	} else {
		log.Println("REDIS_HOST not set, sessions are not tracked")
	}
	if p := lib.GetPusherClient(); p != nil {
		deps.Pusher = p
	}
	if config.S3_BUCKET != "" {
		if client := awslib.GetS3Client(); client != nil {
			deps.Images = awslib.NewS3Uploader(client, config.S3_BUCKET, os.Getenv("AWS_REGION"))
		}
	}
	return deps
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadEnv(ctx)
	initLogger()
	utils.RegisterValidations()

	gdb := boot.InitDb()
	defer db.Close()

	deps := externalDependencies()
	repos := newRepositories(gdb)
	notificationService := services.NewNotificationService(repos.notifications, repos.users, repos.profiles, deps.Pusher, deps.Mailer)
	publisher, closeBroker := boot.InitBroker(ctx, notificationService.HandleEvent)
	defer closeBroker()
	deps.Events = publisher

	a := newApp(repos, deps, notificationService)
	digestService := services.NewDigestService(repos.profiles, deps.Mailer)

	boot.InitScheduler(digestService)
	defer boot.StopScheduler()

	stopCleanup := make(chan struct{})
	a.limiter.StartCleanup(10*time.Minute, stopCleanup)
	defer close(stopCleanup)

	router := setupRouter(a)
	router.Use(corsMiddleware())
	router = maintenanceModeMiddleware(router)
	registerRoutes(router, a)

	srv := &http.Server{
		Addr:    ":" + config.API_PORT,
		Handler: router,
	}
	go func() {
		log.Printf("Listening on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Could not start server: %s", err.Error())
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %s\n", err.Error())
	}
}
