package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/teaflask/internal/docs"
	"github.com/sbilibin2017/teaflask/internal/handlers"
	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/mail"
	"github.com/sbilibin2017/teaflask/internal/middlewares"
	"github.com/sbilibin2017/teaflask/internal/migrations"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/repositories"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/sbilibin2017/teaflask/internal/tokens"
	"github.com/sbilibin2017/teaflask/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	// ExternalURL is the scheme://host[:port] mailed links point at.
	ExternalURL string

	SecretKey     string
	PerPage       int
	SessionSecure bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	Mail        mail.Config
	MailWorkers int
	MailQueue   int

	KafkaBrokers   []string
	KafkaPotsTopic string
}

// dsn returns the PostgreSQL connection string.
func (c config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title teaflask API
// @version 1.0.0
// @description Shared office tea log: teas, pots, brewers and roles
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.basic BasicAuth
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting teaflask Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, mail, Kafka and session configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.ExternalURL = strings.TrimRight(getEnv("APP_EXTERNAL_URL", "http://"+cfg.AppHost+":"+cfg.AppPort), "/")
	cfg.SecretKey = getEnv("SECRET_KEY", "hard to guess string")
	if cfg.PerPage, err = getInt("TEAFLASK_PER_PAGE", "20"); err != nil {
		return
	}
	if cfg.SessionSecure, err = getBool("SESSION_SECURE", "false"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "teaflask")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Mail config
	cfg.Mail.Host = getEnv("MAIL_SERVER", "")
	cfg.Mail.Username = getEnv("MAIL_USERNAME", "")
	cfg.Mail.Password = getEnv("MAIL_PASSWORD", "")
	cfg.Mail.Sender = getEnv("TEAFLASK_MAIL_SENDER", "teaflask Admin <teaflask@example.com>")
	cfg.Mail.SubjectPrefix = getEnv("TEAFLASK_MAIL_SUBJECT_PREFIX", "[teaflask]")
	if cfg.Mail.Port, err = getInt("MAIL_PORT", "465"); err != nil {
		return
	}
	if cfg.Mail.SSL, err = getBool("MAIL_USE_SSL", "true"); err != nil {
		return
	}
	if cfg.MailWorkers, err = getInt("MAIL_WORKERS", "2"); err != nil {
		return
	}
	if cfg.MailQueue, err = getInt("MAIL_QUEUE_SIZE", "64"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaPotsTopic = getEnv("KAFKA_POTS_TOPIC", "teaflask.pots")

	return
}

// run initializes the logger, database, Redis, Kafka writer, mail
// dispatcher and HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, false); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Pot events go to Kafka only when brokers are configured
	var potEvents services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaPotsTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		potEvents = kw
		log.Infof("Publishing pot events to %s on %v", cfg.KafkaPotsTopic, cfg.KafkaBrokers)
	}

	// Start mail dispatcher
	mailer, err := mail.NewMailer(cfg.Mail)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	if !mailer.Configured() {
		log.Warn("MAIL_SERVER is not set, account emails will not be sent")
	}
	dispatcher := mail.NewDispatcher(mailer, cfg.MailQueue)
	dispatcher.Start(ctx, cfg.MailWorkers)
	defer dispatcher.Stop()

	// Initialize renderer
	view, err := web.NewRenderer(cfg.SessionSecure)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	// Initialize repositories
	brewerRepo := repositories.NewBrewerRepository(db, middlewares.GetTxFromContext)
	roleRepo := repositories.NewRoleRepository(db, middlewares.GetTxFromContext)
	teaRepo := repositories.NewTeaRepository(db, middlewares.GetTxFromContext)
	potRepo := repositories.NewPotRepository(db, middlewares.GetTxFromContext)
	principalCache := repositories.NewPrincipalCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	// Initialize services
	tok := tokens.New(tokens.WithSecretKey(cfg.SecretKey))
	authService := services.NewAuthService(brewerRepo, roleRepo, tok, principalCache, cfg.SecretKey)
	accountMailer := services.NewAccountMailer(tok, dispatcher)
	roleService := services.NewRoleService(roleRepo, brewerRepo)
	teaService := services.NewTeaService(teaRepo)
	potService := services.NewPotService(potRepo, teaRepo, potEvents)
	brewerService := services.NewBrewerService(brewerRepo, roleRepo)

	// Seed roles
	if err := roleService.Seed(ctx); err != nil {
		return fmt.Errorf("seeding roles: %w", err)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middlewares.NewMetrics(reg)

	app := application{
		db:       db,
		view:     view,
		perPage:  cfg.PerPage,
		baseURL:  cfg.ExternalURL,
		auth:     authService,
		mails:    accountMailer,
		roles:    roleService,
		teas:     teaService,
		pots:     potService,
		brewers:  brewerService,
		sessions: session.NewManager(cfg.SecretKey, cfg.SessionSecure),
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Route(handlers.APIPrefix, app.apiRoutes)
	r.Group(app.pageRoutes)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// application holds the services the routes are built from.
type application struct {
	db       *sqlx.DB
	view     *web.Renderer
	perPage  int
	baseURL  string
	auth     *services.AuthService
	mails    *services.AccountMailer
	roles    *services.RoleService
	teas     *services.TeaService
	pots     *services.PotService
	brewers  *services.BrewerService
	sessions *session.Manager
}

// apiRoutes mounts the JSON API. Every route requires Basic credentials.
func (a application) apiRoutes(r chi.Router) {
	r.NotFound(handlers.NotFoundJSON)
	r.MethodNotAllowed(handlers.MethodNotAllowedJSON)
	r.Use(middlewares.TxMiddleware(a.db))
	r.Use(middlewares.BasicAuthMiddleware(a.auth))

	canBrew := middlewares.RequirePermission(models.PermissionBrew, middlewares.ForbiddenJSON)
	canAdminister := middlewares.RequirePermission(models.PermissionAdminister, middlewares.ForbiddenJSON)

	r.Get("/brewers/", handlers.NewListBrewersHandler(a.brewers, a.perPage))
	r.With(canBrew, canAdminister).Post("/brewers/", handlers.NewCreateBrewerHandler(a.brewers))
	r.Get("/brewers/{id}/", handlers.NewGetBrewerHandler(a.brewers))
	r.Get("/brewers/{id}/pots/", handlers.NewListBrewerPotsHandler(a.brewers, a.pots, a.perPage))

	r.Get("/roles/", handlers.NewListRolesHandler(a.roles, a.perPage))
	r.Get("/roles/{id}/", handlers.NewGetRoleHandler(a.roles))
	r.Get("/roles/{id}/brewers/", handlers.NewListRoleBrewersHandler(a.roles, a.perPage))

	r.Get("/pots/", handlers.NewListPotsHandler(a.pots, a.perPage))
	r.With(canBrew).Post("/pots/", handlers.NewCreatePotHandler(a.pots))
	r.Get("/pots/{id}", handlers.NewGetPotHandler(a.pots))

	r.Get("/teas/", handlers.NewListTeasHandler(a.teas, a.perPage))
	r.With(canBrew).Post("/teas/", handlers.NewCreateTeaHandler(a.teas))
	r.Get("/teas/{id}", handlers.NewGetTeaHandler(a.teas))
	r.Get("/teas/{id}/pots/", handlers.NewListTeaPotsHandler(a.teas, a.pots, a.perPage))
}

// pageRoutes mounts the HTML pages behind the session cookie.
func (a application) pageRoutes(r chi.Router) {
	r.Use(middlewares.TxMiddleware(a.db))
	r.Use(middlewares.SessionMiddleware(a.sessions, a.auth))

	forbidden := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.view.Error(w, r, http.StatusForbidden)
	})
	login := middlewares.RequireLogin("/auth/login")
	can := func(p models.Permission) func(http.Handler) http.Handler {
		return middlewares.RequirePermission(p, forbidden)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.view.Error(w, r, http.StatusNotFound)
	})

	index := handlers.NewIndexPageHandler(a.pots, a.view, a.perPage)
	r.Get("/", index)

	r.Group(func(r chi.Router) {
		r.Use(login, can(models.PermissionBrew))
		brew := handlers.NewBrewPageHandler(a.pots, a.teas, a.view)
		r.Get("/brew", brew)
		r.Post("/brew", brew)

		teaForm := handlers.NewTeaFormPageHandler(a.teas, a.view)
		r.Get("/tea/new", teaForm)
		r.Post("/tea/new", teaForm)
		r.Get("/tea/edit/{id}", teaForm)
		r.Post("/tea/edit/{id}", teaForm)
	})

	r.Group(func(r chi.Router) {
		r.Use(login, can(models.PermissionDrink))
		drink := handlers.NewDrinkPageHandler(a.pots, a.view)
		r.Get("/drink", drink)
		r.Post("/drink", drink)
		r.Get("/drink/{pot_id}", drink)
		r.Post("/drink/{pot_id}", drink)
	})

	r.Get("/tea/{id}", handlers.NewTeaPageHandler(a.teas, a.pots, a.view, a.perPage))
	r.Get("/user/{username}", handlers.NewUserPageHandler(a.brewers, a.pots, a.view, a.perPage))

	r.Group(func(r chi.Router) {
		r.Use(login)
		editProfile := handlers.NewEditProfilePageHandler(a.brewers, a.view)
		r.Get("/edit-profile", editProfile)
		r.Post("/edit-profile", editProfile)

		adminEdit := handlers.NewAdminEditProfilePageHandler(a.brewers, a.roles, a.view)
		r.With(can(models.PermissionAdminister)).Get("/edit-profile/{id}", adminEdit)
		r.With(can(models.PermissionAdminister)).Post("/edit-profile/{id}", adminEdit)
	})

	r.Route("/auth", a.authRoutes)
}

// authRoutes mounts the account pages.
func (a application) authRoutes(r chi.Router) {
	login := middlewares.RequireLogin("/auth/login")

	loginPage := handlers.NewLoginPageHandler(a.auth, a.view)
	r.Get("/login", loginPage)
	r.Post("/login", loginPage)
	r.Get("/logout", handlers.NewLogoutPageHandler())

	register := handlers.NewRegisterPageHandler(a.auth, a.mails, a.view, a.baseURL)
	r.Get("/register", register)
	r.Post("/register", register)

	resetRequest := handlers.NewResetRequestPageHandler(a.auth, a.mails, a.view, a.baseURL)
	r.Get("/reset", resetRequest)
	r.Post("/reset", resetRequest)
	reset := handlers.NewResetPageHandler(a.auth, a.view)
	r.Get("/reset/{token}", reset)
	r.Post("/reset/{token}", reset)

	r.Group(func(r chi.Router) {
		r.Use(login)
		r.Get("/confirm", handlers.NewResendConfirmationPageHandler(a.mails, a.baseURL))
		r.Get("/confirm/{token}", handlers.NewConfirmPageHandler(a.auth, a.view))

		changePassword := handlers.NewChangePasswordPageHandler(a.auth, a.view)
		r.Get("/change-password", changePassword)
		r.Post("/change-password", changePassword)

		changeEmail := handlers.NewChangeEmailRequestPageHandler(a.auth, a.mails, a.view, a.baseURL)
		r.Get("/change-email", changeEmail)
		r.Post("/change-email", changeEmail)
		r.Get("/change-email/{token}", handlers.NewChangeEmailPageHandler(a.auth, a.view))
	})
}
