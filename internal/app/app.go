package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mailer"
	"github.com/metinatakli/cinema-booking-system/internal/repository"
	"github.com/metinatakli/cinema-booking-system/internal/service"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
	"github.com/metinatakli/cinema-booking-system/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-booking-api"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	filmRepo    domain.FilmRepository
	roomRepo    domain.RoomRepository
	roleRepo    domain.RoleRepository
	userRepo    domain.UserRepository
	ticketRepo  domain.TicketRepository
	accountRepo domain.AccountRepository

	showtimeService    *service.ShowtimeService
	reservationService *service.ReservationService
	accountService     *service.AccountService
	userService        *service.UserService
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	// Location is the time zone business hours are evaluated in.
	Location     *time.Location
	TicketPrices service.TicketPrices
	DB           DBConfig
	Redis        RedisConfig
	SMTP         SMTPConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// Repositories groups the persistence collaborators the services are built on.
type Repositories struct {
	Transactor   domain.Transactor
	Films        domain.FilmRepository
	Rooms        domain.RoomRepository
	Showtimes    domain.ShowtimeRepository
	Tickets      domain.TicketRepository
	Accounts     domain.AccountRepository
	Transactions domain.TransactionRepository
	Users        domain.UserRepository
	Roles        domain.RoleRepository
}

func NewRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Transactor:   repository.NewPostgresTransactor(db),
		Films:        repository.NewPostgresFilmRepository(db),
		Rooms:        repository.NewPostgresRoomRepository(db),
		Showtimes:    repository.NewPostgresShowtimeRepository(db),
		Tickets:      repository.NewPostgresTicketRepository(db),
		Accounts:     repository.NewPostgresAccountRepository(db),
		Transactions: repository.NewPostgresTransactionRepository(db),
		Users:        repository.NewPostgresUserRepository(db),
		Roles:        repository.NewPostgresRoleRepository(db),
	}
}

func Run() error {
	// a missing .env file is fine, flags and the environment still apply
	_ = godotenv.Load()

	var (
		cfg         Config
		timezone    string
		simplePrice string
		goldPrice   string
	)

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", envString("OTEL_COLLECTOR_URL", ""), "OpenTelemetry collector endpoint")
	flag.StringVar(&timezone, "timezone", envString("TIMEZONE", "Europe/Paris"), "Time zone of the business hours")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", envString("DB_DSN", ""), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", envInt("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", envDuration("DB_MAX_IDLE_TIME", 15*time.Minute), "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", envString("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", envInt("REDIS_MAX_OPEN_CONNS", 25), "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", envInt("REDIS_MAX_IDLE_CONNS", 10), "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", envDuration("REDIS_MAX_IDLE_TIME", 2*time.Minute), "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", envString("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", envString("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "Cinema <no-reply@cinema.example.com>"), "SMTP sender")

	flag.StringVar(&simplePrice, "ticket-price-simple", envString("TICKET_PRICE_SIMPLE", ""), "Price of a simple ticket")
	flag.StringVar(&goldPrice, "ticket-price-gold", envString("TICKET_PRICE_GOLD", ""), "Price of a gold ticket")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	cfg.Location = location

	cfg.TicketPrices, err = parseTicketPrices(simplePrice, goldPrice)
	if err != nil {
		return err
	}

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(os.Stdout, nil),
		otelslog.NewHandler(serviceName),
	))

	if cfg.TicketPrices.Simple == nil || cfg.TicketPrices.Gold == nil {
		logger.Warn("ticket prices are not fully configured, purchases of the missing kinds will fail")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		NewRepositories(db),
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	repos Repositories) *Application {

	rules := domain.NewScheduleRules(cfg.Location)

	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		redis:          redisClient,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,

		filmRepo:    repos.Films,
		roomRepo:    repos.Rooms,
		roleRepo:    repos.Roles,
		userRepo:    repos.Users,
		ticketRepo:  repos.Tickets,
		accountRepo: repos.Accounts,

		showtimeService: service.NewShowtimeService(
			repos.Transactor, repos.Films, repos.Rooms, repos.Showtimes, rules),
		reservationService: service.NewReservationService(
			repos.Transactor, repos.Showtimes, repos.Tickets),
		accountService: service.NewAccountService(
			repos.Transactor, repos.Accounts, repos.Transactions, repos.Tickets, cfg.TicketPrices),
		userService: service.NewUserService(
			repos.Transactor, repos.Users, repos.Roles, repos.Accounts),
	}
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(
		redisotel.InstrumentTracing(rdb),
		redisotel.InstrumentMetrics(rdb),
	)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
