package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mealio/food-order-service/internal/app"
	"github.com/mealio/food-order-service/internal/checkout"
	"github.com/mealio/food-order-service/internal/config"
	"github.com/mealio/food-order-service/internal/events"
	"github.com/mealio/food-order-service/internal/handler"
	"github.com/mealio/food-order-service/internal/payment"
	"github.com/mealio/food-order-service/internal/postgres"
	"github.com/mealio/food-order-service/internal/repo"
	"github.com/mealio/food-order-service/internal/service"
	"github.com/mealio/food-order-service/internal/upload"
	"github.com/mealio/food-order-service/pkg/cache"
	"github.com/mealio/food-order-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// @title           Food Order Service API
// @version         1.0
// @description     HTTP API сервиса заказа еды
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	deliveryFee, err := decimal.NewFromString(conf.Checkout.DeliveryFee)
	panicIfErr("invalid delivery fee", err)

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	cartsRepo := repo.NewCartsRepo(db)
	addressesRepo := repo.NewAddressesRepo(db)
	foodsRepo := repo.NewFoodsRepo(db)
	usersRepo := repo.NewUsersRepo(db)
	favoritesRepo := repo.NewFavoritesRepo(db)
	statsRepo := repo.NewStatsRepo(db)

	txManager := trm.NewManager(db)
	ordersCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	producer := events.NewProducer(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, cartsRepo, addressesRepo, ordersCache, producer, deliveryFee)
	cartService := service.NewCartService(logger, cartsRepo, foodsRepo, deliveryFee)
	catalogService := service.NewCatalogService(logger, foodsRepo)
	addressService := service.NewAddressService(logger, addressesRepo)
	userService := service.NewUserService(logger, usersRepo)
	favoriteService := service.NewFavoriteService(logger, favoritesRepo, foodsRepo)
	statsService := service.NewStatsService(logger, statsRepo)

	gateway := payment.NewGateway(logger, conf.Payment)
	coordinator := checkout.NewCoordinator(logger, gateway, orderService, cartsRepo, addressesRepo, deliveryFee, conf.Payment.ResultTimeout)
	uploader := upload.New(logger, conf.Upload)

	application := app.New(logger, conf)

	application.SetHTTPHandlers(
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewCartHandler(logger, cartService),
		handler.NewCheckoutHandler(logger, coordinator, gateway),
		handler.NewOrdersHandler(logger, orderService),
		handler.NewProfileHandler(logger, userService, addressService, favoriteService),
		handler.NewAdminHandler(logger, orderService, catalogService, userService, statsService, uploader),
	)
	application.SetStarters(ordersCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	application.SetClosers(producer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
