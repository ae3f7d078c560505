package main

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"slices"

	"leasing/config"
	"leasing/internal/delivery"
	"leasing/internal/delivery/http"
	"leasing/internal/delivery/http/router/handler"
	"leasing/internal/delivery/worker"
	"leasing/internal/domain/constants"
	"leasing/internal/domain/repository"
	"leasing/internal/domain/scoring"
	"leasing/internal/domain/service"
	logs "leasing/internal/infra/log"
	"leasing/internal/infra/persistence/memory"
	"leasing/internal/infra/persistence/postgres"
	"leasing/internal/infra/pubsub"
	"leasing/internal/infra/qrcode"
	"leasing/internal/infra/realtime"
	"leasing/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUnitRepository,
		),
	)
}

type unitRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newUnitRepository selects the unit store named by store.driver
func newUnitRepository(params unitRepositoryParams) (repository.UnitRepository, error) {
	switch params.Config.Store.Driver {
	case constants.StoreDriverMemory:
		params.Logger.Info("Using in-memory unit store")

		return memory.NewUnitRepository(), nil
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL unit store")

		return postgres.NewUnitRepository(db), nil
	default:
		return nil, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newScoringEngine,
			newQRCodeService,
			pubsub.NewEventPublisher,
			realtime.NewRegistry,
			realtime.NewMirror,
			realtime.NewBroadcaster,
			func(registry *realtime.Registry) service.ObserverRegistry { return registry },
			func(broadcaster *realtime.Broadcaster) service.UnitBroadcaster { return broadcaster },
		),
	)
}

// newScoringEngine applies the configured zones and amenity overrides to the default tables
func newScoringEngine(cfg *config.Config) *scoring.Engine {
	scoringCfg := cfg.Scoring
	weights := scoring.DefaultWeights()

	for _, name := range slices.Sorted(maps.Keys(scoringCfg.AmenityWeights)) {
		weights = weights.WithAmenity(name, scoringCfg.AmenityWeights[name])
	}
	for _, alias := range slices.Sorted(maps.Keys(scoringCfg.AmenityAliases)) {
		canonical := scoringCfg.AmenityAliases[alias]
		weights = weights.WithAmenity(canonical, weights.Weight(canonical), alias)
	}
	if scoringCfg.AmenityCap > 0 {
		weights = weights.WithCap(scoringCfg.AmenityCap)
	}

	opts := []scoring.Option{scoring.WithWeights(weights)}
	if len(scoringCfg.HighDemandZones) > 0 {
		opts = append(opts, scoring.WithHighDemandZones(scoringCfg.HighDemandZones...))
	}

	return scoring.NewEngine(opts...)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCoordinator,
			impl.NewUnitService,
			impl.NewScoreService,
			impl.NewAnalyticsService,
			impl.NewStreamService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewUnitHandler,
			handler.NewLeadHandler,
			handler.NewAnalyticsHandler,
			handler.NewStreamHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Delivery stopped with error", slog.Any("error", err))
				if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}
