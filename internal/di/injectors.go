//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"portfolio/internal"
	"portfolio/internal/auth"
	"portfolio/internal/backup"
	"portfolio/internal/controllers"
	"portfolio/internal/navigation"
	"portfolio/internal/providers"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
)

var storeSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	providers.NewClockProvider,

	storage.NewBackendProvider,
	storage.NewContentStoreProvider,
	repository.NewRepository,
	wire.Bind(new(backup.SnapshotRepository), new(*repository.Repository)),

	backup.NewZstdCompressor,
	backup.NewFileManager,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		storeSet,
		providers.NewInstrumentedCacheProvider,
		providers.NewSessionCookieProvider,

		storage.NewAuthStoreProvider,
		navigation.NewTableProvider,
		auth.NewCredentialVerifierProvider,
		auth.NewGuardProvider,

		backup.NewScheduler,
		controllers.NewContentController,
		controllers.NewAdminController,
		controllers.NewAuthController,
		controllers.NewNavigationController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitToolbox(cfg *structures.CliFlags) (*internal.Toolbox, error) {

	wire.Build(
		storeSet,
		internal.NewToolbox,
	)

	return nil, nil
}
