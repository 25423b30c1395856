package routes

import (
	"context"
	"log"

	"carrozzeria/internal/adapter/persistence/repository"
	"carrozzeria/internal/infrastructure/config"
	"carrozzeria/internal/infrastructure/database"
	"carrozzeria/internal/usecase/interfaces"
)

type repositories struct {
	sessions  interfaces.IWorkSessionRepository
	employees interfaces.IEmployeeRepository
	orders    interfaces.IWorkOrderRepository
	quotes    interfaces.IQuoteRepository
	payments  interfaces.IQuotePaymentRepository
	sequence  interfaces.ISequenceGenerator
}

// openRepositories wires every port to the configured storage driver. The
// returned func releases the underlying connection.
func openRepositories(ctx context.Context, cfg config.Config) (repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath, cfg.SQLDebug)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := repository.MigrateGorm(db); err != nil {
			_ = database.CloseSQLite(db)
			return repositories{}, nil, err
		}
		log.Printf("[storage] sqlite path=%s", cfg.SQLitePath)
		return repositories{
			sessions:  repository.NewWorkSessionGormRepository(db),
			employees: repository.NewEmployeeGormRepository(db),
			orders:    repository.NewWorkOrderGormRepository(db),
			quotes:    repository.NewQuoteGormRepository(db),
			payments:  repository.NewQuotePaymentGormRepository(db),
			sequence:  repository.NewCounterGormRepository(db),
		}, func() { _ = database.CloseSQLite(db) }, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return repositories{}, nil, err
		}
		log.Printf("[storage] dynamodb")
		return repositories{
			sessions:  repository.NewWorkSessionDynamoRepository(ddb),
			employees: repository.NewEmployeeDynamoRepository(ddb),
			orders:    repository.NewWorkOrderDynamoRepository(ddb),
			quotes:    repository.NewQuoteDynamoRepository(ddb),
			payments:  repository.NewQuotePaymentDynamoRepository(ddb),
			sequence:  repository.NewCounterDynamoRepository(ddb),
		}, func() {}, nil
	}
}
