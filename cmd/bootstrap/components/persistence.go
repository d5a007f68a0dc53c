package components

import (
	"enrollhub/internal/infra/db"
	"enrollhub/internal/infra/readstore"
	"enrollhub/internal/infra/repository"
	"enrollhub/internal/infra/uow"
	"enrollhub/internal/usecase/commands"
	"enrollhub/internal/usecase/queries"
	"enrollhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side runs through the UnitOfWork; transactional repositories
		// are constructed per-transaction inside it.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewStaffRepository,
			fx.As(new(commands.StaffRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewRegistrationReadStore,
			fx.As(new(queries.RegistrationReadStore)),
		),
		fx.Annotate(
			readstore.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
