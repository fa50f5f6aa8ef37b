package bootstrap

import (
	"context"

	"equiplend/internal/infra/lending"
	"equiplend/internal/infra/oracle"
	"equiplend/internal/infra/session"
	"equiplend/internal/pkg/clock"
	"equiplend/internal/pkg/config"
	"equiplend/internal/usecase/commands"
	"equiplend/internal/usecase/queries"

	"go.uber.org/fx"
)

// CollaboratorModule wires the external collaborators: the
// availability oracle, the lending backend, and the in-memory draft
// session store.
var CollaboratorModule = fx.Module("collaborators",
	fx.Provide(
		NewOracleClient,
		NewLendingClient,
		NewDraftStore,
		fx.Annotate(
			func(c *oracle.Client) *oracle.Client { return c },
			fx.As(new(commands.AvailabilityOracle)),
		),
		fx.Annotate(
			func(c *lending.Client) *lending.Client { return c },
			fx.As(new(commands.InventoryReader)),
			fx.As(new(commands.PolicyReader)),
			fx.As(new(commands.BookingSubmitter)),
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			func(s *session.Store) *session.Store { return s },
			fx.As(new(commands.DraftStore)),
			fx.As(new(queries.DraftReader)),
		),
	),
)

func NewOracleClient(cfg config.Config) *oracle.Client {
	return oracle.NewClient(cfg.Oracle.BaseURL, cfg.Oracle.ClientTimeout)
}

func NewLendingClient(cfg config.Config) *lending.Client {
	return lending.NewClient(cfg.Lending.BaseURL, cfg.Lending.ClientTimeout)
}

func NewDraftStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *session.Store {
	store := session.NewStore(clk, cfg.Session.DraftTTL)
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunSweeper(cfg.Session.SweepInterval, stop)
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			return nil
		},
	})

	return store
}
