// Package cli implements the hotelctl command line client.
package cli

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/hotelx/internal/config"
	"github.com/me/hotelx/internal/logging"
	"github.com/me/hotelx/pkg/hotelapi"
	"github.com/me/hotelx/pkg/model"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger   *slog.Logger
	session  *hotelapi.Session
	identity *hotelapi.IdentityClient
	hotels   *hotelapi.EntityClient[model.Hotel]
	rooms    *hotelapi.RoomsClient
	clients  *hotelapi.EntityClient[model.Client]
	bookings *hotelapi.BookingsClient
)

// NewRootCmd creates the root cobra command for the hotelctl CLI.
func NewRootCmd() *cobra.Command {
	defaults, err := config.Load()
	if err != nil {
		defaults = config.Default()
	}

	root := &cobra.Command{
		Use:   "hotelctl",
		Short: "hotelctl — command line client for the hotel booking API",
		Long:  "hotelctl searches room availability, manages bookings, and administers hotels, rooms, and client records.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(flagLogLevel), flagLogFormat)

			apiCfg := hotelapi.DefaultConfig().WithHost(flagServer)
			session = hotelapi.NewSession()
			if pair, ok := loadCredentials(); ok {
				session.Set(pair)
			}
			identity = hotelapi.NewIdentityClient(apiCfg, session, logger)
			hotels = hotelapi.NewHotelsClient(apiCfg, session, logger)
			rooms = hotelapi.NewRoomsClient(apiCfg, session, logger)
			clients = hotelapi.NewClientsClient(apiCfg, session, logger)
			bookings = hotelapi.NewBookingsClient(apiCfg, session, logger)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Token refreshes rotate the pair mid-command; persist whatever
			// the session ends up holding.
			if pair, ok := session.Pair(); ok {
				_ = saveCredentials(pair)
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaults.BackendURL, "Backend URL (or HOTELX_BACKEND_URL env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", defaults.LogFormat, "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newSearchCmd(),
		newBookCmd(),
		newBookingsCmd(),
		newHotelsCmd(),
		newRoomsCmd(),
		newClientsCmd(),
	)

	return root
}

// resultErr converts the error strings of a failed call into a single error.
func resultErr(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New(strings.Join(errs, ", "))
}
