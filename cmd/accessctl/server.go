package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/access-api-in-go/pkg/config"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/db"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/server/endpoints"
	"github.com/doodlesbykumbi/access-api-in-go/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	if addr := config.Get().BindAddress; addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return strconv.Itoa(config.Get().Port)
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return config.Get().Port
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the access grant engine server",
	Long: `Run the access grant engine server.

Running the server requires the DATABASE_URL environment variable. If
ACCESS_TOKEN_SECRET is set, the server also issues short-lived project
tokens at POST /authn/token.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		var issuer *token.Issuer
		if secret := os.Getenv("ACCESS_TOKEN_SECRET"); secret != "" {
			issuer = token.NewIssuer([]byte(secret), cfg.TokenDuration())
		} else {
			log.Println("ACCESS_TOKEN_SECRET not set; project tokens disabled")
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, issuer, host, port)

		endpoints.RegisterAll(s)

		// SIGHUP reloads the config file; the watcher covers edits in place.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watchConfig(ctx)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func watchConfig(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP)
	go func() {
		for range sigChan {
			if err := config.Reload(); err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			log.Println("Configuration reloaded")
		}
	}()

	if err := config.Watch(ctx, func(*config.AccessConfig) {
		log.Println("Configuration file changed, reloaded")
	}); err != nil {
		log.Printf("Config watch disabled: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
