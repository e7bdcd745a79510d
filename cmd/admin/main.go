// Command admin performs operator tasks against the account store using the
// server's configuration: -migrate applies migrations, -unlock <email>
// clears an account's failed login counter.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/server"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
)

func main() {

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	unlock := fs.String("unlock", "", "email of the account to unlock")
	migrate := fs.Bool("migrate", false, "apply database migrations and exit")

	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-unlock", "--unlock", "-migrate", "--migrate"})); err != nil {
		log.Fatalf("flags: %v", err)
	}

	if *unlock == "" && !*migrate {
		log.Fatalf("nothing to do: pass -migrate or -unlock <email>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	// NewApp applies migrations before returning.
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if *migrate {
		log.Printf("migrations applied")
	}

	if *unlock != "" {
		if err := app.Unlock(ctx, *unlock); err != nil {
			app.Close()
			log.Fatalf("unlock %s: %v", *unlock, err)
		}
		log.Printf("account %s unlocked", *unlock)
	}

}
