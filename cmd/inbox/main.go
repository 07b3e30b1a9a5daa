// Package main prints recent contact form submissions.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	inboxcmd "github.com/ezmnysniper7/portfolio/internal/cmd/inbox"
	"github.com/ezmnysniper7/portfolio/internal/platform/config"
)

func main() {
	cfg, err := inboxcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[INBOX] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := inboxcmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("inbox: %v", err)
	}
}
