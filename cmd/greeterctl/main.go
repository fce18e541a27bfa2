// Package main provides greeterctl, a small CLI that calls the greeter service
// or renders greetings in-process when no address is given.
//
// Usage:
//
//	greeterctl [-addr host:port] [-timeout 3s] simple
//	greeterctl [-addr host:port] greet NAME
//	greeterctl -addr host:port list [N]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/clients"
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers/dto"
	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"
	grpcclient "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/grpc_client"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"

	"github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2/log"

	_ "go.uber.org/automaxprocs"
)

var errUsage = errors.New("usage: greeterctl [-addr host:port] [-timeout d] simple | greet NAME | list [N]")

func main() {
	logger := log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(log.LevelError))
	if err := run(context.Background(), os.Args[1:], os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger log.Logger) error {
	fs := flag.NewFlagSet("greeterctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addr := fs.String("addr", os.Getenv("GREETER_ADDR"), "greeter gRPC address; empty renders in-process")
	timeout := fs.Duration("timeout", 3*time.Second, "per-call timeout, must be positive")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	rest := fs.Args()
	if len(rest) == 0 || *timeout <= 0 {
		return errUsage
	}

	var remote *clients.GreeterRemote
	if *addr != "" {
		conn, cleanup, err := grpcclient.NewGRPCClient(
			&configpb.Data{GrpcClient: &configpb.GrpcClient{Target: *addr}},
			&observability.MetricsConfig{GRPCEnabled: false},
			logger,
		)
		if err != nil {
			return fmt.Errorf("dial %s: %w", *addr, err)
		}
		defer cleanup()
		remote = clients.NewGreeterRemote(conn, logger)
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	switch rest[0] {
	case "simple":
		if len(rest) != 1 {
			return errUsage
		}
		if remote == nil {
			_, err := fmt.Fprintln(out, vo.SimpleFunction())
			return err
		}
		msg, err := remote.SimpleGreeting(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, msg)
		return err
	case "greet":
		if len(rest) != 2 {
			return errUsage
		}
		if remote == nil {
			_, err := fmt.Fprintln(out, vo.NewUser(rest[1]).Greet())
			return err
		}
		msg, err := remote.GreetUser(ctx, rest[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, msg)
		return err
	case "list":
		if len(rest) > 2 {
			return errUsage
		}
		if remote == nil {
			return errors.New("list requires -addr")
		}
		var limit uint32
		if len(rest) == 2 {
			n, err := dto.ParseLimit(rest[1])
			if err != nil {
				return err
			}
			limit = n
		}
		greetings, err := remote.ListGreetings(ctx, limit)
		if err != nil {
			return err
		}
		for _, g := range greetings {
			if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", g.CreatedAt.Format(time.RFC3339), g.Kind, g.Message); err != nil {
				return err
			}
		}
		return nil
	default:
		return errUsage
	}
}
