package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/99minutos/user-registry/internal/core/domain"
	"github.com/99minutos/user-registry/internal/core/ports"
	"github.com/99minutos/user-registry/internal/core/service"
	"github.com/99minutos/user-registry/internal/infrastructure/db/memory"
	"github.com/99minutos/user-registry/internal/pkg/idgen"
)

func newDemoCmd() *cobra.Command {
	var name, email string
	c := &cobra.Command{
		Use:   "demo",
		Short: "Create, store and look up one user in a fresh in-memory store",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewUserService(
				service.NewFactory(idgen.New()),
				memory.NewUserRepository(),
				zerolog.Nop(),
			)
			return runDemo(cmd.Context(), cmd.OutOrStdout(), svc, name, email)
		},
	}
	c.Flags().StringVar(&name, "name", "Jane Doe", "user name")
	c.Flags().StringVar(&email, "email", "jane@example.com", "user email")
	return c
}

// runDemo creates a user, adds it, looks it up by id and prints the record
// followed by the store size.
func runDemo(ctx context.Context, out io.Writer, svc ports.UserService, name, email string) error {
	created := svc.Create(name, email)
	if _, err := svc.Add(ctx, created); err != nil {
		return err
	}

	found, err := svc.Get(ctx, created.ID)
	if err != nil {
		return err
	}
	if err := printUser(out, found); err != nil {
		return err
	}

	n, err := svc.Count(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, n)
	return err
}

// printUser writes u as one JSON line, or "user not found" when u is nil.
func printUser(out io.Writer, u *domain.User) error {
	if u == nil {
		_, err := fmt.Fprintln(out, "user not found")
		return err
	}
	return json.NewEncoder(out).Encode(u)
}
