package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/99minutos/user-registry/internal/core/ports"
)

// newUserCmd groups store administration commands. They act on the backend
// selected by STORE_BACKEND; with the memory backend every run starts empty.
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management",
	}
	cmd.AddCommand(newUserAddCmd())
	cmd.AddCommand(newUserGetCmd())
	cmd.AddCommand(newUserRemoveCmd())
	cmd.AddCommand(newUserCountCmd())
	return cmd
}

// withService runs fn against a service backed by the configured store.
func withService(cmd *cobra.Command, fn func(ctx context.Context, out io.Writer, svc ports.UserService) error) error {
	ctx := cmd.Context()
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	svc, store, err := openService(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("closing store")
		}
	}()

	return fn(ctx, cmd.OutOrStdout(), svc)
}

func newUserAddCmd() *cobra.Command {
	var name, email string
	c := &cobra.Command{
		Use:   "add",
		Short: "Create a user and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, out io.Writer, svc ports.UserService) error {
				u, err := svc.Register(ctx, name, email)
				if err != nil {
					return err
				}
				return printUser(out, u)
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "user name")
	c.Flags().StringVar(&email, "email", "", "user email")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("email")
	return c
}

func newUserGetCmd() *cobra.Command {
	var id int64
	c := &cobra.Command{
		Use:   "get",
		Short: "Look up a user by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, out io.Writer, svc ports.UserService) error {
				u, err := svc.Get(ctx, id)
				if err != nil {
					return err
				}
				return printUser(out, u)
			})
		},
	}
	c.Flags().Int64Var(&id, "id", 0, "user id")
	_ = c.MarkFlagRequired("id")
	return c
}

func newUserRemoveCmd() *cobra.Command {
	var id int64
	c := &cobra.Command{
		Use:   "remove",
		Short: "Remove every user with the given id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, out io.Writer, svc ports.UserService) error {
				if err := svc.Remove(ctx, id); err != nil {
					return err
				}
				_, err := fmt.Fprintln(out, "removed:", id)
				return err
			})
		},
	}
	c.Flags().Int64Var(&id, "id", 0, "user id")
	_ = c.MarkFlagRequired("id")
	return c
}

func newUserCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, out io.Writer, svc ports.UserService) error {
				n, err := svc.Count(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, n)
				return err
			})
		},
	}
}
