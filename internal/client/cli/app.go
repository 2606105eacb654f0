// Package cli implements gatekeeper-cli, the admin command line for the
// Gatekeeper service. It uses urfave/cli/v2 for command parsing.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gatekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/gatekeeper/internal/client/client"
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/urfave/cli/v2"
)

// Client is the subset of client.GRPCClient the commands use.
type Client interface {
	Register(ctx context.Context, userName, password, role string) (*pb.RegisterResponse, error)
	Login(ctx context.Context, userName, password string) (string, error)
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (*pb.WhoamiResponse, error)
	UpdateRole(ctx context.Context, userName, role string) error
	DeleteUser(ctx context.Context, userName string) error
	Ping(ctx context.Context) error
	SetAccessToken(token string)
	Close() error
}

// ClientFactory opens a Client for a server address.
type ClientFactory func(addr string) (Client, error)

// DefaultClientFactory dials the real gRPC service.
func DefaultClientFactory(addr string) (Client, error) {
	return client.NewGRPCClient(addr)
}

var errUsage = errors.New("wrong number of arguments")

// NewApp builds the CLI application. Output goes to w.
func NewApp(factory ClientFactory, w io.Writer) *cli.App {
	return &cli.App{
		Name:      "gatekeeper-cli",
		Usage:     "Gatekeeper identity and access administration",
		Version:   buildinfo.String(),
		Writer:    w,
		ErrWriter: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Gatekeeper gRPC address",
				EnvVars: []string{"GATEKEEPER_SERVER"},
				Value:   "localhost:50051",
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "session token for authenticated commands",
				EnvVars: []string{"GATEKEEPER_TOKEN"},
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "password for register/login; prompted for when empty",
				EnvVars: []string{"GATEKEEPER_PASSWORD"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "ping",
				Usage:  "Check that the server answers",
				Action: withClient(factory, runPing),
			},
			{
				Name:      "register",
				Usage:     "Create an account",
				ArgsUsage: "USERNAME",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "role", Usage: "role of the new account (privileged roles need a SUPERADMIN token)"},
				},
				Action: withClient(factory, runRegister),
			},
			{
				Name:      "login",
				Usage:     "Log in and print a session token",
				ArgsUsage: "USERNAME",
				Action:    withClient(factory, runLogin),
			},
			{
				Name:   "logout",
				Usage:  "Revoke the session token",
				Action: withClient(factory, runLogout),
			},
			{
				Name:   "whoami",
				Usage:  "Show the account behind the session token",
				Action: withClient(factory, runWhoami),
			},
			{
				Name:  "user",
				Usage: "Manage accounts (SUPERADMIN only)",
				Subcommands: []*cli.Command{
					{
						Name:      "set-role",
						Usage:     "Change an account's role",
						ArgsUsage: "USERNAME ROLE",
						Action:    withClient(factory, runSetRole),
					},
					{
						Name:      "delete",
						Aliases:   []string{"rm"},
						Usage:     "Delete an account and revoke its sessions",
						ArgsUsage: "USERNAME",
						Action:    withClient(factory, runDelete),
					},
				},
			},
		},
	}
}

type action func(c *cli.Context, cl Client) error

func withClient(factory ClientFactory, fn action) cli.ActionFunc {
	return func(c *cli.Context) error {
		cl, err := factory(c.String("server"))
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer cl.Close()

		if tok := c.String("token"); tok != "" {
			cl.SetAccessToken(tok)
		}

		if err := fn(c, cl); err != nil {
			if errors.Is(err, errUsage) {
				_ = cli.ShowSubcommandHelp(c)
			}
			return err
		}
		return nil
	}
}

func password(c *cli.Context) (string, error) {
	if pw := c.String("password"); pw != "" {
		return pw, nil
	}
	return GetPassword(c.App.Writer, "Password: ")
}

func runPing(c *cli.Context, cl Client) error {
	if err := cl.Ping(c.Context); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

func runRegister(c *cli.Context, cl Client) error {
	if c.NArg() != 1 {
		return errUsage
	}
	pw, err := password(c)
	if err != nil {
		return err
	}
	resp, err := cl.Register(c.Context, c.Args().First(), pw, c.String("role"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "registered %s (%s)\n", resp.Username, resp.Role)
	return nil
}

func runLogin(c *cli.Context, cl Client) error {
	if c.NArg() != 1 {
		return errUsage
	}
	pw, err := password(c)
	if err != nil {
		return err
	}
	token, err := cl.Login(c.Context, c.Args().First(), pw)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}

func runLogout(c *cli.Context, cl Client) error {
	if err := cl.Logout(c.Context); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "logged out")
	return nil
}

func runWhoami(c *cli.Context, cl Client) error {
	me, err := cl.Whoami(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s (%s)\n", me.Username, me.Role)
	return nil
}

func runSetRole(c *cli.Context, cl Client) error {
	if c.NArg() != 2 {
		return errUsage
	}
	user, role := c.Args().Get(0), c.Args().Get(1)
	if err := cl.UpdateRole(c.Context, user, role); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s is now %s\n", user, role)
	return nil
}

func runDelete(c *cli.Context, cl Client) error {
	if c.NArg() != 1 {
		return errUsage
	}
	user := c.Args().First()
	if err := cl.DeleteUser(c.Context, user); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "deleted %s\n", user)
	return nil
}
