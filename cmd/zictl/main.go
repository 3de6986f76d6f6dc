// Package main implements the zictl CLI for manual operations against a
// zinspector gRPC server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1 "github.com/fyrsmithlabs/zinspector/pkg/api/v1"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries the flags shared by every subcommand.
type cli struct {
	addr     string
	timeout  time.Duration
	out      io.Writer
	dialOpts []grpc.DialOption
}

// newRootCmd builds the command tree. Extra dial options are appended to
// every connection.
func newRootCmd(out io.Writer, dialOpts []grpc.DialOption) *cobra.Command {
	c := &cli{out: out, dialOpts: dialOpts}

	root := &cobra.Command{
		Use:   "zictl",
		Short: "CLI for zinspector server operations",
		Long: `zictl is a command-line interface for the zinspector gRPC server.
It browses the object tree, creates projects, imports meshes and downloads
mesh data.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.addr, "addr", "localhost:50051", "zinspector server address")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "per-command timeout")

	root.AddCommand(
		c.treeCmd(),
		c.lsCmd(),
		c.nameCmd(),
		c.createCmd(),
		c.importCmd(),
		c.fetchCmd(),
		c.saveCmd(),
		c.loadCmd(),
		c.rmCmd(),
	)
	return root
}

// withClient dials the server, runs fn and closes the connection.
func (c *cli) withClient(cmd *cobra.Command, fn func(ctx context.Context, client v1.ZInspectorClient) error) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, c.dialOpts...)
	cc, err := grpc.NewClient(c.addr, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.addr, err)
	}
	defer cc.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()
	return fn(ctx, v1.NewZInspectorClient(cc))
}
