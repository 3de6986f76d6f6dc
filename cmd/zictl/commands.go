package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/zinspector/internal/stream"
	v1 "github.com/fyrsmithlabs/zinspector/pkg/api/v1"
)

func optionalID(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (c *cli) printIDs(ids []string) {
	for _, id := range ids {
		fmt.Fprintln(c.out, id)
	}
}

func (c *cli) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [id]",
		Short: "Print the object tree below id (the whole tree by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				resp, err := client.GetObjectTree(ctx, &v1.GetObjectTreeRequest{Id: optionalID(args)})
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := json.Indent(&buf, []byte(resp.Tree), "", "  "); err != nil {
					return fmt.Errorf("failed to format tree: %w", err)
				}
				fmt.Fprintln(c.out, buf.String())
				return nil
			})
		},
	}
}

func (c *cli) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [id]",
		Short: "List child ids of an object (projects by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				resp, err := client.GetObjects(ctx, &v1.GetObjectsRequest{Id: optionalID(args)})
				if err != nil {
					return err
				}
				c.printIDs(resp.Ids)
				return nil
			})
		},
	}
}

func (c *cli) nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <id>",
		Short: "Print the name of an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				resp, err := client.GetName(ctx, &v1.GetNameRequest{Id: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, resp.Name)
				return nil
			})
		},
	}
}

func (c *cli) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project and print its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				resp, err := client.CreateProject(ctx, &v1.CreateProjectRequest{Name: args[0]})
				if err != nil {
					return err
				}
				c.printIDs(resp.Ids)
				return nil
			})
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <project-id> <path>",
		Short: "Import a mesh file into a project",
		Long: `Import a mesh file into a project and print the new mesh id.

The path is resolved on the server host.

Examples:
  zictl import 0f8c... /data/models/bracket.stl`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				resp, err := client.ImportMesh(ctx, &v1.ImportMeshRequest{ProjectId: args[0], Path: args[1]})
				if err != nil {
					return err
				}
				c.printIDs(resp.Ids)
				return nil
			})
		},
	}
}

func (c *cli) fetchCmd() *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "fetch <mesh-id>",
		Short: "Download mesh data",
		Long: `Download the encoded data of a mesh and write it to a file or stdout.

Examples:
  # Fetch the default wire format (glb)
  zictl fetch 0f8c... -o bracket.glb

  # Fetch as STL to stdout
  zictl fetch 0f8c... --format stl > bracket.stl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				data, err := fetch(ctx, client, args[0], format)
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					_, err = c.out.Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(data), output)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "wire format (glb, stl, obj); server default when empty")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")
	return cmd
}

// fetch drains a GetMeshData stream through an Assembler.
func fetch(ctx context.Context, client v1.ZInspectorClient, id, format string) ([]byte, error) {
	st, err := client.GetMeshData(ctx, &v1.GetMeshDataRequest{Id: id, Format: format})
	if err != nil {
		return nil, err
	}
	var asm stream.Assembler
	for {
		chunk, err := st.Recv()
		if errors.Is(err, io.EOF) {
			return asm.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
		if err := asm.Add(stream.Chunk{Format: chunk.Format, Index: chunk.Index, Data: chunk.Data}); err != nil {
			return nil, err
		}
	}
}

func (c *cli) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <project-id> <path>",
		Short: "Save a project to a server-side file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				_, err := client.SaveProject(ctx, &v1.SaveProjectRequest{Id: args[0], Path: args[1]})
				return err
			})
		},
	}
}

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>",
		Short: "Load a project file and print the new project id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				resp, err := client.LoadProject(ctx, &v1.LoadProjectRequest{Path: args[0]})
				if err != nil {
					return err
				}
				c.printIDs(resp.Ids)
				return nil
			})
		},
	}
}

func (c *cli) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project or mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client v1.ZInspectorClient) error {
				_, err := client.DeleteObject(ctx, &v1.DeleteObjectRequest{Id: args[0]})
				return err
			})
		},
	}
}
