package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	jsoniter "github.com/json-iterator/go"
	appGrpc "github.com/m-zajac/repopopularity/internal/api/grpc"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type dialFunc func(addr string) (appGrpc.PopularityClient, io.Closer, error)

func dialServer(addr string) (appGrpc.PopularityClient, io.Closer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial: %w", err)
	}
	return appGrpc.NewPopularityClient(conn), conn, nil
}

type options struct {
	server  string
	timeout time.Duration
	json    bool
}

func newRootCmd(dial dialFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "repopopularityclient",
		Short:        "Queries repopopularity grpc server.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.server, "server", "s", "localhost:9090", "The server address in the format of host:port")
	cmd.PersistentFlags().DurationVarP(&opts.timeout, "timeout", "t", 30*time.Second, "Request timeout")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print raw json reply")

	cmd.AddCommand(
		newRepositoryCmd(dial, opts),
		newOrganizationCmd(dial, opts),
	)

	return cmd
}

func newRepositoryCmd(dial dialFunc, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repository OWNER/NAME",
		Short: "Prints popularity of a single repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closer, err := dial(opts.server)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			resp, err := client.Repository(ctx, &appGrpc.RepositoryRequest{RepositoryName: args[0]})
			if err != nil {
				return fmt.Errorf("server response error: %w", err)
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printTable(cmd.OutOrStdout(), []*appGrpc.Popularity{resp})
		},
	}
}

func newOrganizationCmd(dial dialFunc, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "org NAME",
		Short: "Prints popularity of all organization's repositories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closer, err := dial(opts.server)
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			resp, err := client.Organization(ctx, &appGrpc.OrganizationRequest{OrgName: args[0]})
			if err != nil {
				return fmt.Errorf("server response error: %w", err)
			}
			if opts.json {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printTable(cmd.OutOrStdout(), resp.Items)
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding response to json error: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printTable(w io.Writer, items []*appGrpc.Popularity) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REPOSITORY\tSCORE\tPOPULAR")
	for _, p := range items {
		fmt.Fprintf(tw, "%s/%s\t%d\t%t\n", p.Owner, p.Name, p.Score, p.IsPopular)
	}
	return tw.Flush()
}
