package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check the server's /healthz endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(cmd.Context(), addr, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "http://127.0.0.1:8081", "ops server base URL")
	return cmd
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func runHealth(ctx context.Context, addr string, out io.Writer) error {
	var hs healthStatus
	resp, err := resty.New().
		SetTimeout(5*time.Second).
		R().
		SetContext(ctx).
		SetResult(&hs).
		SetError(&hs).
		Get(strings.TrimRight(addr, "/") + "/healthz")
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	_, _ = fmt.Fprintf(out, "status: %s\ndatabase: %s\n", hs.Status, hs.Database)
	if resp.IsError() {
		return fmt.Errorf("server unhealthy: %s", resp.Status())
	}
	return nil
}
