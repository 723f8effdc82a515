// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// statusTimeout bounds the connectivity probes.
const statusTimeout = 10 * time.Second

// HandleStatus probes the backend and prints a short health summary.
func HandleStatus(args *Args) {
	client := newClient(args)
	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	fmt.Printf("Backend: %s\n", client.BaseURL())

	start := time.Now()
	var vehicles, projects, conversations int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := client.ListVehicles(gctx)
		vehicles = len(v)
		return err
	})
	g.Go(func() error {
		p, err := client.ListProjects(gctx)
		projects = len(p)
		return err
	})
	g.Go(func() error {
		c, err := client.ListConversations(gctx)
		conversations = len(c)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Println("Status:  unreachable")
		fatal(err)
	}

	fmt.Printf("Status:  ok (%s)\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Data:    %d vehicles · %d projects · %d conversations\n",
		vehicles, projects, conversations)

	if args.Verbose {
		if dash, err := client.GetSmartHomeDashboard(ctx); err == nil {
			fmt.Printf("Devices: %d across %d rooms\n",
				dash.TotalDevices, len(dash.Rooms))
		}
		if launch, err := client.GetNextLaunch(ctx); err == nil && launch != nil {
			fmt.Printf("Launch:  %s (%s)\n", launch.Name, launch.Provider)
		}
	}
}
