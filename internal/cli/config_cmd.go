// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/lifehub-tui/internal/config"
)

// HandleConfig implements `lifehub config [show|get|set|path]`.
func HandleConfig(args *Args) {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	switch args.Subcommand {
	case "", "show":
		showConfig(cfg)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			fatal(err)
		}
		fmt.Println(path)
	case "get":
		value, err := getKey(cfg, args.ConfigKey)
		if err != nil {
			fatal(err)
		}
		fmt.Println(value)
	case "set":
		if err := setKey(cfg, args.ConfigKey, args.ConfigVal); err != nil {
			fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			fatal(err)
		}
		if err := config.Save(cfg); err != nil {
			fatal(err)
		}
		fmt.Printf("Set %s = %s\n", args.ConfigKey, args.ConfigVal)
	default:
		fatal(fmt.Errorf("unknown config subcommand %q (want show, get, set, or path)", args.Subcommand))
	}
}

func showConfig(cfg *config.Config) {
	fmt.Printf("server_url            = %s\n", cfg.ServerURL)
	fmt.Printf("request_timeout_secs  = %d\n", cfg.RequestTimeoutSecs)
	fmt.Printf("ui.theme              = %s\n", cfg.UI.Theme)
	fmt.Printf("ui.compact_sidebar    = %t\n", cfg.UI.CompactSidebar)
	fmt.Printf("ui.refresh_secs       = %d\n", cfg.UI.RefreshSecs)
	fmt.Printf("dashboard.vehicle_id  = %d\n", cfg.Dashboard.VehicleID)
	fmt.Printf("chat.cache_enabled    = %t\n", cfg.Chat.CacheEnabled)
	fmt.Printf("log.verbose           = %t\n", cfg.Log.Verbose)
}

func getKey(cfg *config.Config, key string) (string, error) {
	switch key {
	case "server_url":
		return cfg.ServerURL, nil
	case "request_timeout_secs":
		return strconv.Itoa(cfg.RequestTimeoutSecs), nil
	case "ui.theme":
		return cfg.UI.Theme, nil
	case "ui.compact_sidebar":
		return strconv.FormatBool(cfg.UI.CompactSidebar), nil
	case "ui.refresh_secs":
		return strconv.Itoa(cfg.UI.RefreshSecs), nil
	case "dashboard.vehicle_id":
		return strconv.FormatInt(cfg.Dashboard.VehicleID, 10), nil
	case "chat.cache_enabled":
		return strconv.FormatBool(cfg.Chat.CacheEnabled), nil
	case "log.verbose":
		return strconv.FormatBool(cfg.Log.Verbose), nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

func setKey(cfg *config.Config, key, value string) error {
	switch key {
	case "server_url":
		cfg.ServerURL = value
		return nil
	case "request_timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants a number: %w", key, err)
		}
		cfg.RequestTimeoutSecs = n
		return nil
	case "ui.theme":
		if !config.ValidTheme(value) {
			return fmt.Errorf("unknown theme %q (want one of %v)", value, config.Themes)
		}
		cfg.UI.Theme = value
		return nil
	case "ui.compact_sidebar":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s wants true/false: %w", key, err)
		}
		cfg.UI.CompactSidebar = b
		return nil
	case "ui.refresh_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants a number: %w", key, err)
		}
		cfg.UI.RefreshSecs = n
		return nil
	case "dashboard.vehicle_id":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s wants a number: %w", key, err)
		}
		cfg.Dashboard.VehicleID = n
		return nil
	case "chat.cache_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s wants true/false: %w", key, err)
		}
		cfg.Chat.CacheEnabled = b
		return nil
	case "log.verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s wants true/false: %w", key, err)
		}
		cfg.Log.Verbose = b
		return nil
	}
	return fmt.Errorf("unknown config key %q", key)
}
