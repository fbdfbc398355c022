// Command fieldreport-mcp is an MCP (Model Context Protocol) server that
// exposes report generation to AI assistants over stdio.
//
// # Installation
//
//	go install github.com/lvillar/fieldreport/cmd/fieldreport-mcp@latest
//
// # Configuration
//
//	{
//	  "mcpServers": {
//	    "fieldreport": {
//	      "command": "fieldreport-mcp",
//	      "args": ["-config", "/etc/fieldreport.yaml"]
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - generate_report: Render a report document to a PDF
//   - measure_report: Lay out a document and report its page count
//   - filter_tasks: Apply a task filter and list the kept task IDs
//
// # Available Resources
//
//   - report://schema : Report document fields and an example
//   - report://kinds : Report kinds, filters and code symbologies
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lvillar/fieldreport/config"
	"github.com/lvillar/fieldreport/mcp"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	verbose := flag.Bool("v", false, "log every request to standard error")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// Standard output carries the protocol; logs go to standard error.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldreport-mcp: %v\n", err)
		os.Exit(1)
	}
	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldreport-mcp: %v\n", err)
		os.Exit(1)
	}

	server := mcp.NewServer(logger)

	mcp.RegisterDefaultTools(server, opts...)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "fieldreport-mcp: %v\n", err)
		os.Exit(1)
	}
}
