package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/askdrjosh/postpilot/core/config"
	"github.com/askdrjosh/postpilot/ui/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the content MCP server using SSE",
	Long:  `Start a content MCP (Model Context Protocol) server using Server-Sent Events (SSE) transport. This allows AI agents to generate, inspect and publish content through a standardized protocol.`,
	Run:   mcpServer,
}

var (
	mcpPortFlag string
	mcpHostFlag string
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpPortFlag, "port", "", "Port for the SSE MCP server")
	mcpCmd.Flags().StringVar(&mcpHostFlag, "host", "", "Host for the SSE MCP server")
}

func mcpServer(_ *cobra.Command, _ []string) {
	cfg := config.Global
	host := cfg.MCP.Host
	port := cfg.MCP.Port
	if mcpHostFlag != "" {
		host = mcpHostFlag
	}
	if mcpPortFlag != "" {
		port = mcpPortFlag
	}

	mcpServer := server.NewMCPServer(
		"PostPilot Content MCP Server",
		cfg.App.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	contentHandler := mcp.InitMcpContent(contentUsecase, publisherUsecase)
	contentHandler.AddContentTools(mcpServer)

	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://%s:%s", host, port)),
		server.WithKeepAlive(true),
	)

	addr := fmt.Sprintf("%s:%s", host, port)
	logrus.Printf("Starting content MCP SSE server on %s", addr)
	logrus.Printf("SSE endpoint: http://%s:%s/sse", host, port)
	logrus.Printf("Message endpoint: http://%s:%s/message", host, port)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[MCP] Reception of termination signal, shutting down gracefully...")
		StopApp()
		os.Exit(0)
	}()

	if err := sseServer.Start(addr); err != nil {
		logrus.Fatalf("Failed to start SSE server: %v", err)
	}
}
