package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"go-functions/internal/app/bootstrap"
	"go-functions/internal/pkg/lesson"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lessons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "./configs", "directory containing config.yaml")
	only := flags.StringSlice("only", nil, "comma-separated lesson names to run (default: all)")
	list := flags.BoolP("list", "l", false, "list lessons and exit")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *list {
		printLessons(stdout, lesson.Catalogue())
		return 0
	}

	// Initialize container with all dependencies
	container, err := bootstrap.NewContainer(bootstrap.ContainerOptions{
		ConfigPath: *configPath,
		Out:        stdout,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize container: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Perform initial health check
	healthCtx, healthCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := container.Health(healthCtx); err != nil {
		container.Logger.Warn("Initial health check failed", zap.Error(err))
	}
	healthCancel()

	names := *only
	if len(names) == 0 {
		names = container.Config.Lessons
	}

	code := 0
	if err := container.Runner.Run(ctx, names...); err != nil {
		container.Logger.Error("Lessons failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		code = 1
	}

	if err := container.Close(); err != nil {
		fmt.Fprintf(stderr, "Failed to close container gracefully: %v\n", err)
		code = 1
	}
	return code
}

func printLessons(w io.Writer, lessons []lesson.Lesson) {
	for _, l := range lessons {
		fmt.Fprintf(w, "%-24s %s\n", l.Name, l.Title)
	}
}
