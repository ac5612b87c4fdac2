package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edvin/cdhplugin/internal/cdhctl"
	"github.com/edvin/cdhplugin/internal/config"
)

// fileList collects repeated -f flags.
type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(v string) error { *f = append(*f, v); return nil }

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

	switch os.Args[1] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ExitOnError)
		var files fileList
		fs.Var(&files, "f", "Path to cluster definition YAML file (repeatable, required)")
		timeout := fs.Duration("timeout", time.Minute, "Timeout for the whole run")
		fs.Parse(os.Args[2:])

		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "Error: -f flag is required")
			fs.Usage()
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		exitOnErr(cdhctl.Validate(ctx, files, os.Stdout))

	case "scale":
		fs := flag.NewFlagSet("scale", flag.ExitOnError)
		file := fs.String("f", "", "Path to cluster definition YAML file (required)")
		mode := fs.String("mode", cdhctl.ModeExisting, "Scaling mode: additional or existing")
		var targets fileList
		fs.Var(&targets, "ng", "Node group target as <id or name>=<count> (repeatable)")
		fs.Parse(os.Args[2:])

		if *file == "" {
			fmt.Fprintln(os.Stderr, "Error: -f flag is required")
			fs.Usage()
			os.Exit(1)
		}

		counts, err := cdhctl.ParseCounts(targets)
		exitOnErr(err)
		exitOnErr(cdhctl.Scale(*file, *mode, counts, os.Stdout))

	case "processes":
		fs := flag.NewFlagSet("processes", flag.ExitOnError)
		version := fs.String("version", "", "Plugin version (default: latest supported)")
		fs.Parse(os.Args[2:])

		exitOnErr(cdhctl.Processes(*version, os.Stdout))

	case "remote":
		fs := flag.NewFlagSet("remote", flag.ExitOnError)
		file := fs.String("f", "", "Path to cluster definition YAML file (required)")
		apiURL := fs.String("api", "", "Validator API base URL (default: api_url from the file)")
		apiKey := fs.String("key", "", "Validator API key (default: api_key from the file or CDH_API_KEY)")
		fs.Parse(os.Args[2:])

		if *file == "" {
			fmt.Fprintln(os.Stderr, "Error: -f flag is required")
			fs.Usage()
			os.Exit(1)
		}

		exitOnErr(cdhctl.Remote(context.Background(), *apiURL, *apiKey, *file, os.Stdout, logger))

	case "cm-clusters":
		cfg, err := config.Load()
		exitOnErr(err)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		exitOnErr(cdhctl.CMClusters(ctx, cfg, os.Stdout, logger))

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func exitOnErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage:
  cdhctl validate -f <cluster.yaml> [-f <cluster.yaml> ...]
  cdhctl scale -f <cluster.yaml> [-mode additional|existing] -ng <id>=<count> [-ng ...]
  cdhctl processes [-version 5.11.0]
  cdhctl remote -f <cluster.yaml> [-api URL] [-key KEY]
  cdhctl cm-clusters

Commands:
  validate      Check cluster definitions against the topology rules
  scale         Check a scaling request against a cluster definition
  processes     List the node processes of every service
  remote        Submit a cluster definition to a running validator API
  cm-clusters   List clusters known to the cluster manager (CM_* env vars)`)
}
