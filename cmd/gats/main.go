/*
Package main is the GATS cli tool (Global Analysis Tag Selector):
release resolution, conditions global-tag recommendation, and the
supporting catalog utilities (upload tags, tracker routes, jupyter
kernels, release index).
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/b2tools/gats"

	jira "github.com/andygrunwald/go-jira"
	"github.com/jessevdk/go-flags"
)

// Options are the global flags shared by all commands.
type Options struct {
	Config string `short:"c" long:"config" description:"Catalog override file (YAML)" env:"GATS_CONFIG"`
}

var (
	opts    Options
	catalog *gats.Catalog
)

type resolveCmd struct {
	Args struct {
		Release string `positional-arg-name:"release" description:"Release identifier (omit for the recommended release)"`
	} `positional-args:"yes"`
}

func (r *resolveCmd) Execute([]string) error {
	fmt.Println(catalog.Resolve(r.Args.Release))
	return nil
}

type releasesCmd struct {
	Light bool `short:"l" long:"light" description:"List light releases instead of full releases"`
}

func (r *releasesCmd) Execute([]string) error {
	list := catalog.Releases()
	if r.Light {
		list = catalog.LightReleases()
	}

	for _, release := range list {
		fmt.Println(release)
	}

	return nil
}

type recommendCmd struct {
	Release    string   `short:"r" long:"release" required:"yes" description:"Release the job runs with"`
	BaseTags   []string `short:"b" long:"base" description:"Global tag of the input files (repeatable)"`
	Generate   bool     `short:"g" long:"generate" description:"Events are generated from scratch, no input file"`
	Legacy     bool     `long:"b2bii" description:"Input is converted legacy data without event metadata"`
	MC         bool     `long:"mc" description:"Input metadata: the file is MC"`
	Experiment int      `short:"e" long:"experiment" default:"-1" description:"Experiment number of the input (low = high)"`
}

func (r *recommendCmd) Execute([]string) error {
	var metadata []gats.EventMetadata
	switch {
	case r.Generate:
		metadata = nil
	case r.Legacy:
		metadata = []gats.EventMetadata{}
	default:
		metadata = []gats.EventMetadata{{
			IsMC:           r.MC,
			ExperimentLow:  r.Experiment,
			ExperimentHigh: r.Experiment,
		}}
	}

	rec := catalog.Compose(r.Release, r.BaseTags, nil, metadata)
	for _, tag := range rec.Tags {
		fmt.Println(tag)
	}

	if rec.Message != "" {
		fmt.Fprint(os.Stderr, rec.Message)
	}

	return nil
}

type uploadTagCmd struct {
	Args struct {
		Task string `positional-arg-name:"task" description:"main|validation|online|prompt|data|mc|analysis"`
	} `positional-args:"yes" required:"yes"`
}

func (u *uploadTagCmd) Execute([]string) error {
	task := gats.ParseTask(u.Args.Task)

	tag, ok := gats.UploadTag(task)
	if !ok {
		return fmt.Errorf("unknown task %q", u.Args.Task)
	}

	if tag == "" {
		fmt.Println("(a new global tag is created per upload request)")
		return nil
	}

	fmt.Println(tag)

	return nil
}

type routeCmd struct {
	Task    string `short:"t" long:"task" required:"yes" description:"main|validation|online|prompt|data|mc|analysis"`
	Server  string `long:"server" description:"Tracker base URL; when set, the request is filed"`
	User    string `long:"user" description:"Tracker user for basic auth"`
	Token   string `long:"token" env:"GATS_TRACKER_TOKEN" description:"Tracker token for basic auth"`
	Tag     string `long:"tag" description:"Upload global tag name"`
	Reason  string `long:"reason" description:"Reason for the request"`
	Release string `long:"release" description:"Required release"`
	Request string `long:"request" default:"Update" choice:"Addition" choice:"Update" choice:"Change" description:"Type of request"`
}

func (r *routeCmd) Execute([]string) error {
	task := gats.ParseTask(r.Task)
	if task == gats.TaskUnknown {
		return fmt.Errorf("unknown task %q", r.Task)
	}

	route := gats.TicketRoute(task)

	// Without a server just show where the request would go.
	if r.Server == "" {
		out, err := json.MarshalIndent(route, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	}

	tp := jira.BasicAuthTransport{Username: r.User, Password: r.Token}
	client, err := jira.NewClient(tp.Client(), r.Server)
	if err != nil {
		return fmt.Errorf("tracker client: %w", err)
	}

	req := gats.TicketRequest{
		Tag:     r.Tag,
		User:    r.User,
		Reason:  r.Reason,
		Release: r.Release,
		Request: r.Request,
		Task:    task,
		Time:    time.Now(),
	}

	key, err := gats.OpenTicket(context.Background(), client, route, req)
	if err != nil {
		return err
	}

	if key == "" {
		fmt.Println("nothing to file for this task")
		return nil
	}

	fmt.Println(key)

	return nil
}

type kernelsCmd struct {
	Target string `long:"target" default:"~/.local/share/jupyter/kernels" description:"Directory the kernel files are created in"`
	Top    string `long:"top" default:"/cvmfs/belle.cern.ch" description:"Software installation top directory"`
}

func (k *kernelsCmd) Execute([]string) error {
	written, err := catalog.WriteKernels(context.Background(), expandHome(k.Target), expandHome(k.Top))
	for _, release := range written {
		fmt.Println("Created kernel for " + release)
	}

	return err
}

type siteCmd struct {
	Output string `short:"o" long:"output" default:"index.html" description:"Destination of the release index page"`
}

func (s *siteCmd) Execute([]string) error {
	return catalog.WriteIndex(context.Background(), s.Output)
}

// expandHome resolves a leading "~" against the user home directory.
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
		}
	}

	return p
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.LongDescription = `GATS, the Global Analysis Tag Selector.
A CLI tool for the conditions global-tag tables: resolve a release against
the supported set, compose the recommended tags for a processing job, and
maintain the surrounding catalog artifacts (upload tags, tracker routes,
jupyter kernels, release index).`

	addCommand(parser, "resolve", "Resolve a release identifier",
		"Resolve a release identifier to the supported release that best matches it.", &resolveCmd{})
	addCommand(parser, "releases", "List supported releases",
		"List the supported full or light releases, newest first.", &releasesCmd{})
	addCommand(parser, "recommend", "Recommend global tags",
		"Compose the recommended global tags for a processing job.", &recommendCmd{})
	addCommand(parser, "upload-tag", "Show the upload global tag of a task",
		"Show the global tag uploads for the given task go into.", &uploadTagCmd{})
	addCommand(parser, "route", "Show or file the tracker route of a task",
		"Show the normalized ticket-tracker route for a task, or file the request when a server is given.", &routeCmd{})
	addCommand(parser, "kernels", "Write jupyter kernel specs",
		"Create or update one jupyter kernel per supported (light) release.", &kernelsCmd{})
	addCommand(parser, "site", "Write the release index page",
		"Render the supported-release HTML index.", &siteCmd{})

	// Load the catalog once the global flags are known, then run the command.
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		cfg, err := gats.LoadConfig(opts.Config)
		if err != nil {
			return err
		}

		if catalog, err = cfg.Catalog(); err != nil {
			return err
		}

		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}
}

// addCommand registers a subcommand; registration only fails on programmer
// error, so it panics.
func addCommand(parser *flags.Parser, name, short, long string, cmd interface{}) {
	if _, err := parser.AddCommand(name, short, long, cmd); err != nil {
		panic(err)
	}
}
