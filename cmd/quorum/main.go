package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/quorumlab/quorum/internal/aggregate"
	"github.com/quorumlab/quorum/internal/archetype"
	"github.com/quorumlab/quorum/internal/chain"
	"github.com/quorumlab/quorum/internal/collect"
	"github.com/quorumlab/quorum/internal/domain"
	"github.com/quorumlab/quorum/internal/model"
	"github.com/quorumlab/quorum/internal/plan"
	yamlfile "github.com/quorumlab/quorum/internal/yaml"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "plan":
		runPlan(os.Args[2:])
	case "classify":
		runClassify(os.Args[2:])
	case "chains":
		runChains(os.Args[2:])
	case "persona":
		runPersona(os.Args[2:])
	case "aggregate":
		runAggregate(os.Args[2:])
	case "collect":
		runCollect(os.Args[2:])
	case "registry":
		runRegistry(os.Args[2:])
	case "version":
		fmt.Printf("quorum %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`quorum - multi-agent verification planner and aggregator

Usage:
  quorum plan "<task>" [--topology <mode>] [--precision <1-5>] [--auto] [--no-panel] [--registry <file>] [--json] [--out <file>]
  quorum classify "<task>" [--all] [--json]
  quorum chains [--precision <1-5>]
  quorum persona <archetype-id> [--domain <name>] [--task <text>] [--registry <file>]
  quorum aggregate --plan <file> (--dir <dir> | --outputs <file>) [--json]
  quorum collect --plan <file> --dir <dir> [--timeout <sec>] [--json]
  quorum registry init <file>
  quorum version

Topologies:
  sequential parallel swarm hivemind pipeline supervisor_worker hybrid
  map_reduce tournament critic_loop ensemble mesh_distributed mesh_offensive`)
}

func runPlan(args []string) {
	var (
		task      string
		topology  string
		precision int
		auto      bool
		noPanel   bool
		registry  string
		jsonOut   bool
		outFile   string
	)

	i := 0
	for i < len(args) {
		switch args[i] {
		case "--topology":
			i++
			topology = argValue(args, i, "--topology")
		case "--precision":
			i++
			precision = argIntValue(args, i, "--precision")
		case "--auto":
			auto = true
		case "--no-panel":
			noPanel = true
		case "--registry":
			i++
			registry = argValue(args, i, "--registry")
		case "--json":
			jsonOut = true
		case "--out":
			i++
			outFile = argValue(args, i, "--out")
		default:
			if task == "" {
				task = args[i]
			} else {
				fatalf("unexpected argument: %s", args[i])
			}
		}
		i++
	}

	if task == "" {
		fatalf("usage: quorum plan \"<task>\" [options]")
	}

	opts := plan.Options{Auto: auto, NoPanel: noPanel}
	if topology != "" {
		t, err := model.ParseTopology(topology)
		if err != nil {
			fatalf("%v", err)
		}
		opts.Topology = t
	}
	if precision != 0 {
		p, err := model.ParsePrecision(precision)
		if err != nil {
			fatalf("%v", err)
		}
		opts.Precision = p
	}
	if registry != "" {
		r, err := archetype.Load(registry)
		if err != nil {
			fatalf("load registry: %v", err)
		}
		opts.Registry = r
	}

	p := plan.Prepare(task, opts)

	if outFile != "" {
		id, err := model.GenerateID(model.IDTypePlan)
		if err != nil {
			fatalf("generate plan id: %v", err)
		}
		file := model.PlanFile{
			SchemaVersion: model.PlanSchemaVersion,
			FileType:      model.PlanFileType,
			ID:            id,
			Plan:          p,
		}
		if err := yamlfile.AtomicWrite(outFile, file); err != nil {
			fatalf("write plan: %v", err)
		}
		fmt.Printf("plan written: %s (%s)\n", outFile, id)
		return
	}

	if jsonOut {
		printJSON(p)
		return
	}
	fmt.Print(formatPlan(p))
}

func runClassify(args []string) {
	var (
		task    string
		all     bool
		jsonOut bool
	)
	for _, a := range args {
		switch a {
		case "--all":
			all = true
		case "--json":
			jsonOut = true
		default:
			if task == "" {
				task = a
			} else {
				fatalf("unexpected argument: %s", a)
			}
		}
	}
	if task == "" {
		fatalf("usage: quorum classify \"<task>\" [--all] [--json]")
	}

	if all {
		domains := domain.ClassifyAll(task)
		if jsonOut {
			printJSON(domains)
			return
		}
		fmt.Printf("Detected domains for: %s\n\n", task)
		for _, d := range domains {
			fmt.Printf("  [%3.0f%%] %s: %s\n", d.Confidence*100, d.Name, joinKeywords(d.Keywords, 3))
		}
		return
	}

	d := domain.Classify(task)
	if jsonOut {
		printJSON(d)
		return
	}
	fmt.Print(formatDomain(d))
}

func runChains(args []string) {
	precision := int(model.DefaultPrecision)
	i := 0
	for i < len(args) {
		switch args[i] {
		case "--precision":
			i++
			precision = argIntValue(args, i, "--precision")
		default:
			fatalf("unknown flag: %s\nusage: quorum chains [--precision <1-5>]", args[i])
		}
		i++
	}

	p, err := model.ParsePrecision(precision)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Verification chains for precision level %d:\n", p)
	for _, id := range chain.ForPrecision(p) {
		fmt.Printf("  Chain %s | %s\n", id.Letter(), id.Name())
	}
}

func runPersona(args []string) {
	if len(args) < 1 {
		fatalf("usage: quorum persona <archetype-id> [--domain <name>] [--task <text>] [--registry <file>]")
	}
	id := archetype.ID(args[0])
	domainName := "default"
	task := ""
	registryPath := ""

	i := 1
	for i < len(args) {
		switch args[i] {
		case "--domain":
			i++
			domainName = argValue(args, i, "--domain")
		case "--task":
			i++
			task = argValue(args, i, "--task")
		case "--registry":
			i++
			registryPath = argValue(args, i, "--registry")
		default:
			fatalf("unknown flag: %s", args[i])
		}
		i++
	}

	registry := archetype.Builtin()
	if registryPath != "" {
		r, err := archetype.Load(registryPath)
		if err != nil {
			fatalf("load registry: %v", err)
		}
		registry = r
	}

	persona, err := registry.Synthesize(id, domainName, task)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("%s (%s) — domain: %s\n\n%s\n", persona.Title, persona.ArchetypeID, persona.Domain, persona.Instructions)
}

func runAggregate(args []string) {
	var (
		planFile    string
		dir         string
		outputsFile string
		jsonOut     bool
	)
	i := 0
	for i < len(args) {
		switch args[i] {
		case "--plan":
			i++
			planFile = argValue(args, i, "--plan")
		case "--dir":
			i++
			dir = argValue(args, i, "--dir")
		case "--outputs":
			i++
			outputsFile = argValue(args, i, "--outputs")
		case "--json":
			jsonOut = true
		default:
			fatalf("unknown flag: %s", args[i])
		}
		i++
	}

	if planFile == "" || (dir == "" && outputsFile == "") {
		fatalf("usage: quorum aggregate --plan <file> (--dir <dir> | --outputs <file>) [--json]")
	}

	p := loadPlan(planFile)

	var outputs []model.RawOutput
	var err error
	if dir != "" {
		outputs, err = collect.Scan(dir)
		if err != nil {
			fatalf("scan results: %v", err)
		}
	} else {
		outputs = loadOutputs(outputsFile)
	}

	verdict := aggregate.AggregateOutputs(outputs, p)
	if jsonOut {
		printJSON(verdict)
		return
	}
	fmt.Print(formatVerdict(verdict))
}

func runCollect(args []string) {
	var (
		planFile   string
		dir        string
		timeoutSec int
		jsonOut    bool
	)
	i := 0
	for i < len(args) {
		switch args[i] {
		case "--plan":
			i++
			planFile = argValue(args, i, "--plan")
		case "--dir":
			i++
			dir = argValue(args, i, "--dir")
		case "--timeout":
			i++
			timeoutSec = argIntValue(args, i, "--timeout")
		case "--json":
			jsonOut = true
		default:
			fatalf("unknown flag: %s", args[i])
		}
		i++
	}

	if planFile == "" || dir == "" {
		fatalf("usage: quorum collect --plan <file> --dir <dir> [--timeout <sec>] [--json]")
	}

	p := loadPlan(planFile)

	ctx := context.Background()
	if timeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
		defer cancel()
	}

	collector := collect.New(dir, p.TotalAgents,
		collect.WithLogger(newStderrLogger(), collect.LogLevelInfo))
	outputs, err := collector.Collect(ctx)
	if err != nil {
		fatalf("collect: %v", err)
	}

	verdict := aggregate.AggregateOutputs(outputs, p)
	if jsonOut {
		printJSON(verdict)
		return
	}
	fmt.Print(formatVerdict(verdict))
}

func runRegistry(args []string) {
	if len(args) < 2 || args[0] != "init" {
		fatalf("usage: quorum registry init <file>")
	}
	path := args[1]
	if err := archetype.Save(path, archetype.Builtin()); err != nil {
		fatalf("write registry: %v", err)
	}
	fmt.Printf("registry written: %s\n", path)
}

func loadPlan(path string) model.ExecutionPlan {
	if err := yamlfile.ValidateSchemaHeader(path, model.PlanFileType); err != nil {
		fatalf("invalid plan file: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		fatalf("read plan: %v", err)
	}
	var file model.PlanFile
	if err := yamlv3.Unmarshal(content, &file); err != nil {
		fatalf("parse plan: %v", err)
	}
	return file.Plan
}

func loadOutputs(path string) []model.RawOutput {
	if err := yamlfile.ValidateSchemaHeader(path, model.RawOutputFileType); err != nil {
		fatalf("invalid outputs file: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		fatalf("read outputs: %v", err)
	}
	var file model.RawOutputFile
	if err := yamlv3.Unmarshal(content, &file); err != nil {
		fatalf("parse outputs: %v", err)
	}
	return file.Outputs
}

func argValue(args []string, i int, flag string) string {
	if i >= len(args) {
		fatalf("%s requires a value", flag)
	}
	return args[i]
}

func argIntValue(args []string, i int, flag string) int {
	v := argValue(args, i, flag)
	n, err := strconv.Atoi(v)
	if err != nil {
		fatalf("%s requires an integer, got %q", flag, v)
	}
	return n
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatalf("encode json: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
