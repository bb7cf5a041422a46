// Command copilot exercises the preventive-health tool library from the
// command line, standing in for the agent framework that consumes it.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"healthcopilot/config"
	"healthcopilot/prompts"
	"healthcopilot/reminder"
	"healthcopilot/tips"
	"healthcopilot/tools"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  copilot tips <condition>                 preventive tips for a condition
  copilot remind "<ISO_TIME || message>"   validate a reminder request
  copilot prompts                          list prompt templates by catalog
  copilot prompt <name> [key=value ...]    show a template, filling placeholders
  copilot tools                            dump tool declarations as JSON`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()

	catalog := tips.Default()
	if cfg.TipsPath != "" {
		c, err := tips.LoadFile(cfg.TipsPath)
		if err != nil {
			log.Fatalf("loading tip catalog: %v", err)
		}
		catalog = c
	}

	switch os.Args[1] {
	case "tips":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		fmt.Println(catalog.Lookup(strings.Join(os.Args[2:], " ")))

	case "remind":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		fmt.Println(reminder.Schedule(strings.Join(os.Args[2:], " ")))

	case "prompts":
		for _, cat := range prompts.Catalogs() {
			fmt.Printf("%s: %s\n", cat, strings.Join(prompts.Names(cat), ", "))
		}

	case "prompt":
		if len(os.Args) < 3 {
			usage()
			os.Exit(2)
		}
		tpl, err := prompts.LookupIn(cfg.PromptCatalog, os.Args[2])
		if err != nil {
			log.Fatalf("%v", err)
		}
		vars := parseVars(os.Args[3:])
		for i, m := range tpl.Messages {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("[%s]\n%s\n", m.Role, fill(m.Text, vars))
		}

	case "tools":
		b, err := json.MarshalIndent(tools.NewRegistry(catalog).Declarations(), "", "  ")
		if err != nil {
			log.Fatalf("encoding declarations: %v", err)
		}
		fmt.Println(string(b))

	default:
		usage()
		os.Exit(2)
	}
}

// parseVars turns trailing "key=value" args into a substitution map.
func parseVars(args []string) map[string]string {
	vars := make(map[string]string)
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok {
			vars[key] = value
		}
	}
	return vars
}

// fill substitutes {key} slots. Rendering lives here, outside the template
// registry: the library hands templates out unrendered.
func fill(text string, vars map[string]string) string {
	for key, value := range vars {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}
