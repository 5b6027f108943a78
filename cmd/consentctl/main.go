package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	model "github.com/privacykit/consent-manager/internal/consent/model"
	"github.com/privacykit/consent-manager/internal/consent/provider"
	integrationmodel "github.com/privacykit/consent-manager/internal/integrations/model"
	"github.com/privacykit/consent-manager/internal/system/config"
	"github.com/privacykit/consent-manager/internal/system/log"
)

const usage = `Usage: consentctl [-config path] <command>

Commands:
  status              show consent state and stored preferences
  categories          list configured categories
  accept              grant every category and save
  decline             keep only required categories and save
  set key=bool ...    save custom preferences (e.g. set analytics=true marketing=false)
  reset               delete the consent record
`

// stdoutSink prints injected vendor scripts instead of loading them; the CLI
// has no page to inject into.
type stdoutSink struct{}

func (stdoutSink) Inject(script integrationmodel.Script) error {
	if script.URL != "" {
		fmt.Printf("inject [%s] src=%s async=%v\n", script.Vendor, script.URL, script.Async)
		return nil
	}
	fmt.Printf("inject [%s] inline handle=%s\n", script.Vendor, script.Handle)
	return nil
}

func main() {
	configPath := flag.String("config", "config/deployment.yaml", "Path to deployment configuration")
	flag.Parse()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.Log.LogLevel != "" {
		if err := log.Init(cfg.Log.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	consentProvider, err := provider.NewConsentProvider(cfg, stdoutSink{}, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize consent manager: %v\n", err)
		os.Exit(1)
	}
	defer consentProvider.Close()
	svc := consentProvider.GetConsentService()

	switch args[0] {
	case "status":
		fmt.Printf("consent given: %v\n", svc.HasGivenConsent())
		for _, category := range svc.Categories() {
			fmt.Printf("  %-16s %v\n", category.Key, svc.GetPreferences().Granted(category.Key))
		}
	case "categories":
		for _, category := range svc.Categories() {
			required := ""
			if category.Required {
				required = " (required)"
			}
			fmt.Printf("%-16s %s%s\n", category.Key, category.Label, required)
		}
	case "accept":
		svc.AcceptAll()
		fmt.Println("accepted all categories")
	case "decline":
		svc.DeclineOptional()
		fmt.Println("declined optional categories")
	case "set":
		preferences, err := parsePreferences(args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		svc.Save(preferences)
		fmt.Println("preferences saved")
	case "reset":
		svc.Reset()
		fmt.Println("consent record deleted")
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func parsePreferences(pairs []string) (model.PreferenceSet, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("set requires at least one key=bool pair")
	}
	preferences := model.PreferenceSet{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid pair %q, expected key=bool", pair)
		}
		switch value {
		case "true":
			preferences[model.CategoryKey(key)] = true
		case "false":
			preferences[model.CategoryKey(key)] = false
		default:
			return nil, fmt.Errorf("invalid value %q for %s, expected true or false", value, key)
		}
	}
	return preferences, nil
}
