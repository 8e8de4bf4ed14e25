package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/goliatone/go-bootstrap3"
	"github.com/goliatone/go-bootstrap3/pkg/config"
	"github.com/goliatone/go-bootstrap3/pkg/forms"
	"github.com/goliatone/go-bootstrap3/pkg/interfaces/logger"
	"github.com/goliatone/go-bootstrap3/pkg/plugins"
	"github.com/goliatone/go-bootstrap3/pkg/prompt"
)

func main() {
	pluginName := flag.String("plugin", plugins.NameButton, "plugin whose form is rendered")
	configPath := flag.String("config", "", "YAML settings file")
	envFiles := flag.String("env", "", "comma separated dotenv files (default .env when present)")
	rawValues := flag.String("values", "", "submitted values as a query string, e.g. type=btn&btn_context=primary")
	interactive := flag.Bool("interactive", false, "edit the values in the terminal before rendering")
	list := flag.Bool("list", false, "list the available plugins and exit")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configPath, *envFiles)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	lgr := logger.NewText(os.Stderr, cfg.LogLevel)
	reg := bootstrap3.NewPlugins(cfg)

	if *list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	form, err := bootstrap3.PluginForm(reg, *pluginName, forms.WithLogger(lgr))
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	submitted, err := url.ParseQuery(*rawValues)
	if err != nil {
		log.Fatalf("Invalid -values: %v", err)
	}
	result := form.Clean(submitted)

	if *interactive {
		editor := prompt.NewEditor(prompt.WithLogger(lgr))
		result, err = editor.Edit(ctx, form, result.Values)
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Failed to edit values: %v", err)
		}
	}

	markup, err := form.Render(result.Values, forms.RenderOptions{Errors: result.Errors})
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}
	markup += "\n" + summary(reg, *pluginName, result)

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(markup)
}

func loadConfig(path, envFiles string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	var files []string
	for _, file := range strings.Split(envFiles, ",") {
		if file = strings.TrimSpace(file); file != "" {
			files = append(files, file)
		}
	}
	env, err := config.ReadEnv(files...)
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.ApplyEnv(env)
	return cfg, cfg.Validate()
}

// summary reports the derived classes and, for buttons, the resolved link as
// an HTML comment.
func summary(reg *plugins.Registry, name string, result forms.Result) string {
	if !result.Valid() {
		return fmt.Sprintf("<!-- %d invalid field(s) -->", len(result.Errors))
	}
	descriptor, ok := reg.Descriptor(name)
	if !ok || descriptor.Classes == nil {
		return ""
	}
	classes, err := descriptor.Classes(result.Values)
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}
	lines := []string{fmt.Sprintf("<!-- classes: %q -->", classes)}
	if descriptor.Name == plugins.NameButton {
		if btn, err := plugins.ButtonFromValues(result.Values); err == nil {
			lines = append(lines, fmt.Sprintf("<!-- href: %q -->", btn.Resolve()))
		}
	}
	return strings.Join(lines, "\n")
}
