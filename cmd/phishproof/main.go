package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanwahyu/phishproof/internal/config"
	domain "github.com/bryanwahyu/phishproof/internal/domain/analysis"
	"github.com/bryanwahyu/phishproof/internal/form"
	"github.com/bryanwahyu/phishproof/internal/infra/classifier/keyword"
	"github.com/bryanwahyu/phishproof/internal/infra/remote"
	"github.com/bryanwahyu/phishproof/internal/ui/checker"
	"github.com/bryanwahyu/phishproof/internal/ui/styles"
)

func main() {
	var (
		text     = flag.String("text", "", "analyze this text once and print the verdict card")
		endpoint = flag.String("endpoint", "", "analysis endpoint (overrides config)")
		stub     = flag.Bool("stub", false, "use the built-in keyword stub instead of the server")
	)
	flag.Parse()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}
	if *endpoint != "" {
		cfg.Client.Endpoint = *endpoint
	}

	var svc domain.Service = remote.NewClient(cfg.Client.Endpoint)
	if *stub {
		svc = keyword.New(1500 * time.Millisecond)
	}
	boost := *cfg.Client.ConfidenceBoost
	ctx := context.Background()

	if *text != "" || flagPassed("text") {
		os.Exit(runOnce(ctx, svc, *text, boost))
	}

	// the TUI owns the terminal; logs go to a file only when DEBUG is set
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("phishproof.log", "phishproof")
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(checker.New(ctx, svc, boost), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running phishproof: %v\n", err)
		os.Exit(1)
	}
}

// runOnce analyzes text without the TUI and prints the card or the inline error.
func runOnce(ctx context.Context, svc domain.Service, text string, boost float64) int {
	f := form.New()
	f.SetText(text)
	_ = f.Analyze(ctx, svc)

	st := f.State()
	if st.Error != "" {
		fmt.Fprintln(os.Stderr, st.Error)
		return 1
	}
	fmt.Println(checker.RenderCard(styles.NewTheme(), form.RenderVerdict(*st.Result, boost)))
	return 0
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}
