// README: Interactive terminal planner; same engine as the API, no server needed.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"roam/internal/config"
	"roam/internal/llm"
	"roam/internal/modules/archive"
	"roam/internal/modules/planner"
)

var (
	flagProvider string
	flagModel    string
)

func main() {
	root := &cobra.Command{
		Use:   "roam-cli",
		Short: "Plan holiday itineraries from your terminal",
		RunE:  runInteractive,
	}
	root.Flags().StringVar(&flagProvider, "provider", "", "model provider id (defaults to DEFAULT_PROVIDER)")
	root.Flags().StringVar(&flagModel, "model", "", "model id (defaults to the provider default)")

	root.AddCommand(&cobra.Command{
		Use:   "models",
		Short: "List enabled providers and their models",
		RunE:  runModels,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newPlanner(cfg config.Config) (*planner.Service, *archive.Service) {
	registry := llm.NewRegistry()
	factory := llm.NewFactory(registry)
	svc := planner.NewService(planner.NewMemoryStore(), factory, registry, planner.Defaults{
		Provider:    cfg.Planner.DefaultProvider,
		Model:       cfg.Planner.DefaultModel,
		Temperature: cfg.Planner.Temperature,
		MaxTokens:   cfg.Planner.MaxTokens,
	})

	var arch *archive.Service
	if cfg.Planner.SaveItineraries {
		arch = archive.NewService(archive.NewFileWriter(cfg.Planner.OutputDir), nil)
	}
	return svc, arch
}

func runModels(cmd *cobra.Command, _ []string) error {
	registry := llm.NewRegistry()
	enabled := registry.Enabled()
	if len(enabled) == 0 {
		fmt.Println("No providers enabled. Set an API key such as CEREBRAS_API_KEY or OPENAI_API_KEY.")
		return nil
	}
	for _, p := range enabled {
		fmt.Printf("%s (%s)\n", p.Name, p.ID)
		for _, m := range p.Models {
			marker := " "
			if m.ID == p.DefaultModel {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, m.ID)
		}
	}
	return nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svc, arch := newPlanner(cfg)
	if arch != nil {
		svc.SetArchiver(arch)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	in := bufio.NewReader(os.Stdin)

	fmt.Println("Roam itinerary planner. Describe your trip and refine it turn by turn.")
	for {
		res, err := generateLoop(ctx, svc, in)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}

		startOver, err := refineLoop(ctx, svc, arch, in, res)
		if err != nil {
			return err
		}
		if !startOver {
			return nil
		}
	}
}

// generateLoop prompts for a trip description until a valid one produces an
// itinerary. A nil result without error means the user quit.
func generateLoop(ctx context.Context, svc *planner.Service, in *bufio.Reader) (*planner.Result, error) {
	for {
		desc := prompt(in, "\nDescribe your trip (or 'exit'): ")
		if desc == "exit" {
			return nil, nil
		}

		fmt.Println("Generating itinerary...")
		res, err := svc.Generate(ctx, planner.GenerateInput{
			Description: desc,
			Provider:    flagProvider,
			Model:       flagModel,
		})
		if err != nil {
			fmt.Printf("Could not generate an itinerary: %v\n", err)
			continue
		}
		printResult(res)
		return res, nil
	}
}

// refineLoop runs the per-itinerary menu. It returns true when the user wants
// a fresh itinerary.
func refineLoop(ctx context.Context, svc *planner.Service, arch *archive.Service, in *bufio.Reader, res *planner.Result) (bool, error) {
	for {
		fmt.Println("\n1) Refine the itinerary")
		fmt.Println("2) Save the itinerary")
		fmt.Println("3) Start over")
		fmt.Println("4) Exit")

		switch prompt(in, "Choose an option: ") {
		case "1":
			feedback := prompt(in, "Your feedback or answers: ")
			fmt.Println("Refining itinerary...")
			refined, err := svc.Refine(ctx, planner.RefineInput{SessionID: res.SessionID, Feedback: feedback})
			if err != nil {
				fmt.Printf("Could not refine the itinerary: %v\n", err)
				continue
			}
			*res = *refined
			printResult(res)
		case "2":
			if arch == nil {
				fmt.Println("Saving is disabled (SAVE_ITINERARIES=false).")
				continue
			}
			custom := prompt(in, "Filename (blank for automatic): ")
			name := planner.SafeFilename(custom, res.SessionID)
			if err := arch.Save(ctx, res.SessionID, name, res.Itinerary); err != nil {
				log.Error("save failed", "err", err)
				continue
			}
			fmt.Printf("Saved as %s\n", name)
		case "3":
			return true, nil
		case "4", "exit":
			return false, nil
		default:
			fmt.Println("Enter 1, 2, 3, or 4.")
		}
	}
}

func printResult(res *planner.Result) {
	fmt.Println("\n" + res.Itinerary)
	if len(res.FollowUps) > 0 {
		fmt.Println("\nTo refine this plan, consider answering:")
		for _, q := range res.FollowUps {
			fmt.Printf("  %d. %s\n", q.Order, q.Text)
		}
	}
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "exit"
	}
	return strings.TrimSpace(line)
}
