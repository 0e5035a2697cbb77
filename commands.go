package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tanpawarit/chative-specialists/agent/agents/specialist"
	contractx "github.com/tanpawarit/chative-specialists/agent/contract"
	"github.com/tanpawarit/chative-specialists/agent/costdb"
	llmx "github.com/tanpawarit/chative-specialists/agent/llm"
	configx "github.com/tanpawarit/chative-specialists/pkg/config"
	openrouterx "github.com/tanpawarit/chative-specialists/pkg/openrouter"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "specialists",
		Short:         "Customer service specialist agents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configx.SetEnvFile(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file")

	root.AddCommand(
		newChatCmd(),
		newAskCmd(),
		newToolsCmd(),
		newCheckCmd(),
		newCostDBCmd(),
	)
	return root
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the router on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			r, err := a.router(ctx)
			if err != nil {
				return err
			}
			return chatLoop(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), r.HandleMessage)
		},
	}
}

func chatLoop(ctx context.Context, in io.Reader, out io.Writer, handle func(context.Context, string) (string, error)) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		text := strings.TrimSpace(scanner.Text())
		switch text {
		case "":
			continue
		case "exit", "quit", "salir":
			return nil
		}

		reply, err := handle(ctx, text)
		if err != nil {
			log.Error().Err(err).Msg("handle message failed")
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, reply)
	}
}

func newAskCmd() *cobra.Command {
	var argsJSON string

	cmd := &cobra.Command{
		Use:   "ask <specialist>",
		Short: "Invoke one specialist directly with JSON arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			s, ok := a.registry.Get(contractx.SpecialistName(args[0]))
			if !ok {
				return fmt.Errorf("%w: unknown specialist %q", contractx.ErrValidation, args[0])
			}
			if err := specialist.ValidateArguments(ctx, s, argsJSON); err != nil {
				return err
			}

			out, err := s.InvokableRun(ctx, argsJSON)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&argsJSON, "args", "{}", "specialist arguments as JSON")
	return cmd
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool definitions of every specialist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			defs := make([]contractx.ToolDefinition, 0, 3)
			for _, s := range a.registry.All() {
				def, err := s.Definition(ctx)
				if err != nil {
					return err
				}
				defs = append(defs, def)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(defs)
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every configured model exists on OpenRouter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			llmCfg, err := configx.New[llmx.Config]("OPENROUTER")
			if err != nil {
				return err
			}
			if err := llmCfg.Validate(); err != nil {
				return err
			}

			client := openrouterx.NewClient(llmCfg.OpenRouterFor(contractx.AgentRouter))
			var errs []error
			for _, m := range llmCfg.Models() {
				model, err := openrouterx.VerifyModel(ctx, client, m)
				if err != nil {
					errs = append(errs, err)
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", m, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (owned by %s)\n", model.ID, model.OwnedBy)
			}
			return errors.Join(errs...)
		},
	}
}

func newCostDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costdb",
		Short: "Manage the repair cost database",
	}

	openStore := func() (*costdb.Store, error) {
		cfg, err := configx.New[costdb.Config]("COSTDB")
		if err != nil {
			return nil, err
		}
		return costdb.Open(*cfg)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the repair_costs table",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				return store.Migrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default repair cost catalog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := openStore()
				if err != nil {
					return err
				}
				defer store.Close()

				if err := store.Migrate(cmd.Context()); err != nil {
					return err
				}
				catalog := costdb.DefaultCatalog()
				if err := store.Seed(cmd.Context(), catalog); err != nil {
					return err
				}
				log.Info().Int("rows", len(catalog)).Msg("cost catalog seeded")
				return nil
			},
		},
	)
	return cmd
}
